// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package systemui is the flight mode confirmation service: a small
// systemui host on the session bus and the modechange plugin it loads.
package systemui

//go:generate go build -o target/ github.com/maemo-leste/systemui-modechange/bin/systemui

// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package modechange

// Request names served by the plugin.
const (
	modechangeOpen  = "modechange_open"
	modechangeClose = "modechange_close"
)

// Mode codes carried by modechange_open.
const (
	ModeToFlightMode uint32 = 0
	ModeToNormalMode uint32 = 1
)

const (
	windowPriorityKey     = "/system/systemui/modechange/window_priority"
	defaultWindowPriority = 60

	messageDomain = "osso-powerup-shutdown"
	messageKey    = "powerup_nc_exit_flight_mode"
)

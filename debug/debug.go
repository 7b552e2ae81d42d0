// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package debug is a plugin that turns on debug logging of every plugin
// while it is enabled. It is off unless enabled explicitly.
package debug

import (
	"github.com/linuxdeepin/go-lib/log"
	"github.com/maemo-leste/systemui-modechange/loader"
)

const Name = "debug"

var logger = log.NewLogger("systemui/debug")

func init() {
	loader.Register(NewDaemon())
}

type Daemon struct {
	*loader.ModuleBase
	previous log.Priority
}

func NewDaemon() *Daemon {
	var d = new(Daemon)
	d.ModuleBase = loader.NewModuleBase(Name, d, logger)
	return d
}

func (*Daemon) GetDependencies() []string {
	return []string{}
}

func (d *Daemon) Start() error {
	d.previous = d.LogLevel()
	if d.previous != log.LevelDebug {
		loader.ToggleLogDebug(true)
	}
	logger.Debug("debug logging on")
	return nil
}

func (d *Daemon) Stop() error {
	if d.previous != log.LevelDebug {
		loader.ToggleLogDebug(false)
	}
	return nil
}

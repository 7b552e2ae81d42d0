// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package modechange

import (
	"errors"

	"github.com/linuxdeepin/go-lib/log"
	"github.com/maemo-leste/systemui-modechange/loader"
)

var logger = log.NewLogger("systemui/modechange")

func init() {
	loader.Register(newModule(logger))
}

type Module struct {
	controller *Controller
	*loader.ModuleBase
}

func newModule(logger *log.Logger) *Module {
	m := new(Module)
	m.ModuleBase = loader.NewModuleBase("modechange", m, logger)
	return m
}

func (m *Module) GetDependencies() []string {
	return []string{}
}

func (m *Module) Start() error {
	if m.controller != nil {
		return nil
	}
	host := loader.GetHost()
	if host == nil {
		return errors.New("no systemui host")
	}

	c := NewController()
	var ok bool
	if !host.Loop().Call(func() {
		ok = c.Init(host.Data())
	}) {
		return errors.New("main loop is gone")
	}
	if !ok {
		return errors.New("failed to init modechange")
	}
	m.controller = c
	return nil
}

func (m *Module) Stop() error {
	if m.controller == nil {
		return nil
	}
	host := loader.GetHost()
	c := m.controller
	m.controller = nil
	if host == nil {
		return nil
	}
	if !host.Loop().Call(func() {
		c.Close(host.Data())
	}) {
		logger.Warning("main loop is gone, skip close")
	}
	return nil
}

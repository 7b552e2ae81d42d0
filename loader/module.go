// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package loader

import (
	"fmt"
	"sync"

	"github.com/linuxdeepin/go-lib/log"
)

// Module is a systemui plugin.
type Module interface {
	Name() string
	IsEnable() bool
	Enable(bool) error
	GetDependencies() []string
	SetLogLevel(log.Priority)
	LogLevel() log.Priority
	WaitEnable()
	ModuleImpl
}

type Modules map[string]Module

// ModuleImpl holds the plugin entry points. Start is plugin init, Stop is
// plugin close; both must be synchronous.
type ModuleImpl interface {
	Start() error
	Stop() error
}

type ModuleBase struct {
	impl    ModuleImpl
	enabled bool
	name    string
	log     *log.Logger

	mu       sync.Mutex
	wg       sync.WaitGroup
	waitDone bool
}

func NewModuleBase(name string, impl ModuleImpl, logger *log.Logger) *ModuleBase {
	m := &ModuleBase{
		name: name,
		impl: impl,
		log:  logger,
	}

	// modules depending on this one may wait before Enable is ever called
	m.wg.Add(1)

	return m
}

func (d *ModuleBase) doEnable(enable bool) error {
	if d.impl != nil {
		fn := d.impl.Stop
		if enable {
			fn = d.impl.Start
		}

		if err := fn(); err != nil {
			return err
		}
	}

	d.mu.Lock()
	d.enabled = enable
	if enable && !d.waitDone {
		d.waitDone = true
		d.wg.Done()
	}
	d.mu.Unlock()
	return nil
}

func (d *ModuleBase) Enable(enable bool) error {
	if d.IsEnable() == enable {
		if enable {
			return fmt.Errorf("plugin %s is already started", d.name)
		}
		return fmt.Errorf("plugin %s is not started", d.name)
	}
	return d.doEnable(enable)
}

func (d *ModuleBase) IsEnable() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enabled
}

// failed releases modules waiting on this one when Start failed.
func (d *ModuleBase) failed() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.waitDone {
		d.waitDone = true
		d.wg.Done()
	}
}

func (d *ModuleBase) WaitEnable() {
	d.wg.Wait()
}

func (d *ModuleBase) Name() string {
	return d.name
}

func (d *ModuleBase) SetLogLevel(pri log.Priority) {
	d.log.SetLogLevel(pri)
}

func (d *ModuleBase) LogLevel() log.Priority {
	return d.log.GetLogLevel()
}

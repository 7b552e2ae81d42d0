// SPDX-FileCopyrightText: 2018 - 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package loader

import (
	"sync"

	"github.com/linuxdeepin/go-lib/log"
	"github.com/maemo-leste/systemui-modechange/systemui"
)

var loaderInitializer sync.Once
var _loader *Loader

// plugins read the host from Start while the loader lock is held
var hostMu sync.Mutex
var _host *systemui.Host

func getLoader() *Loader {
	loaderInitializer.Do(func() {
		_loader = &Loader{
			modules: Modules{},
			log:     log.NewLogger("systemui/loader"),
		}
	})
	return _loader
}

// SetHost hands the host to plugins, call it before starting any.
func SetHost(h *systemui.Host) {
	hostMu.Lock()
	_host = h
	hostMu.Unlock()
}

func GetHost() *systemui.Host {
	hostMu.Lock()
	defer hostMu.Unlock()
	return _host
}

func Register(m Module) {
	loader := getLoader()
	loader.AddModule(m)
}

func List() []Module {
	return getLoader().List()
}

func GetModule(name string) Module {
	return getLoader().GetModule(name)
}

func SetLogLevel(pri log.Priority) {
	getLoader().SetLogLevel(pri)
}

func EnableModules(enablingModules []string, disableModules []string, flag EnableFlag) error {
	return getLoader().EnableModules(enablingModules, disableModules, flag)
}

func ToggleLogDebug(enabled bool) {
	var priority log.Priority = log.LevelInfo
	if enabled {
		priority = log.LevelDebug
	}
	for _, m := range getLoader().List() {
		m.SetLogLevel(priority)
	}
}

func StartAll() error {
	allModules := getLoader().List()
	modules := []string{}
	for _, module := range allModules {
		modules = append(modules, module.Name())
	}
	return getLoader().EnableModules(modules, []string{}, EnableFlagNone)
}

// StopAll stops started plugins, dependents before their dependencies.
func StopAll() {
	getLoader().StopModules()
}

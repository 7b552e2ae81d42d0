// SPDX-FileCopyrightText: 2018 - 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package loader

import (
	"fmt"
	"sync"
	"time"

	"github.com/linuxdeepin/go-lib/log"
)

type EnableFlag int

const (
	EnableFlagNone EnableFlag = 1 << iota
	EnableFlagIgnoreMissingModule
	EnableFlagForceStart
)

func (flags EnableFlag) HasFlag(flag EnableFlag) bool {
	return flags&flag != 0
}

const (
	ErrorNoDependencies int = iota
	ErrorCircleDependencies
	ErrorMissingModule
	ErrorInternalError
	ErrorConflict
)

type EnableError struct {
	ModuleName string
	Code       int
	detail     string
}

func (e *EnableError) Error() string {
	switch e.Code {
	case ErrorNoDependencies:
		return fmt.Sprintf("%s's dependencies is not meet, %s is need", e.ModuleName, e.detail)
	case ErrorCircleDependencies:
		return "dependency circle"
	case ErrorMissingModule:
		return fmt.Sprintf("%s is missing", e.ModuleName)
	case ErrorInternalError:
		return fmt.Sprintf("%s started failed: %s", e.ModuleName, e.detail)
	case ErrorConflict:
		return fmt.Sprintf("tring to enable disabled plugin(%s)", e.ModuleName)
	}
	panic("EnableError: Unknown Error, Should not be reached")
}

type failer interface {
	failed()
}

type Loader struct {
	modules Modules
	log     *log.Logger
	lock    sync.Mutex

	// start order, StopModules walks it backwards
	started []string
}

func (l *Loader) SetLogLevel(pri log.Priority) {
	l.log.SetLogLevel(pri)

	l.lock.Lock()
	defer l.lock.Unlock()

	for _, module := range l.modules {
		module.SetLogLevel(pri)
	}
}

func (l *Loader) AddModule(m Module) {
	l.lock.Lock()
	defer l.lock.Unlock()
	name := m.Name()
	_, exist := l.modules[name]
	if exist {
		l.log.Debug("Register", name, "is already registered")
		return
	}
	l.log.Debug("Register plugin:", name)
	l.modules[name] = m
}

func (l *Loader) DeleteModule(name string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	delete(l.modules, name)
}

func (l *Loader) List() []Module {
	l.lock.Lock()
	defer l.lock.Unlock()
	modules := make([]Module, 0, len(l.modules))
	for _, m := range l.modules {
		modules = append(modules, m)
	}
	return modules
}

func (l *Loader) GetModule(name string) Module {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.modules[name]
}

func (l *Loader) WaitDependencies(module Module) {
	for _, dependencyName := range module.GetDependencies() {
		if dep, ok := l.modules[dependencyName]; ok {
			dep.WaitEnable()
		}
	}
}

func (l *Loader) EnableModules(enablingModules []string, disableModules []string, flag EnableFlag) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	startTime := time.Now()
	builder := NewDAGBuilder(l, enablingModules, disableModules, flag)
	dag, err := builder.Execute()
	if err != nil {
		return err
	}

	nodes, ok := dag.TopologicalDag()
	if !ok {
		return &EnableError{Code: ErrorCircleDependencies}
	}
	l.log.Infof("topo sort done, cost %s", time.Since(startTime))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	for _, node := range nodes {
		module, ok := l.modules[node.ID]
		if !ok {
			// missing and ignored
			continue
		}
		if module.IsEnable() {
			continue
		}
		name := node.ID

		wg.Add(1)
		go func() {
			defer wg.Done()
			l.log.Info("enable plugin", name)
			startTime := time.Now()

			l.WaitDependencies(module)
			err := module.Enable(true)
			if err != nil {
				l.log.Errorf("enable plugin %s failed: %s, cost %s", name, err, time.Since(startTime))
				if f, ok := module.(failer); ok {
					f.failed()
				}
				mu.Lock()
				if firstErr == nil {
					firstErr = &EnableError{ModuleName: name, Code: ErrorInternalError, detail: err.Error()}
				}
				mu.Unlock()
				return
			}
			l.log.Infof("enable plugin %s done cost %s", name, time.Since(startTime))
			mu.Lock()
			l.started = append(l.started, name)
			mu.Unlock()
		}()
	}
	wg.Wait()

	l.log.Infof("enable plugins done, cost add up to %s", time.Since(startTime))
	return firstErr
}

// StopModules stops plugins in reverse start order.
func (l *Loader) StopModules() {
	l.lock.Lock()
	defer l.lock.Unlock()

	for i := len(l.started) - 1; i >= 0; i-- {
		name := l.started[i]
		module, ok := l.modules[name]
		if !ok || !module.IsEnable() {
			continue
		}
		err := module.Enable(false)
		if err != nil {
			l.log.Warningf("stop plugin %s failed: %v", name, err)
			continue
		}
		l.log.Info("stop plugin", name)
	}
	l.started = nil
}

// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/godbus/dbus/v5"
	. "github.com/linuxdeepin/go-lib/gettext"
	"github.com/linuxdeepin/go-lib/log"
	"github.com/linuxdeepin/go-lib/strv"
	"github.com/maemo-leste/systemui-modechange/common/dconfig"
	"github.com/maemo-leste/systemui-modechange/common/keyconf"
	"github.com/maemo-leste/systemui-modechange/common/note"
	"github.com/maemo-leste/systemui-modechange/debug"
	"github.com/maemo-leste/systemui-modechange/loader"
	"github.com/maemo-leste/systemui-modechange/systemui"
)

const (
	toolkitNotify = "notify"
	toolkitZenity = "zenity"
)

func toLogLevel(name string) (log.Priority, error) {
	name = strings.ToLower(name)
	logLevel := log.LevelInfo
	var err error
	switch name {
	case "":
		logLevel = log.LevelInfo
	case "error":
		logLevel = log.LevelError
	case "warn":
		logLevel = log.LevelWarning
	case "info":
		logLevel = log.LevelInfo
	case "debug":
		logLevel = log.LevelDebug
	case "no":
		logLevel = log.LevelDisable
	default:
		err = fmt.Errorf("%s is not support", name)
	}

	return logLevel, err
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	list := strv.Strv(strings.Split(value, ",")).FilterEmpty()
	for i := range list {
		list[i] = strings.TrimSpace(list[i])
	}
	return list
}

func getEnableFlag() loader.EnableFlag {
	enableFlag := loader.EnableFlagNone
	if _options.ignore {
		enableFlag |= loader.EnableFlagIgnoreMissingModule
	}
	if _options.force {
		enableFlag |= loader.EnableFlagForceStart
	}
	return enableFlag
}

// plugins only started through -enable
var defaultDisabled = []string{debug.Name}

// startModules starts the listed plugins, or every registered one except
// the disabled ones.
func startModules(enable, disable string, flag loader.EnableFlag) error {
	enabling := splitList(enable)
	disabled := splitList(disable)
	if len(enabling) == 0 {
		disabled = append(disabled, defaultDisabled...)
		for _, m := range loader.List() {
			if !strv.Strv(disabled).Contains(m.Name()) {
				enabling = append(enabling, m.Name())
			}
		}
	}
	logger.Info("enable plugins:", enabling, "disabled:", disabled)
	return loader.EnableModules(enabling, disabled, flag)
}

func listModules(w io.Writer, name string) error {
	var modules []loader.Module
	if name == "all" {
		modules = loader.List()
	} else {
		m := loader.GetModule(name)
		if m == nil {
			return fmt.Errorf("no such plugin %q", name)
		}
		modules = []loader.Module{m}
	}
	sort.Slice(modules, func(i, j int) bool {
		return modules[i].Name() < modules[j].Name()
	})
	for _, m := range modules {
		deps := m.GetDependencies()
		if len(deps) == 0 {
			_, err := fmt.Fprintln(w, m.Name())
			if err != nil {
				return err
			}
			continue
		}
		_, err := fmt.Fprintf(w, "%s: %s\n", m.Name(), strings.Join(deps, " "))
		if err != nil {
			return err
		}
	}
	return nil
}

// newConfig chains dconfig and the key file, dconfig wins.
// newConfig chains dconfig ahead of the key file.
func newConfig(systemConn *dbus.Conn, file string) (systemui.ConfigChain, func()) {
	var chain systemui.ConfigChain
	var closers []func()

	if systemConn != nil {
		dc := dconfig.NewClient(systemConn)
		chain = append(chain, dc)
		closers = append(closers, dc.Close)
	}

	kc, err := keyconf.New(file)
	if err != nil {
		logger.Warningf("failed to load %s: %v", file, err)
	} else {
		chain = append(chain, kc)
	}

	return chain, func() {
		for _, fn := range closers {
			fn()
		}
	}
}

func newNoteFactory(toolkit string, loop systemui.Poster, grabs *systemui.GrabStack,
	sessionConn, systemConn *dbus.Conn) (systemui.NoteFactory, func(), error) {
	switch toolkit {
	case toolkitNotify:
		f := note.NewNotifyFactory(loop, sessionConn, systemConn)
		return f, f.Close, nil
	case toolkitZenity:
		return note.NewZenityFactory(loop, grabs, Tr("Flight mode")), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown toolkit %q", toolkit)
	}
}

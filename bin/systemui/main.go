// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/linuxdeepin/go-lib/dbusutil"
	. "github.com/linuxdeepin/go-lib/gettext"
	"github.com/linuxdeepin/go-lib/log"
	"github.com/maemo-leste/systemui-modechange/common/keyconf"
	"github.com/maemo-leste/systemui-modechange/loader"
	"github.com/maemo-leste/systemui-modechange/systemui"

	// plugins:
	_ "github.com/maemo-leste/systemui-modechange/modechange"
)

var logger = log.NewLogger("systemui/daemon")

var _options struct {
	verbose  bool
	logLevel string
	toolkit  string
	config   string
	list     string
	enable   string
	disable  string
	ignore   bool
	force    bool
}

func init() {
	// -v | -verbose
	const verboseUsage = "Show much more message, shorthand for --loglevel debug."
	flag.BoolVar(&_options.verbose, "v", false, verboseUsage)
	flag.BoolVar(&_options.verbose, "verbose", false, verboseUsage)

	// -l | -loglevel
	const logLevelUsage = "Set log level, possible value is error/warn/info/debug/no, info is default"
	flag.StringVar(&_options.logLevel, "l", "", logLevelUsage)
	flag.StringVar(&_options.logLevel, "loglevel", "", logLevelUsage)

	// -f | -force
	const forceUsage = "Force start disabled plugins."
	flag.BoolVar(&_options.force, "f", false, forceUsage)
	flag.BoolVar(&_options.force, "force", false, forceUsage)

	// -i | -ignore
	const ignoreUsage = "Ignore missing plugins."
	flag.BoolVar(&_options.ignore, "i", true, ignoreUsage)
	flag.BoolVar(&_options.ignore, "ignore", true, ignoreUsage)

	flag.StringVar(&_options.toolkit, "toolkit", toolkitNotify,
		"How confirmation notes are shown, notify or zenity.")
	flag.StringVar(&_options.config, "config", keyconf.DefaultFile,
		"Key file read when a setting is not in dconfig.")

	// -list
	flag.StringVar(&_options.list, "list", "",
		"List all the plugins or the dependencies of one plugin. The argument can be all or the name of the plugin.")

	// -enable
	flag.StringVar(&_options.enable, "enable", "",
		"Enable plugins and their dependencies, comma separated.")

	// -disable
	flag.StringVar(&_options.disable, "disable", "", "Disable plugins, comma separated.")
}

func main() {
	flag.Parse()
	InitI18n()
	BindTextdomainCodeset("systemui", "UTF-8")
	Textdomain("systemui")

	if _options.verbose {
		_options.logLevel = "debug"
	}
	logLevel, err := toLogLevel(_options.logLevel)
	if err != nil {
		logger.Warning("failed to parse loglevel:", err)
		os.Exit(1)
	}
	logger.SetLogLevel(logLevel)
	loader.SetLogLevel(logLevel)

	if _options.list != "" {
		err = listModules(os.Stdout, _options.list)
		if err != nil {
			logger.Warning(err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	service, err := dbusutil.NewSessionService()
	if err != nil {
		logger.Fatal("failed to new session service", err)
	}

	hasOwner, err := service.NameHasOwner(systemui.ServiceName)
	if err != nil {
		logger.Fatal("failed to call NameHasOwner:", err)
	}
	if hasOwner {
		logger.Warningf("name %q already has the owner", systemui.ServiceName)
		os.Exit(1)
	}

	systemConn, err := dbus.SystemBus()
	if err != nil {
		logger.Warning("no system bus, dconfig and key events are off:", err)
		systemConn = nil
	}

	loop := systemui.NewMainLoop()
	data := systemui.NewData()
	data.Caller = systemui.NewDBusCaller(service.Conn())

	config, closeConfig := newConfig(systemConn, _options.config)
	defer closeConfig()
	data.Config = config

	notes, closeNotes, err := newNoteFactory(_options.toolkit, loop, data.Grabs, service.Conn(), systemConn)
	if err != nil {
		logger.Fatal(err)
	}
	defer closeNotes()
	data.Notes = notes

	host := systemui.NewHost(service, loop, data)
	err = host.Export()
	if err != nil {
		logger.Fatal("failed to export:", err)
	}
	loader.SetHost(host)

	go loop.Run()

	err = startModules(_options.enable, _options.disable, getEnableFlag())
	if err != nil {
		logger.Warning(err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("got signal", sig)
		service.Quit()
	}()

	service.Wait()

	loader.StopAll()
	host.Unexport()
	loop.Quit()
	<-loop.Done()
	logger.Info("systemui has been terminated")
}

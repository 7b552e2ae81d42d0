// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package systemui

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/godbus/dbus/v5"
	"github.com/linuxdeepin/go-lib/dbusutil"
)

const errInvalidArgs = "org.freedesktop.DBus.Error.InvalidArgs"

var (
	senderType  = reflect.TypeOf(dbus.Sender(""))
	variantType = reflect.TypeOf(dbus.Variant{})
	int32Type   = reflect.TypeOf(int32(0))
	busErrType  = reflect.TypeOf((*dbus.Error)(nil))
)

// Host exports one D-Bus method per registered handler and feeds the
// requests to the plugins through the main loop.
type Host struct {
	service *dbusutil.Service
	loop    *MainLoop
	data    *Data

	exportTable func(table map[string]interface{}) error
}

func NewHost(service *dbusutil.Service, loop *MainLoop, data *Data) *Host {
	h := &Host{
		service: service,
		loop:    loop,
		data:    data,
	}
	if service != nil {
		h.exportTable = func(table map[string]interface{}) error {
			return service.Conn().ExportMethodTable(table, dbusPath, dbusInterface)
		}
	}
	return h
}

func (h *Host) Data() *Data {
	return h.data
}

func (h *Host) Loop() *MainLoop {
	return h.loop
}

func (h *Host) Service() *dbusutil.Service {
	return h.service
}

// Export puts the request methods on the bus and takes the well-known
// name. The method table follows every later AddHandler and RemoveHandler.
func (h *Host) Export() error {
	if h.service == nil {
		return errors.New("no service")
	}
	err := h.exportMethods()
	if err != nil {
		return err
	}
	return h.service.RequestName(dbusServiceName)
}

func (h *Host) exportMethods() error {
	h.data.SetHandlersChanged(func() {
		err := h.exportTable(h.methodTable())
		if err != nil {
			logger.Warning("failed to export request methods:", err)
		}
	})
	return h.exportTable(h.methodTable())
}

func (h *Host) Unexport() {
	if h.exportTable == nil {
		return
	}
	h.data.SetHandlersChanged(nil)
	err := h.exportTable(nil)
	if err != nil {
		logger.Warning(err)
	}
	if h.service == nil {
		return
	}
	err = h.service.ReleaseName(dbusServiceName)
	if err != nil {
		logger.Warning(err)
	}
}

// methodTable maps every handler name to a method taking the handler's
// wire arguments. Runs on the main loop once handlers exist.
func (h *Host) methodTable() map[string]interface{} {
	table := map[string]interface{}{
		"ListHandlers": h.ListHandlers,
	}
	for _, name := range h.data.HandlerNames() {
		wire, _ := h.data.HandlerArgs(name)
		table[name] = h.makeMethod(name, len(wire))
	}
	return table
}

// makeMethod builds func(dbus.Sender, dbus.Variant...) (int32, *dbus.Error)
// with exactly argc variants, godbus matches the call body by arity.
func (h *Host) makeMethod(name string, argc int) interface{} {
	in := make([]reflect.Type, 0, argc+1)
	in = append(in, senderType)
	for i := 0; i < argc; i++ {
		in = append(in, variantType)
	}
	fnType := reflect.FuncOf(in, []reflect.Type{int32Type, busErrType}, false)

	fn := reflect.MakeFunc(fnType, func(params []reflect.Value) []reflect.Value {
		sender := params[0].Interface().(dbus.Sender)
		variants := make([]dbus.Variant, 0, argc)
		for _, p := range params[1:] {
			variants = append(variants, p.Interface().(dbus.Variant))
		}

		reply, busErr := h.call(sender, name, variants)
		errValue := reflect.Zero(busErrType)
		if busErr != nil {
			errValue = reflect.ValueOf(busErr)
		}
		return []reflect.Value{reflect.ValueOf(reply), errValue}
	})
	return fn.Interface()
}

// call runs the handler registered as name. An int32 result is the
// reply, a request acknowledged without result replies its status code.
func (h *Host) call(sender dbus.Sender, name string, variants []dbus.Variant) (int32, *dbus.Error) {
	logger.Debugf("request %q from %s, %d args", name, sender, len(variants))

	args, err := ArgsFromVariants(variants)
	if err != nil {
		logger.Warningf("reject request %q: %v", name, err)
		return 0, dbus.NewError(errInvalidArgs, []interface{}{err.Error()})
	}

	var status int32
	var res Arg
	ok := h.loop.Call(func() {
		status = h.data.Dispatch(name, dbusInterface, name, args, &res)
	})
	if !ok {
		return 0, dbusutil.ToError(errors.New("main loop is not running"))
	}

	switch status {
	case ReplyInt32:
		return res.Int32(), nil
	case ReplyVariant:
		return status, nil
	}
	return 0, dbus.NewError(errInvalidArgs, []interface{}{fmt.Sprintf("%s: request rejected", name)})
}

func (h *Host) ListHandlers() (names []string, busErr *dbus.Error) {
	ok := h.loop.Call(func() {
		names = h.data.HandlerNames()
	})
	if !ok {
		return nil, dbusutil.ToError(errors.New("main loop is not running"))
	}
	return names, nil
}

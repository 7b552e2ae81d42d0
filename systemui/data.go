// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package systemui

import (
	"sort"

	"github.com/linuxdeepin/go-lib/log"
)

var logger = log.NewLogger("systemui/host")

// Data is what the host hands to every plugin entry point. All of it is
// owned by the host and only touched on the main loop.
type Data struct {
	// Window is the parent for plugin dialogs, may be nil.
	Window   Window
	Config   ConfigClient
	Notes    NoteFactory
	Priority *WindowPriority
	Grabs    *GrabStack
	Caller   CallbackCaller

	handlers map[string]handlerEntry
	changed  func()
}

type handlerEntry struct {
	fn   Handler
	wire []ArgType
}

func NewData() *Data {
	return &Data{
		Priority: NewWindowPriority(),
		Grabs:    &GrabStack{},
		handlers: make(map[string]handlerEntry),
	}
}

// AddHandler routes requests called name to fn, replacing an older one.
// wire lists the argument types a caller sends, see CallbackArgs.
func (d *Data) AddHandler(name string, fn Handler, wire ...ArgType) {
	if d.handlers == nil {
		d.handlers = make(map[string]handlerEntry)
	}
	if _, ok := d.handlers[name]; ok {
		logger.Warningf("handler %q already registered, replacing", name)
	}
	logger.Debug("add handler", name, wire)
	d.handlers[name] = handlerEntry{fn: fn, wire: wire}
	d.notifyChanged()
}

func (d *Data) RemoveHandler(name string) {
	if _, ok := d.handlers[name]; !ok {
		return
	}
	logger.Debug("remove handler", name)
	delete(d.handlers, name)
	d.notifyChanged()
}

// HandlerArgs returns the wire argument types name was registered with.
func (d *Data) HandlerArgs(name string) ([]ArgType, bool) {
	entry, ok := d.handlers[name]
	if !ok {
		return nil, false
	}
	return entry.wire, true
}

// SetHandlersChanged installs fn to run after every AddHandler or
// RemoveHandler. nil removes it.
func (d *Data) SetHandlersChanged(fn func()) {
	d.changed = fn
}

func (d *Data) notifyChanged() {
	if d.changed != nil {
		d.changed()
	}
}

func (d *Data) HandlerNames() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the handler registered for name. Unknown names get
// ReplyInvalid.
func (d *Data) Dispatch(name, iface, method string, args []Arg, result *Arg) int32 {
	entry, ok := d.handlers[name]
	if !ok {
		logger.Warningf("no handler for %q", name)
		return ReplyInvalid
	}
	return entry.fn(iface, method, args, d, result)
}

// DoCallback invokes the callback in the slot, an empty slot is a no-op.
// The slot is not cleared, pair it with FreeCallback.
func (d *Data) DoCallback(cb *Callback, argc int32) {
	if !cb.IsSet() {
		return
	}
	if d.Caller == nil {
		logger.Warning("no callback caller, drop", cb)
		return
	}
	logger.Debugf("callback %v with %d", cb, argc)
	err := d.Caller.CallCallback(*cb, argc)
	if err != nil {
		logger.Warningf("callback %v failed: %v", cb, err)
	}
}

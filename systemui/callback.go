// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package systemui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
	"golang.org/x/xerrors"
)

// Callback is where the answer to a request goes: a D-Bus method taking
// one int32. The zero value is an empty slot.
type Callback struct {
	Service   string
	Path      dbus.ObjectPath
	Interface string
	Method    string
}

func (cb *Callback) IsSet() bool {
	return cb != nil && cb.Service != ""
}

func (cb *Callback) String() string {
	if !cb.IsSet() {
		return "<none>"
	}
	return fmt.Sprintf("%s %s %s.%s", cb.Service, cb.Path, cb.Interface, cb.Method)
}

var errBadCallback = errors.New("bad callback descriptor")

// SetCallback reads the callback descriptor at the head of args into cb,
// replacing whatever the slot held. On error cb is left untouched.
func SetCallback(args []Arg, cb *Callback) error {
	if cb == nil {
		return xerrors.Errorf("nil callback slot: %w", errBadCallback)
	}
	if len(args) < callbackArgCount {
		return xerrors.Errorf("%d arguments: %w", len(args), errBadCallback)
	}
	var fields [callbackArgCount]string
	for i := 0; i < callbackArgCount; i++ {
		if args[i].Type != ArgString {
			return xerrors.Errorf("argument %d is %v: %w", i, args[i].Type, errBadCallback)
		}
		fields[i] = args[i].Str()
		if fields[i] == "" {
			return xerrors.Errorf("argument %d is empty: %w", i, errBadCallback)
		}
	}

	path := dbus.ObjectPath(fields[1])
	if !path.IsValid() {
		return xerrors.Errorf("invalid object path %q: %w", fields[1], errBadCallback)
	}
	if !strings.Contains(fields[2], ".") {
		return xerrors.Errorf("invalid interface %q: %w", fields[2], errBadCallback)
	}

	if cb.IsSet() {
		logger.Debug("replace callback", cb)
	}
	*cb = Callback{
		Service:   fields[0],
		Path:      path,
		Interface: fields[2],
		Method:    fields[3],
	}
	return nil
}

// FreeCallback empties the slot without invoking it.
func FreeCallback(cb *Callback) {
	if cb == nil {
		return
	}
	*cb = Callback{}
}

// CallbackCaller delivers a callback invocation.
type CallbackCaller interface {
	CallCallback(cb Callback, argc int32) error
}

type dbusCaller struct {
	conn *dbus.Conn
}

// NewDBusCaller sends callbacks as method calls that expect no reply.
func NewDBusCaller(conn *dbus.Conn) CallbackCaller {
	return &dbusCaller{conn: conn}
}

func (c *dbusCaller) CallCallback(cb Callback, argc int32) error {
	obj := c.conn.Object(cb.Service, cb.Path)
	call := obj.Go(cb.Interface+"."+cb.Method, dbus.FlagNoReplyExpected, nil, argc)
	return call.Err
}

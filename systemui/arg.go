// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package systemui

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// ArgType is the D-Bus type code of a request argument.
type ArgType byte

const (
	ArgInvalid ArgType = 0
	ArgString  ArgType = 's'
	ArgUint32  ArgType = 'u'
	ArgInt32   ArgType = 'i'
	ArgBool    ArgType = 'b'
)

func (t ArgType) String() string {
	switch t {
	case ArgString:
		return "string"
	case ArgUint32:
		return "uint32"
	case ArgInt32:
		return "int32"
	case ArgBool:
		return "bool"
	}
	return "invalid"
}

// Every request starts with the callback descriptor (service, path,
// interface, method), plugin arguments follow at ArgIndexFirst.
const (
	callbackArgCount = 4
	ArgIndexFirst    = callbackArgCount
)

// Arg is one value of a request argument array. Only the field selected
// by Type is meaningful.
type Arg struct {
	Type ArgType

	str string
	u32 uint32
	i32 int32
	b   bool
}

func NewStringArg(v string) Arg { return Arg{Type: ArgString, str: v} }
func NewUint32Arg(v uint32) Arg { return Arg{Type: ArgUint32, u32: v} }
func NewInt32Arg(v int32) Arg   { return Arg{Type: ArgInt32, i32: v} }
func NewBoolArg(v bool) Arg     { return Arg{Type: ArgBool, b: v} }

func (a Arg) Str() string    { return a.str }
func (a Arg) Uint32() uint32 { return a.u32 }
func (a Arg) Int32() int32   { return a.i32 }
func (a Arg) Bool() bool     { return a.b }

// SetInt32 turns the arg into an int32 result value.
func (a *Arg) SetInt32(v int32) {
	*a = NewInt32Arg(v)
}

// ArgsFromVariants converts the wire arguments of a request.
func ArgsFromVariants(variants []dbus.Variant) ([]Arg, error) {
	args := make([]Arg, 0, len(variants))
	for i, v := range variants {
		switch value := v.Value().(type) {
		case string:
			args = append(args, NewStringArg(value))
		case uint32:
			args = append(args, NewUint32Arg(value))
		case int32:
			args = append(args, NewInt32Arg(value))
		case bool:
			args = append(args, NewBoolArg(value))
		default:
			return nil, fmt.Errorf("argument %d: unsupported type %q", i, v.Signature().String())
		}
	}
	return args, nil
}

// CallbackArgs is the wire signature of a request: the callback
// descriptor followed by the plugin arguments.
func CallbackArgs(plugin ...ArgType) []ArgType {
	wire := make([]ArgType, 0, callbackArgCount+len(plugin))
	for i := 0; i < callbackArgCount; i++ {
		wire = append(wire, ArgString)
	}
	return append(wire, plugin...)
}

// CheckArguments reports whether args is exactly the callback descriptor
// followed by arguments of the supported types.
func CheckArguments(args []Arg, supported []ArgType) bool {
	if len(args) != callbackArgCount+len(supported) {
		logger.Debugf("bad argument count %d, want %d", len(args), callbackArgCount+len(supported))
		return false
	}
	for i, typ := range supported {
		arg := args[ArgIndexFirst+i]
		if arg.Type != typ {
			logger.Debugf("argument %d is %v, want %v", ArgIndexFirst+i, arg.Type, typ)
			return false
		}
	}
	return true
}

// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package systemui

import (
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callbackArgs() []Arg {
	return []Arg{
		NewStringArg("com.example.Mce"),
		NewStringArg("/com/example/mce"),
		NewStringArg("com.example.mce"),
		NewStringArg("mode_reply"),
	}
}

func Test_ArgsFromVariants(t *testing.T) {
	args, err := ArgsFromVariants([]dbus.Variant{
		dbus.MakeVariant("svc"),
		dbus.MakeVariant(uint32(1)),
		dbus.MakeVariant(int32(-2)),
		dbus.MakeVariant(true),
	})
	require.NoError(t, err)
	require.Len(t, args, 4)
	assert.Equal(t, ArgString, args[0].Type)
	assert.Equal(t, "svc", args[0].Str())
	assert.Equal(t, ArgUint32, args[1].Type)
	assert.Equal(t, uint32(1), args[1].Uint32())
	assert.Equal(t, int32(-2), args[2].Int32())
	assert.True(t, args[3].Bool())

	_, err = ArgsFromVariants([]dbus.Variant{dbus.MakeVariant(1.5)})
	assert.Error(t, err)
}

func Test_CheckArguments(t *testing.T) {
	supported := []ArgType{ArgUint32}

	args := append(callbackArgs(), NewUint32Arg(1))
	assert.True(t, CheckArguments(args, supported))

	// no plugin argument
	assert.False(t, CheckArguments(callbackArgs(), supported))
	// nothing at all
	assert.False(t, CheckArguments(nil, supported))
	// wrong type
	args = append(callbackArgs(), NewInt32Arg(1))
	assert.False(t, CheckArguments(args, supported))
	// extra argument
	args = append(callbackArgs(), NewUint32Arg(1), NewUint32Arg(2))
	assert.False(t, CheckArguments(args, supported))
}

func Test_CallbackArgs(t *testing.T) {
	assert.Equal(t, []ArgType{ArgString, ArgString, ArgString, ArgString}, CallbackArgs())
	wire := CallbackArgs(ArgUint32)
	assert.Len(t, wire, ArgIndexFirst+1)
	assert.Equal(t, ArgUint32, wire[ArgIndexFirst])
}

func Test_SetInt32(t *testing.T) {
	var result Arg
	result.SetInt32(CallbackSet)
	assert.Equal(t, ArgInt32, result.Type)
	assert.Equal(t, int32(-2), result.Int32())
}

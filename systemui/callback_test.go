// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package systemui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCaller struct {
	mock.Mock
}

func (m *mockCaller) CallCallback(cb Callback, argc int32) error {
	return m.Called(cb, argc).Error(0)
}

func Test_SetCallback(t *testing.T) {
	var cb Callback
	err := SetCallback(append(callbackArgs(), NewUint32Arg(1)), &cb)
	require.NoError(t, err)
	assert.True(t, cb.IsSet())
	assert.Equal(t, "com.example.Mce", cb.Service)
	assert.Equal(t, "/com/example/mce", string(cb.Path))
	assert.Equal(t, "com.example.mce", cb.Interface)
	assert.Equal(t, "mode_reply", cb.Method)

	// a second install overwrites
	args := callbackArgs()
	args[3] = NewStringArg("other_reply")
	require.NoError(t, SetCallback(args, &cb))
	assert.Equal(t, "other_reply", cb.Method)

	FreeCallback(&cb)
	assert.False(t, cb.IsSet())
	assert.Equal(t, "<none>", cb.String())
}

func Test_SetCallbackInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []Arg
	}{
		{"short", callbackArgs()[:3]},
		{"not string", append(callbackArgs()[:3], NewUint32Arg(1))},
		{"empty service", []Arg{NewStringArg(""), NewStringArg("/a"), NewStringArg("a.b"), NewStringArg("m")}},
		{"bad path", []Arg{NewStringArg("a.b"), NewStringArg("no-slash"), NewStringArg("a.b"), NewStringArg("m")}},
		{"bad interface", []Arg{NewStringArg("a.b"), NewStringArg("/a"), NewStringArg("ab"), NewStringArg("m")}},
	}
	for _, tt := range tests {
		var cb Callback
		err := SetCallback(tt.args, &cb)
		assert.Error(t, err, tt.name)
		assert.True(t, errors.Is(err, errBadCallback), tt.name)
		assert.False(t, cb.IsSet(), tt.name)
	}

	assert.Error(t, SetCallback(callbackArgs(), nil))
}

func Test_DoCallback(t *testing.T) {
	caller := &mockCaller{}
	data := NewData()
	data.Caller = caller

	var cb Callback
	require.NoError(t, SetCallback(callbackArgs(), &cb))
	caller.On("CallCallback", cb, CallbackConfirmed).Return(nil).Once()

	data.DoCallback(&cb, CallbackConfirmed)
	// the slot is still set until freed
	assert.True(t, cb.IsSet())
	FreeCallback(&cb)
	data.DoCallback(&cb, CallbackConfirmed)

	caller.AssertExpectations(t)
	caller.AssertNumberOfCalls(t, "CallCallback", 1)
}

func Test_DoCallbackError(t *testing.T) {
	caller := &mockCaller{}
	data := NewData()
	data.Caller = caller

	var cb Callback
	require.NoError(t, SetCallback(callbackArgs(), &cb))
	caller.On("CallCallback", cb, CallbackDeclined).Return(errors.New("bus gone"))

	data.DoCallback(&cb, CallbackDeclined)
	caller.AssertExpectations(t)

	// no caller configured only logs
	data.Caller = nil
	data.DoCallback(&cb, CallbackDeclined)
}

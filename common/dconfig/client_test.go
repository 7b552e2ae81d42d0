// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dconfig

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	DConfigManager "github.com/linuxdeepin/go-dbus-factory/org.desktopspec.ConfigManager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResource map[string]interface{}

func (r fakeResource) GetValueInt(key string) (int, error) {
	v, ok := r[key]
	if !ok {
		return 0, errors.New("no such key")
	}
	return toInt(v)
}

func Test_SplitKey(t *testing.T) {
	resource, key, err := SplitKey("/system/systemui/modechange/window_priority")
	require.NoError(t, err)
	assert.Equal(t, "org.maemo.systemui.modechange", resource)
	assert.Equal(t, "window_priority", key)

	resource, key, err = SplitKey("/system/systemui/tklock/mode/timeout")
	require.NoError(t, err)
	assert.Equal(t, "org.maemo.systemui.tklock.mode", resource)
	assert.Equal(t, "timeout", key)

	for _, bad := range []string{
		"/apps/other/key",
		"/system/systemui/window_priority",
		"/system/systemui/modechange/",
		"/system/systemui//key",
	} {
		_, _, err = SplitKey(bad)
		assert.Error(t, err, bad)
	}
}

func Test_ClientGetInt(t *testing.T) {
	var acquired []string
	c := &Client{resources: make(map[string]*DConfig)}
	c.acquire = func(name string) (valueGetter, error) {
		acquired = append(acquired, name)
		if name != "org.maemo.systemui.modechange" {
			return nil, errors.New("no such resource")
		}
		return fakeResource{"window_priority": float64(80)}, nil
	}

	v, err := c.GetInt("/system/systemui/modechange/window_priority")
	require.NoError(t, err)
	assert.Equal(t, 80, v)

	_, err = c.GetInt("/system/systemui/modechange/missing")
	assert.Error(t, err)

	_, err = c.GetInt("/system/systemui/other/window_priority")
	assert.Error(t, err)
	assert.Equal(t, []string{
		"org.maemo.systemui.modechange",
		"org.maemo.systemui.modechange",
		"org.maemo.systemui.other",
	}, acquired)
}

func Test_toInt(t *testing.T) {
	tests := []struct {
		in      interface{}
		want    int
		wantErr bool
	}{
		{int32(60), 60, false},
		{int64(150), 150, false},
		{uint32(7), 7, false},
		{float64(60), 60, false},
		{float64(1.5), 0, true},
		{"60", 0, true},
		{true, 0, true},
	}
	for _, tt := range tests {
		got, err := toInt(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "%v", tt.in)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func Test_DConfigRelease(t *testing.T) {
	m := &DConfigManager.MockManager{}
	m.MockInterfaceManager.On("Value", dbus.Flags(0), "window_priority").Return(dbus.MakeVariant(float64(70)), nil)
	m.MockInterfaceManager.On("Release", dbus.Flags(0)).Return(nil)

	dc := &DConfig{manager: m}
	v, err := dc.GetValueInt("window_priority")
	require.NoError(t, err)
	assert.Equal(t, 70, v)

	dc.Close()
	dc.Close()
	m.MockInterfaceManager.AssertNumberOfCalls(t, "Release", 1)
	_, err = dc.GetValueInt("window_priority")
	assert.Error(t, err)
}

func Test_ClientCloseReleases(t *testing.T) {
	m1 := &DConfigManager.MockManager{}
	m1.MockInterfaceManager.On("Release", dbus.Flags(0)).Return(nil)
	m2 := &DConfigManager.MockManager{}
	m2.MockInterfaceManager.On("Release", dbus.Flags(0)).Return(errors.New("gone"))

	c := &Client{resources: map[string]*DConfig{
		"org.maemo.systemui.modechange": {manager: m1},
		"org.maemo.systemui.other":      {manager: m2},
	}}
	c.Close()
	assert.Empty(t, c.resources)
	m1.MockInterfaceManager.AssertNumberOfCalls(t, "Release", 1)
	m2.MockInterfaceManager.AssertNumberOfCalls(t, "Release", 1)
}

// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package modechange

import (
	"testing"

	"github.com/maemo-leste/systemui-modechange/loader"
	"github.com/maemo-leste/systemui-modechange/systemui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Module(t *testing.T) {
	m := newModule(logger)
	assert.Equal(t, "modechange", m.Name())
	assert.Empty(t, m.GetDependencies())

	loader.SetHost(nil)
	assert.Error(t, m.Start())

	loop := systemui.NewMainLoop()
	go loop.Run()
	defer func() {
		loop.Quit()
		<-loop.Done()
	}()
	data := systemui.NewData()
	data.Notes = &fakeFactory{}
	loader.SetHost(systemui.NewHost(nil, loop, data))
	defer loader.SetHost(nil)

	require.NoError(t, m.Start())
	// started once
	require.NoError(t, m.Start())
	var names []string
	loop.Call(func() {
		names = data.HandlerNames()
	})
	assert.Equal(t, []string{modechangeClose, modechangeOpen}, names)

	require.NoError(t, m.Stop())
	loop.Call(func() {
		names = data.HandlerNames()
	})
	assert.Empty(t, names)
	assert.NoError(t, m.Stop())
}

func Test_ModuleRegistered(t *testing.T) {
	assert.NotNil(t, loader.GetModule("modechange"))
}

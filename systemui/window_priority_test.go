// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package systemui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testWindow struct {
	name   string
	mapped bool
	maps   int
}

func (w *testWindow) Map() {
	w.mapped = true
	w.maps++
}

func (w *testWindow) Unmap() {
	w.mapped = false
}

func Test_WindowPriority(t *testing.T) {
	wp := NewWindowPriority()
	low := &testWindow{name: "low"}
	high := &testWindow{name: "high"}

	wp.ShowWindow(low, 60)
	assert.True(t, low.mapped)
	assert.Equal(t, Window(low), wp.Top())

	wp.ShowWindow(high, 150)
	assert.True(t, high.mapped)
	assert.False(t, low.mapped)

	wp.HideWindow(high)
	assert.False(t, high.mapped)
	assert.True(t, low.mapped)
	assert.Equal(t, 1, wp.Len())

	wp.HideWindow(low)
	assert.False(t, low.mapped)
	assert.Nil(t, wp.Top())
	assert.Equal(t, 0, wp.Len())
}

func Test_WindowPriorityTie(t *testing.T) {
	wp := NewWindowPriority()
	first := &testWindow{name: "first"}
	second := &testWindow{name: "second"}

	wp.ShowWindow(first, 60)
	wp.ShowWindow(second, 60)
	assert.True(t, second.mapped)
	assert.False(t, first.mapped)

	// showing the top window again does not map it twice
	wp.ShowWindow(second, 60)
	assert.Equal(t, 1, second.maps)

	// hiding a window below the top leaves the top alone
	wp.HideWindow(first)
	assert.True(t, second.mapped)
	assert.Equal(t, 1, wp.Len())
}

func Test_WindowPriorityIgnore(t *testing.T) {
	wp := NewWindowPriority()
	w := &testWindow{}
	wp.HideWindow(nil)
	wp.HideWindow(w)
	wp.ShowWindow(nil, 10)
	assert.Equal(t, 0, wp.Len())
	assert.Equal(t, 0, w.maps)
}

func Test_GrabStack(t *testing.T) {
	var g GrabStack
	a, b := &testWindow{name: "a"}, &testWindow{name: "b"}
	assert.Nil(t, g.Current())

	g.Add(a)
	g.Add(b)
	assert.Equal(t, Window(b), g.Current())
	g.Remove(b)
	assert.Equal(t, Window(a), g.Current())
	g.Remove(a)
	assert.Nil(t, g.Current())
}

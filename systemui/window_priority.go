// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package systemui

import (
	"sort"
)

type priorityEntry struct {
	win      Window
	priority int
	serial   uint64
}

// WindowPriority stacks system windows. Only the top one is mapped: the
// highest priority, and among equals the one shown last.
type WindowPriority struct {
	entries []priorityEntry
	serial  uint64
	top     Window
}

func NewWindowPriority() *WindowPriority {
	return &WindowPriority{}
}

func (wp *WindowPriority) ShowWindow(win Window, priority int) {
	if win == nil {
		return
	}
	wp.remove(win)
	wp.serial++
	wp.entries = append(wp.entries, priorityEntry{
		win:      win,
		priority: priority,
		serial:   wp.serial,
	})
	sort.SliceStable(wp.entries, func(i, j int) bool {
		a, b := wp.entries[i], wp.entries[j]
		if a.priority != b.priority {
			return a.priority > b.priority
		}
		return a.serial > b.serial
	})
	wp.restack()
}

// HideWindow unmaps win and maps the next window in line. Unknown or nil
// windows are ignored.
func (wp *WindowPriority) HideWindow(win Window) {
	if win == nil || !wp.remove(win) {
		return
	}
	if wp.top == win {
		wp.top = nil
		win.Unmap()
	}
	wp.restack()
}

// Top returns the mapped window, or nil.
func (wp *WindowPriority) Top() Window {
	return wp.top
}

func (wp *WindowPriority) Len() int {
	return len(wp.entries)
}

func (wp *WindowPriority) remove(win Window) bool {
	for i, e := range wp.entries {
		if e.win == win {
			wp.entries = append(wp.entries[:i], wp.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (wp *WindowPriority) restack() {
	var next Window
	if len(wp.entries) > 0 {
		next = wp.entries[0].win
	}
	if next == wp.top {
		return
	}
	if wp.top != nil {
		wp.top.Unmap()
	}
	wp.top = next
	if next != nil {
		logger.Debugf("map window %p", next)
		next.Map()
	}
}

// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package systemui

import (
	"sync"
)

// Poster queues work for the main loop.
type Poster interface {
	Post(fn func())
}

// MainLoop runs every handler and toolkit reaction on one goroutine, in
// the order they were posted.
type MainLoop struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	quit    chan struct{}
	done    chan struct{}
	running bool
	closed  bool
}

func NewMainLoop() *MainLoop {
	return &MainLoop{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Post never blocks, so it is safe to call from the loop itself. Work
// posted after Quit is dropped.
func (l *MainLoop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Call runs fn on the loop and waits for it. Must not be called from the
// loop goroutine. Returns false if the loop is gone.
func (l *MainLoop) Call(fn func()) bool {
	finished := make(chan struct{})
	l.Post(func() {
		defer close(finished)
		fn()
	})
	select {
	case <-finished:
		return true
	case <-l.done:
		return false
	}
}

// Run processes posted work until Quit.
func (l *MainLoop) Run() {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return
	}
	l.running = true
	l.mu.Unlock()
	defer close(l.done)

	for {
		l.mu.Lock()
		queue := l.queue
		l.queue = nil
		l.mu.Unlock()

		for _, fn := range queue {
			fn()
		}
		if len(queue) != 0 {
			continue
		}

		select {
		case <-l.wake:
		case <-l.quit:
			l.drain()
			return
		}
	}
}

// drain runs what was queued before Quit.
func (l *MainLoop) drain() {
	for {
		l.mu.Lock()
		queue := l.queue
		l.queue = nil
		if len(queue) == 0 {
			l.closed = true
		}
		l.mu.Unlock()
		if len(queue) == 0 {
			return
		}
		for _, fn := range queue {
			fn()
		}
	}
}

func (l *MainLoop) Quit() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	select {
	case <-l.quit:
	default:
		close(l.quit)
	}
}

// Done is closed once Run has returned.
func (l *MainLoop) Done() <-chan struct{} {
	return l.done
}

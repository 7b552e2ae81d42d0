// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package note

import (
	"github.com/linuxdeepin/go-lib/log"
	"github.com/maemo-leste/systemui-modechange/systemui"
)

var logger = log.NewLogger("systemui/note")

type handlerEntry struct {
	id       systemui.SignalHandlerId
	response func(systemui.ResponseType)
	keyPress func(uint32) bool
	destroy  func()
}

// base keeps the signal handlers of a note. Only used on the main loop.
type base struct {
	handlers  []handlerEntry
	lastId    systemui.SignalHandlerId
	destroyed bool
}

func (b *base) connect(h handlerEntry) systemui.SignalHandlerId {
	if b.destroyed {
		return 0
	}
	b.lastId++
	h.id = b.lastId
	b.handlers = append(b.handlers, h)
	return h.id
}

func (b *base) ConnectResponse(cb func(response systemui.ResponseType)) systemui.SignalHandlerId {
	return b.connect(handlerEntry{response: cb})
}

func (b *base) ConnectKeyPress(cb func(keyval uint32) bool) systemui.SignalHandlerId {
	return b.connect(handlerEntry{keyPress: cb})
}

func (b *base) ConnectDestroy(cb func()) systemui.SignalHandlerId {
	return b.connect(handlerEntry{destroy: cb})
}

func (b *base) Disconnect(id systemui.SignalHandlerId) {
	for i, h := range b.handlers {
		if h.id == id {
			b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
			return
		}
	}
}

func (b *base) connected(id systemui.SignalHandlerId) bool {
	for _, h := range b.handlers {
		if h.id == id {
			return true
		}
	}
	return false
}

// snapshot lets handlers disconnect or destroy while being called.
func (b *base) snapshot() []handlerEntry {
	return append([]handlerEntry(nil), b.handlers...)
}

func (b *base) emitResponse(response systemui.ResponseType) {
	for _, h := range b.snapshot() {
		if h.response != nil && b.connected(h.id) {
			h.response(response)
		}
	}
}

func (b *base) emitKeyPress(keyval uint32) bool {
	for _, h := range b.snapshot() {
		if h.keyPress != nil && b.connected(h.id) {
			if h.keyPress(keyval) {
				return true
			}
		}
	}
	return false
}

func (b *base) destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	for _, h := range b.snapshot() {
		if h.destroy != nil && b.connected(h.id) {
			h.destroy()
		}
	}
	b.handlers = nil
}

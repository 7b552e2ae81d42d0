// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package systemui

// Window is anything the stacking service can put on screen.
type Window interface {
	Map()
	Unmap()
}

// ResponseType values match the GTK response ids.
type ResponseType int32

const (
	ResponseNone        ResponseType = -1
	ResponseDeleteEvent ResponseType = -4
	ResponseOK          ResponseType = -5
	ResponseCancel      ResponseType = -6
)

func (r ResponseType) String() string {
	switch r {
	case ResponseNone:
		return "none"
	case ResponseDeleteEvent:
		return "delete-event"
	case ResponseOK:
		return "ok"
	case ResponseCancel:
		return "cancel"
	}
	return "unknown"
}

// KeyEscape is the X keysym of the Escape key.
const KeyEscape uint32 = 0xff1b

type SignalHandlerId int

// Note is a modal confirmation note. Reactions run on the main loop.
type Note interface {
	Window

	ConnectResponse(cb func(response ResponseType)) SignalHandlerId
	// ConnectKeyPress handlers return true to stop further handling.
	ConnectKeyPress(cb func(keyval uint32) bool) SignalHandlerId
	ConnectDestroy(cb func()) SignalHandlerId
	Disconnect(id SignalHandlerId)

	// Destroy emits destroy to the handlers still connected, then drops
	// all handlers. Calling it again does nothing.
	Destroy()
}

// NoteFactory builds notes, parent may be nil.
type NoteFactory interface {
	NewConfirmation(parent Window, description string) Note
}

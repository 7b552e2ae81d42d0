// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package modechange

import (
	"github.com/linuxdeepin/go-lib/gettext"
	"github.com/maemo-leste/systemui-modechange/systemui"
)

var openArgs = []systemui.ArgType{systemui.ArgUint32}

// Controller asks the user to confirm leaving flight mode. At most one
// confirmation note exists at a time. Everything runs on the host main
// loop.
type Controller struct {
	ui             *systemui.Data
	note           systemui.Note
	noteHandlers   []systemui.SignalHandlerId
	callback       systemui.Callback
	windowPriority int
}

func NewController() *Controller {
	return &Controller{}
}

// Init reads the window priority and registers the request handlers.
func (c *Controller) Init(data *systemui.Data) bool {
	c.ui = data
	c.windowPriority = systemui.GetIntDefault(data.Config, windowPriorityKey, defaultWindowPriority)
	logger.Debug("window priority", c.windowPriority)

	data.AddHandler(modechangeOpen, c.openHandler, systemui.CallbackArgs(openArgs...)...)
	data.AddHandler(modechangeClose, c.closeHandler, systemui.CallbackArgs()...)
	return true
}

// Close unregisters the handlers and drops the note and the pending
// callback without invoking it. Safe without a prior Init.
func (c *Controller) Close(data *systemui.Data) {
	if data == nil {
		data = c.ui
	}
	if data != nil {
		data.RemoveHandler(modechangeOpen)
		data.RemoveHandler(modechangeClose)
	}
	c.destroyNote(data)
	systemui.FreeCallback(&c.callback)
	c.ui = nil
}

func (c *Controller) openHandler(iface, method string, args []systemui.Arg,
	data *systemui.Data, result *systemui.Arg) int32 {
	if !systemui.CheckArguments(args, openArgs) {
		logger.Warningf("%s: argument mismatch", method)
		return systemui.ReplyInvalid
	}

	mode := args[systemui.ArgIndexFirst].Uint32()
	logger.Debugf("%s: mode %d", method, mode)

	switch mode {
	case ModeToFlightMode:
		// no confirmation needed, answer whoever was waiting
		data.DoCallback(&c.callback, systemui.CallbackConfirmed)
		systemui.FreeCallback(&c.callback)

	case ModeToNormalMode:
		if c.note != nil {
			logger.Debug("replace active note")
			c.destroyNote(data)
		}
		// the new note answers only this request
		systemui.FreeCallback(&c.callback)
		c.showNote(data)

	default:
		if c.note != nil {
			logger.Warningf("%s: unknown mode %d, drop active note", method, mode)
			c.resolve(data, systemui.CallbackDeclined)
			return systemui.ReplyInvalid
		}
	}

	err := systemui.SetCallback(args, &c.callback)
	if err != nil {
		logger.Warningf("%s: failed to set callback: %v", method, err)
		result.SetInt32(systemui.CallbackSetFailed)
	} else {
		result.SetInt32(systemui.CallbackSet)
	}
	return systemui.ReplyInt32
}

func (c *Controller) closeHandler(iface, method string, args []systemui.Arg,
	data *systemui.Data, result *systemui.Arg) int32 {
	c.destroyNote(data)
	systemui.FreeCallback(&c.callback)
	return systemui.ReplyVariant
}

func (c *Controller) showNote(data *systemui.Data) {
	if data.Notes == nil {
		logger.Warning("no note factory, cannot ask for confirmation")
		return
	}

	text := gettext.DGettext(messageDomain, messageKey)
	note := data.Notes.NewConfirmation(data.Window, text)
	c.note = note
	c.noteHandlers = []systemui.SignalHandlerId{
		note.ConnectResponse(func(response systemui.ResponseType) {
			if c.note != note {
				return
			}
			c.onResponse(data, response)
		}),
		note.ConnectKeyPress(func(keyval uint32) bool {
			if c.note != note {
				return false
			}
			return c.onKeyPress(data, keyval)
		}),
		note.ConnectDestroy(func() {
			if c.note != note {
				return
			}
			c.onDestroy(data)
		}),
	}

	if data.Priority != nil {
		data.Priority.ShowWindow(note, c.windowPriority)
	} else {
		note.Map()
	}

	if data.Grabs != nil {
		if grab := data.Grabs.Current(); grab != nil && grab != systemui.Window(note) {
			logger.Debug("release input grab")
			data.Grabs.Remove(grab)
		}
	}
}

func (c *Controller) onResponse(data *systemui.Data, response systemui.ResponseType) {
	logger.Debug("response", response)
	if response == systemui.ResponseOK {
		c.resolve(data, systemui.CallbackConfirmed)
	} else {
		c.resolve(data, systemui.CallbackDeclined)
	}
}

func (c *Controller) onKeyPress(data *systemui.Data, keyval uint32) bool {
	if keyval != systemui.KeyEscape {
		return false
	}
	c.onResponse(data, systemui.ResponseCancel)
	return true
}

// onDestroy handles a note destroyed by somebody else.
func (c *Controller) onDestroy(data *systemui.Data) {
	note := c.note
	c.note = nil
	c.noteHandlers = nil
	if data.Priority != nil {
		data.Priority.HideWindow(note)
	}
	data.DoCallback(&c.callback, systemui.CallbackDeclined)
	systemui.FreeCallback(&c.callback)
}

func (c *Controller) resolve(data *systemui.Data, argc int32) {
	data.DoCallback(&c.callback, argc)
	c.destroyNote(data)
	systemui.FreeCallback(&c.callback)
}

// destroyNote disconnects the reactions first, so destroying the note
// never resolves the callback.
func (c *Controller) destroyNote(data *systemui.Data) {
	note := c.note
	if note == nil {
		return
	}
	c.note = nil
	for _, id := range c.noteHandlers {
		note.Disconnect(id)
	}
	c.noteHandlers = nil

	if data != nil && data.Priority != nil {
		data.Priority.HideWindow(note)
	} else {
		note.Unmap()
	}
	note.Destroy()
}

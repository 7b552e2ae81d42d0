// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package note

import (
	"github.com/godbus/dbus/v5"
	notifications "github.com/linuxdeepin/go-dbus-factory/session/org.freedesktop.notifications"
	keyevent "github.com/linuxdeepin/go-dbus-factory/system/org.deepin.dde.keyevent1"
	"github.com/linuxdeepin/go-lib/dbusutil"
	"github.com/linuxdeepin/go-lib/gettext"
	"github.com/maemo-leste/systemui-modechange/systemui"
)

const (
	notifyAppName = "systemui"
	notifyIcon    = "dialog-question"

	actionOK     = "ok"
	actionCancel = "cancel"

	// never expire
	notifyTimeout = 0

	// NotificationClosed reasons
	closedExpired   = 1
	closedDismissed = 2
	closedByCall    = 3

	// evdev code of the Escape key
	evdevKeyEsc = 1
)

const hildonDomain = "hildon-libs"

type notifier interface {
	Notify(flags dbus.Flags, appName string, replacesId uint32, appIcon string,
		summary string, body string, actions []string, hints map[string]dbus.Variant,
		expireTimeout int32) (uint32, error)
	CloseNotification(flags dbus.Flags, id uint32) error
	ConnectActionInvoked(cb func(id uint32, actionKey string)) (dbusutil.SignalHandlerId, error)
	ConnectNotificationClosed(cb func(id uint32, reason uint32)) (dbusutil.SignalHandlerId, error)
	RemoveAllHandlers()
}

type keySource interface {
	ConnectKeyEvent(cb func(keycode uint32, pressed bool, ctrlPressed bool,
		shiftPressed bool, altPressed bool, superPressed bool)) (dbusutil.SignalHandlerId, error)
	RemoveAllHandlers()
}

// NotifyFactory shows confirmation notes as desktop notifications with two
// actions. Escape presses come from the system key event service.
type NotifyFactory struct {
	loop         systemui.Poster
	newNotifier  func() notifier
	newKeySource func() keySource

	sessionLoop *dbusutil.SignalLoop
	systemLoop  *dbusutil.SignalLoop
}

// NewNotifyFactory needs the session bus; systemConn may be nil, then
// Escape is not reported.
func NewNotifyFactory(loop systemui.Poster, sessionConn, systemConn *dbus.Conn) *NotifyFactory {
	f := &NotifyFactory{loop: loop}

	f.sessionLoop = dbusutil.NewSignalLoop(sessionConn, 10)
	f.sessionLoop.Start()
	f.newNotifier = func() notifier {
		n := notifications.NewNotifications(sessionConn)
		n.InitSignalExt(f.sessionLoop, true)
		return n
	}

	if systemConn != nil {
		f.systemLoop = dbusutil.NewSignalLoop(systemConn, 10)
		f.systemLoop.Start()
		f.newKeySource = func() keySource {
			k := keyevent.NewKeyEvent(systemConn)
			k.InitSignalExt(f.systemLoop, true)
			return k
		}
	}
	return f
}

func (f *NotifyFactory) Close() {
	f.sessionLoop.Stop()
	if f.systemLoop != nil {
		f.systemLoop.Stop()
	}
}

func (f *NotifyFactory) NewConfirmation(parent systemui.Window, description string) systemui.Note {
	return &notifyNote{
		factory:     f,
		description: description,
	}
}

type notifyNote struct {
	base
	factory     *NotifyFactory
	description string

	notifier notifier
	keys     keySource
	nid      uint32
	answered bool
}

func (n *notifyNote) Map() {
	if n.destroyed || n.notifier != nil {
		return
	}
	f := n.factory
	n.notifier = f.newNotifier()
	n.answered = false

	_, err := n.notifier.ConnectActionInvoked(func(id uint32, actionKey string) {
		f.loop.Post(func() {
			n.onAction(id, actionKey)
		})
	})
	if err != nil {
		logger.Warning("connect ActionInvoked failed:", err)
	}
	_, err = n.notifier.ConnectNotificationClosed(func(id uint32, reason uint32) {
		f.loop.Post(func() {
			n.onClosed(id, reason)
		})
	})
	if err != nil {
		logger.Warning("connect NotificationClosed failed:", err)
	}

	actions := []string{
		actionOK, gettext.DGettext(hildonDomain, "wdgt_bd_yes"),
		actionCancel, gettext.DGettext(hildonDomain, "wdgt_bd_no"),
	}
	hints := map[string]dbus.Variant{
		"urgency":        dbus.MakeVariant(byte(2)),
		"resident":       dbus.MakeVariant(true),
		"suppress-sound": dbus.MakeVariant(true),
	}
	nid, err := n.notifier.Notify(0, notifyAppName, 0, notifyIcon,
		n.description, "", actions, hints, notifyTimeout)
	if err != nil {
		logger.Warning("failed to send notify:", err)
		n.release()
		return
	}
	n.nid = nid
	logger.Debug("note mapped as notification", nid)

	if f.newKeySource != nil {
		n.keys = f.newKeySource()
		_, err = n.keys.ConnectKeyEvent(func(keycode uint32, pressed bool, ctrlPressed bool,
			shiftPressed bool, altPressed bool, superPressed bool) {
			if !pressed || keycode != evdevKeyEsc {
				return
			}
			f.loop.Post(n.onEscape)
		})
		if err != nil {
			logger.Warning("connect KeyEvent failed:", err)
		}
	}
}

func (n *notifyNote) onAction(id uint32, actionKey string) {
	if n.notifier == nil || id != n.nid || n.answered {
		return
	}
	n.answered = true
	logger.Debugf("notification %d action %q", id, actionKey)
	if actionKey == actionOK {
		n.emitResponse(systemui.ResponseOK)
	} else {
		n.emitResponse(systemui.ResponseCancel)
	}
}

func (n *notifyNote) onClosed(id uint32, reason uint32) {
	if n.notifier == nil || id != n.nid {
		return
	}
	// already gone on the server side. Our own Unmap released the
	// handlers before closing, so closedByCall here came from another client.
	n.nid = 0
	n.release()
	if n.answered {
		return
	}
	logger.Debugf("notification %d closed, reason %d", id, reason)
	n.emitResponse(systemui.ResponseDeleteEvent)
}

func (n *notifyNote) onEscape() {
	if n.keys == nil || n.answered {
		return
	}
	n.emitKeyPress(systemui.KeyEscape)
}

func (n *notifyNote) Unmap() {
	if n.notifier == nil {
		return
	}
	if n.nid != 0 {
		err := n.notifier.CloseNotification(0, n.nid)
		if err != nil {
			logger.Warningf("close notification %d failed: %v", n.nid, err)
		}
	}
	n.release()
}

func (n *notifyNote) release() {
	if n.notifier != nil {
		n.notifier.RemoveAllHandlers()
		n.notifier = nil
	}
	if n.keys != nil {
		n.keys.RemoveAllHandlers()
		n.keys = nil
	}
	n.nid = 0
}

func (n *notifyNote) Destroy() {
	if n.destroyed {
		return
	}
	n.Unmap()
	n.destroy()
}

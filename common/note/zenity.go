// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package note

import (
	"context"
	"errors"

	"github.com/linuxdeepin/go-lib/gettext"
	"github.com/maemo-leste/systemui-modechange/systemui"
	"github.com/ncruces/zenity"
)

// ZenityFactory shows confirmation notes as native question dialogs. A
// dialog is modal, it holds the input grab while it is up.
type ZenityFactory struct {
	loop  systemui.Poster
	grabs *systemui.GrabStack
	title string
	ask   func(text string, options ...zenity.Option) error
}

// NewZenityFactory takes grabs from the host data, nil disables grab
// tracking.
func NewZenityFactory(loop systemui.Poster, grabs *systemui.GrabStack, title string) *ZenityFactory {
	return &ZenityFactory{
		loop:  loop,
		grabs: grabs,
		title: title,
		ask:   zenity.Question,
	}
}

func (f *ZenityFactory) NewConfirmation(parent systemui.Window, description string) systemui.Note {
	return &zenityNote{
		factory:     f,
		description: description,
	}
}

type zenityNote struct {
	base
	factory     *ZenityFactory
	description string

	cancel context.CancelFunc
}

func (n *zenityNote) Map() {
	if n.destroyed || n.cancel != nil {
		return
	}
	f := n.factory
	ctx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel

	opts := []zenity.Option{
		zenity.Context(ctx),
		zenity.OKLabel(gettext.DGettext(hildonDomain, "wdgt_bd_yes")),
		zenity.CancelLabel(gettext.DGettext(hildonDomain, "wdgt_bd_no")),
	}
	if f.title != "" {
		opts = append(opts, zenity.Title(f.title))
	}
	logger.Debug("note mapped as dialog")
	if f.grabs != nil {
		f.grabs.Add(n)
	}
	go func() {
		err := f.ask(n.description, opts...)
		f.loop.Post(func() {
			n.finish(ctx, err)
		})
	}()
}

func (n *zenityNote) finish(ctx context.Context, err error) {
	// unmapped meanwhile
	if ctx.Err() != nil {
		return
	}
	n.release()

	switch {
	case err == nil:
		n.emitResponse(systemui.ResponseOK)
	case errors.Is(err, zenity.ErrCanceled):
		// Escape and the No button both end up here
		if !n.emitKeyPress(systemui.KeyEscape) {
			n.emitResponse(systemui.ResponseCancel)
		}
	default:
		logger.Warning("dialog failed:", err)
		n.emitResponse(systemui.ResponseDeleteEvent)
	}
}

func (n *zenityNote) Unmap() {
	if n.cancel == nil {
		return
	}
	n.release()
}

func (n *zenityNote) release() {
	n.cancel()
	n.cancel = nil
	if n.factory.grabs != nil {
		n.factory.grabs.Remove(n)
	}
}

func (n *zenityNote) Destroy() {
	if n.destroyed {
		return
	}
	n.Unmap()
	n.destroy()
}

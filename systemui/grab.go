// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package systemui

// GrabStack tracks which window holds the input grab, last added wins.
type GrabStack struct {
	windows []Window
}

func (g *GrabStack) Add(win Window) {
	if win == nil {
		return
	}
	g.Remove(win)
	g.windows = append(g.windows, win)
}

func (g *GrabStack) Remove(win Window) {
	for i, w := range g.windows {
		if w == win {
			g.windows = append(g.windows[:i], g.windows[i+1:]...)
			return
		}
	}
}

func (g *GrabStack) Current() Window {
	if len(g.windows) == 0 {
		return nil
	}
	return g.windows[len(g.windows)-1]
}

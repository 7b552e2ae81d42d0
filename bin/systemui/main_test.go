// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/linuxdeepin/go-lib/log"
	"github.com/maemo-leste/systemui-modechange/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_toLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    log.Priority
		wantErr bool
	}{
		{"", log.LevelInfo, false},
		{"error", log.LevelError, false},
		{"WARN", log.LevelWarning, false},
		{"info", log.LevelInfo, false},
		{"debug", log.LevelDebug, false},
		{"no", log.LevelDisable, false},
		{"loud", log.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toLogLevel(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_splitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"modechange"}, []string(splitList("modechange")))
	assert.Equal(t, []string{"a", "b"}, []string(splitList("a,,b")))
}

func Test_getEnableFlag(t *testing.T) {
	defer func(ignore, force bool) {
		_options.ignore, _options.force = ignore, force
	}(_options.ignore, _options.force)

	_options.ignore, _options.force = false, false
	assert.Equal(t, loader.EnableFlagNone, getEnableFlag())

	_options.ignore, _options.force = true, true
	assert.Equal(t, loader.EnableFlagNone|loader.EnableFlagIgnoreMissingModule|loader.EnableFlagForceStart, getEnableFlag())
}

func Test_listModules(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listModules(&buf, "all"))
	assert.Contains(t, buf.String(), "modechange\n")

	buf.Reset()
	require.NoError(t, listModules(&buf, "modechange"))
	assert.Equal(t, "modechange\n", buf.String())

	assert.Error(t, listModules(&buf, "nope"))
}

func Test_newNoteFactory(t *testing.T) {
	f, closeFn, err := newNoteFactory(toolkitZenity, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, f)
	closeFn()

	_, _, err = newNoteFactory("gtk", nil, nil, nil, nil)
	assert.Error(t, err)
}

func Test_newConfig(t *testing.T) {
	const key = "/system/systemui/modechange/window_priority"
	file := filepath.Join(t.TempDir(), "systemui.conf")
	content := "[/system/systemui/modechange]\nwindow_priority=40\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	config, closeConfig := newConfig(nil, file)
	defer closeConfig()
	require.Len(t, config, 1)
	v, err := config.GetInt(key)
	require.NoError(t, err)
	assert.Equal(t, 40, v)
}

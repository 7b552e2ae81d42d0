// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package keyconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const priorityKey = "/system/systemui/modechange/window_priority"

func writeConf(t *testing.T, file string, priority string) {
	content := "[/system/systemui/modechange]\nwindow_priority=" + priority + "\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))
}

func Test_GetInt(t *testing.T) {
	file := filepath.Join(t.TempDir(), "systemui.conf")
	writeConf(t, file, "80")

	c, err := New(file)
	require.NoError(t, err)
	v, err := c.GetInt(priorityKey)
	require.NoError(t, err)
	assert.Equal(t, 80, v)

	_, err = c.GetInt("/system/systemui/modechange/missing")
	assert.Error(t, err)
	_, err = c.GetInt("window_priority")
	assert.Error(t, err)
	_, err = c.GetInt("/system/systemui/modechange/")
	assert.Error(t, err)
}

func Test_MissingFile(t *testing.T) {
	c, err := New(filepath.Join(t.TempDir(), "absent.conf"))
	require.NoError(t, err)
	_, err = c.GetInt(priorityKey)
	assert.Error(t, err)
}

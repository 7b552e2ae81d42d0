// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package keyconf reads systemui settings from a key file. A key path
// /system/systemui/modechange/window_priority is key window_priority in
// group [/system/systemui/modechange].
package keyconf

import (
	"fmt"
	"os"
	"path"

	"github.com/linuxdeepin/go-lib/keyfile"
)

const DefaultFile = "/etc/systemui/systemui.conf"

type Config struct {
	file string
	kf   *keyfile.KeyFile
}

// New loads file, a missing file leaves every key unset.
func New(file string) (*Config, error) {
	c := &Config{
		file: file,
		kf:   keyfile.NewKeyFile(),
	}
	err := c.load()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) load() error {
	kf := keyfile.NewKeyFile()
	err := kf.LoadFromFile(c.file)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	c.kf = kf
	return nil
}

func splitKey(keyPath string) (group, key string, err error) {
	group, key = path.Split(keyPath)
	group = path.Clean(group)
	if key == "" || group == "." || group == "/" {
		return "", "", fmt.Errorf("bad key %q", keyPath)
	}
	return group, key, nil
}

func (c *Config) GetInt(keyPath string) (int, error) {
	group, key, err := splitKey(keyPath)
	if err != nil {
		return 0, err
	}
	v, err := c.kf.GetInt(group, key)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package systemui

// ConfigClient reads integer settings by their full key path, for example
// /system/systemui/modechange/window_priority.
type ConfigClient interface {
	GetInt(key string) (int, error)
}

// ConfigChain asks each client in turn and returns the first non-zero
// value. Zero means unset.
type ConfigChain []ConfigClient

func (chain ConfigChain) GetInt(key string) (int, error) {
	var lastErr error
	for _, client := range chain {
		if client == nil {
			continue
		}
		v, err := client.GetInt(key)
		if err != nil {
			lastErr = err
			continue
		}
		if v != 0 {
			return v, nil
		}
	}
	return 0, lastErr
}

// GetIntDefault returns def when the key is unset, zero or unreadable.
func GetIntDefault(client ConfigClient, key string, def int) int {
	if client == nil {
		return def
	}
	v, err := client.GetInt(key)
	if err != nil {
		logger.Debugf("get %s: %v", key, err)
		return def
	}
	if v == 0 {
		return def
	}
	return v
}

// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dconfig

import (
	"fmt"
	"math"

	"github.com/godbus/dbus/v5"
	DConfigManager "github.com/linuxdeepin/go-dbus-factory/org.desktopspec.ConfigManager"
)

// DConfig is one acquired configuration resource.
type DConfig struct {
	systemConn *dbus.Conn
	dbusPath   dbus.ObjectPath
	manager    DConfigManager.Manager
}

func NewDConfig(systemConn *dbus.Conn, appid, name, subPath string) (*DConfig, error) {
	var dConfig DConfig
	var err error
	dConfig.systemConn = systemConn
	if dConfig.systemConn == nil {
		dConfig.systemConn, err = dbus.SystemBus()
		if err != nil {
			return nil, err
		}
	}

	dConfigManager := DConfigManager.NewConfigManager(dConfig.systemConn)
	dConfig.dbusPath, err = dConfigManager.AcquireManager(0, appid, name, subPath)
	if err != nil {
		return nil, err
	}
	dConfig.manager, err = DConfigManager.NewManager(dConfig.systemConn, dConfig.dbusPath)
	if err != nil {
		return nil, err
	}

	return &dConfig, nil
}

// GetValueInt accepts whatever number encoding the config manager used,
// json numbers often arrive as doubles.
func (dConfig *DConfig) GetValueInt(key string) (int, error) {
	value, err := dConfig.GetValue(key)
	if err != nil {
		return 0, err
	}
	return toInt(value)
}

func toInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		if v > math.MaxInt32 {
			return 0, fmt.Errorf("dconfig get int error: %d out of range", v)
		}
		return int(v), nil
	case byte:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("dconfig get int error: %v is not integral", v)
		}
		return int(v), nil
	}
	return 0, fmt.Errorf("dconfig get int error: invalid value %T", value)
}

func (dConfig *DConfig) GetValue(key string) (interface{}, error) {
	if dConfig.manager == nil {
		return nil, fmt.Errorf("dConfig not inited")
	}
	v, err := dConfig.manager.Value(0, key)
	if err != nil {
		return nil, err
	}
	return v.Value(), nil
}

// Close releases the manager acquired by NewDConfig.
func (dConfig *DConfig) Close() {
	if dConfig.manager == nil {
		return
	}
	err := dConfig.manager.Release(0)
	if err != nil {
		logger.Warning("release dconfig manager failed:", err)
	}
	dConfig.manager = nil
}

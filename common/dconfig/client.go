// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dconfig

import (
	"fmt"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/linuxdeepin/go-lib/log"
)

var logger = log.NewLogger("systemui/dconfig")

const (
	AppId        = "org.maemo.systemui"
	keyPrefix    = "/system/systemui/"
	resourceBase = "org.maemo.systemui."
)

// Client reads systemui key paths from the config manager.
// /system/systemui/<plugin>/<key> lives in resource org.maemo.systemui.<plugin>.
type Client struct {
	conn  *dbus.Conn
	appId string

	mu        sync.Mutex
	resources map[string]*DConfig
	acquire   func(name string) (valueGetter, error)
}

type valueGetter interface {
	GetValueInt(key string) (int, error)
}

func NewClient(systemConn *dbus.Conn) *Client {
	c := &Client{
		conn:      systemConn,
		appId:     AppId,
		resources: make(map[string]*DConfig),
	}
	c.acquire = c.acquireResource
	return c
}

// SplitKey maps a key path to a resource name and a key.
func SplitKey(keyPath string) (resource, key string, err error) {
	if !strings.HasPrefix(keyPath, keyPrefix) {
		return "", "", fmt.Errorf("key %q is not under %s", keyPath, keyPrefix)
	}
	rest := strings.TrimPrefix(keyPath, keyPrefix)
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 || idx == len(rest)-1 {
		return "", "", fmt.Errorf("bad key %q", keyPath)
	}
	resource = resourceBase + strings.ReplaceAll(rest[:idx], "/", ".")
	key = rest[idx+1:]
	return resource, key, nil
}

func (c *Client) GetInt(keyPath string) (int, error) {
	resource, key, err := SplitKey(keyPath)
	if err != nil {
		return 0, err
	}
	dc, err := c.acquire(resource)
	if err != nil {
		return 0, err
	}
	return dc.GetValueInt(key)
}

func (c *Client) acquireResource(name string) (valueGetter, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if dc, ok := c.resources[name]; ok {
		return dc, nil
	}
	dc, err := NewDConfig(c.conn, c.appId, name, "")
	if err != nil {
		return nil, err
	}
	logger.Debug("acquired", name)
	c.resources[name] = dc
	return dc, nil
}

// Close releases every acquired resource.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, dc := range c.resources {
		dc.Close()
		delete(c.resources, name)
	}
}

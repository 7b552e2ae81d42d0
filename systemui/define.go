// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package systemui

const (
	dbusServiceName = "com.nokia.system_ui"
	dbusPath        = "/com/nokia/system_ui/request"
	dbusInterface   = "com.nokia.system_ui.request"
)

// ServiceName is the well-known bus name taken by Export.
const ServiceName = dbusServiceName

// Handler status codes, the D-Bus type of the reply a handler produced.
const (
	// ReplyInvalid rejects the request, nothing was touched.
	ReplyInvalid int32 = 0
	// ReplyInt32 means the handler filled the int32 result.
	ReplyInt32 int32 = 'i'
	// ReplyVariant acknowledges a request with no result.
	ReplyVariant int32 = 'v'
)

// Results of installing the callback of a request.
const (
	CallbackSet       int32 = -2
	CallbackSetFailed int32 = -3
)

// Callback argument codes.
const (
	CallbackConfirmed int32 = 1
	CallbackDeclined  int32 = 2
)

// Handler serves one named request. args is the full argument array,
// including the callback descriptor.
type Handler func(iface, method string, args []Arg, data *Data, result *Arg) int32

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration carries no HTTP address. Without a transport the backend has
// nothing to serve, so startup fails.
var errNoHandlersAreCreated = errors.New("no handlers are created")

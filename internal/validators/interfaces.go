// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the membership endpoints
// of the development backend and for the persisted client preferences.
//
// A [Validator] accepts any supported value and an optional list of field
// names. When fields are given only those are checked, otherwise every field
// of the value is. The first violation found is returned as one of the
// sentinels in errors.go.
package validators

import "context"

// Validator validates arbitrary input, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

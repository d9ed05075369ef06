// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyIdentifier is returned by [NormalizeIdentifier] when the raw value
// is empty or consists only of whitespace.
var ErrEmptyIdentifier = errors.New("empty identifier")

// Identifier is an opaque token naming one NFT or one owner (profile/cart).
// In production it carries a UUID, but any non-empty string is accepted.
// Identifiers are compared by value; no ordering is implied by the domain.
type Identifier string

// String implements fmt.Stringer.
func (id Identifier) String() string {
	return string(id)
}

// NormalizeIdentifier trims raw and, when it parses as a UUID, rewrites it
// into the canonical lowercase hyphenated form expected by the backend.
// Any other non-empty token is returned verbatim.
func NormalizeIdentifier(raw string) (Identifier, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyIdentifier
	}

	if parsed, err := uuid.Parse(raw); err == nil {
		return Identifier(parsed.String()), nil
	}

	return Identifier(raw), nil
}

// ParseIdentifiers normalizes a comma separated list of identifiers, skipping
// empty elements. The literal "null" (the server's empty-set sentinel) and an
// empty string both yield an empty, non-nil slice. Duplicates are preserved.
func ParseIdentifiers(raw string) []Identifier {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == EmptySetSentinel {
		return []Identifier{}
	}

	parts := strings.Split(raw, ",")
	ids := make([]Identifier, 0, len(parts))
	for _, part := range parts {
		id, err := NormalizeIdentifier(part)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

// JoinIdentifiers encodes ids in the whole-set wire format: a comma separated
// list, or [EmptySetSentinel] when ids is empty.
func JoinIdentifiers(ids []Identifier) string {
	if len(ids) == 0 {
		return EmptySetSentinel
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}

	return strings.Join(parts, ",")
}

// EmptySetSentinel is the value the backend requires to replace a set with
// the empty set. Omitting the field is treated as a malformed request.
const EmptySetSentinel = "null"

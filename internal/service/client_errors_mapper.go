// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-nft-keeper/internal/adapter"
	"github.com/MKhiriev/go-nft-keeper/models"
)

// newToggleError wraps a failed whole-set persist of id. Anything the backend
// answered with a non-2xx status is a rejection; everything else, including
// a late timeout or a cancelled context, is a network failure.
func newToggleError(id models.Identifier, err error) *ToggleError {
	return &ToggleError{ID: id, Kind: classifyFailure(err), Err: err}
}

func classifyFailure(err error) FailureKind {
	if errors.Is(err, adapter.ErrServerRejected) {
		return FailureRejected
	}
	return FailureNetwork
}

// IsRejected reports whether err is a toggle rollback caused by the backend
// refusing the new set.
func IsRejected(err error) bool {
	var toggleErr *ToggleError
	return errors.As(err, &toggleErr) && toggleErr.Kind == FailureRejected
}

// IsNetworkFailure reports whether err is a toggle rollback caused by a
// request that never got an answer.
func IsNetworkFailure(err error) bool {
	var toggleErr *ToggleError
	return errors.As(err, &toggleErr) && toggleErr.Kind == FailureNetwork
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the transport collaborator of the membership
// layer: the client side of the NFT backend REST API.
//
// The central abstraction is [ServerAdapter]. [NewHTTPServerAdapter] provides
// the resty-based implementation and [NewCachingServerAdapter] decorates any
// adapter with an in-memory LRU of detail records.
//
// Failures are reported through the sentinels in errors.go so that callers
// can classify them with [errors.Is]: [ErrTransport] for requests that never
// produced a response, [ErrServerRejected] (joined with a status-specific
// sentinel such as [ErrNotFound]) for non-2xx answers, and [ErrDecode] for
// bodies that could not be decoded.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-nft-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the transport used by the membership services. Every
// method performs exactly one request and never retries.
type ServerAdapter interface {
	// FetchNFT loads the detail record of one NFT.
	FetchNFT(ctx context.Context, id models.Identifier) (models.NFT, error)

	// GetWholeSet returns the server-side set of owner. The list is returned
	// as sent and may contain duplicates.
	GetWholeSet(ctx context.Context, owner models.Owner) ([]models.Identifier, error)

	// PutWholeSet replaces the server-side set of owner with ids. An empty
	// ids is sent as the explicit empty-set sentinel.
	PutWholeSet(ctx context.Context, owner models.Owner, ids []models.Identifier) error

	// GetProfile loads the profile with id. NFTs and Likes are returned as
	// sent and may contain duplicates.
	GetProfile(ctx context.Context, id string) (models.Profile, error)

	// GetCollections lists the catalog. Member lists are returned raw.
	GetCollections(ctx context.Context) ([]models.NFTCollection, error)
}

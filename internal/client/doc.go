// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of go-nft-keeper.
//
// Each invocation runs one command against the client services: listing the
// liked NFTs or the cart, toggling membership, listing the catalog, storing
// sort preferences, or watching membership changes while the periodic
// resync job runs.
package client

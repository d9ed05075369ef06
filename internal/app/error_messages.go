// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-nft-keeper backend handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies or log entries. The client adapter surfaces them verbatim
// as the detail of a rejected request.
package app

const (
	// MsgInvalidDataProvided is returned when a path parameter or a form
	// value fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgMissingSetField is returned when a whole-set PUT does not carry the
	// set field at all. The empty set must be sent as "null".
	MsgMissingSetField = "whole-set field is required, send null for the empty set"

	// MsgInvalidForm is returned when the request body cannot be parsed as
	// an url-encoded form.
	MsgInvalidForm = "invalid form body"

	// MsgMissingToken is returned when the API token header is absent.
	MsgMissingToken = "missing api token"

	// MsgInvalidToken is returned when the API token header does not match
	// the configured token.
	MsgInvalidToken = "invalid api token"

	// MsgNFTNotFound is returned for an unknown NFT id.
	MsgNFTNotFound = "nft not found"

	// MsgProfileNotFound is returned for an unknown profile id.
	MsgProfileNotFound = "profile not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

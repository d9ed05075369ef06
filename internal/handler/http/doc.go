// Package http implements the REST API of the go-nft-keeper development
// backend: NFT details, the catalog, and the whole-set endpoints of profiles
// and orders.
//
// Every request passes through trace id, access logging, Prometheus metrics
// and response compression middleware. API routes additionally require the
// configured token in the X-Practicum-Mobile-Token header.
package http

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-nft-keeper/internal/app"
	"github.com/MKhiriev/go-nft-keeper/internal/service"
	"github.com/MKhiriev/go-nft-keeper/internal/store"
	"github.com/MKhiriev/go-nft-keeper/internal/utils"
	"github.com/MKhiriev/go-nft-keeper/models"
)

// ── GET ──────────────────────────────────────────────────────────────────────

func TestGetProfile(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.membership.EXPECT().GetProfile(gomock.Any(), "1").
		Return(models.Profile{ID: "1", Name: "Joaquin", Likes: []models.Identifier{"a"}}, nil)

	rec := do(h.Init(), http.MethodGet, "/api/v1/profile/1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []models.Identifier{"a"}, got.Likes)
}

func TestGetProfile_NotFound(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.membership.EXPECT().GetProfile(gomock.Any(), "9").
		Return(models.Profile{}, fmt.Errorf("get profile: %w", store.ErrProfileNotFound))

	rec := do(h.Init(), http.MethodGet, "/api/v1/profile/9", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgProfileNotFound)
}

func TestGetOrder(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.membership.EXPECT().GetOrder(gomock.Any(), "1").
		Return(models.Order{ID: "1", NFTs: []models.Identifier{}}, nil)

	rec := do(h.Init(), http.MethodGet, "/api/v1/orders/1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"1","nfts":[]}`, rec.Body.String())
}

// ── PUT ──────────────────────────────────────────────────────────────────────

func TestReplaceLikes(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		wantIDs []models.Identifier
	}{
		{name: "list", form: url.Values{"likes": {"a,b,c"}}, wantIDs: []models.Identifier{"a", "b", "c"}},
		{name: "null is the empty set", form: url.Values{"likes": {"null"}}, wantIDs: []models.Identifier{}},
		{name: "duplicates are kept", form: url.Values{"likes": {"a,a"}}, wantIDs: []models.Identifier{"a", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, nil)
			want := models.MembershipUpdate{
				Owner: models.Owner{ID: "1", Kind: models.KindLikes},
				IDs:   tt.wantIDs,
			}
			m.membership.EXPECT().ReplaceLikes(gomock.Any(), want).
				Return(models.Profile{ID: "1", Likes: tt.wantIDs}, nil)

			rec := putForm(h.Init(), "/api/v1/profile/1", tt.form)

			require.Equal(t, http.StatusOK, rec.Code)
			var got models.Profile
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantIDs, got.Likes)
		})
	}
}

func TestReplaceOrder(t *testing.T) {
	h, m := newTestHandler(t, nil)
	want := models.MembershipUpdate{
		Owner: models.Owner{ID: "1", Kind: models.KindCart},
		IDs:   []models.Identifier{"x"},
	}
	m.membership.EXPECT().ReplaceOrder(gomock.Any(), want).
		Return(models.Order{ID: "1", NFTs: want.IDs}, nil)

	rec := putForm(h.Init(), "/api/v1/orders/1", url.Values{"nfts": {"x"}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"1","nfts":["x"]}`, rec.Body.String())
}

func TestReplace_MissingFieldIsRejected(t *testing.T) {
	h, _ := newTestHandler(t, nil)
	router := h.Init()

	// поле другого вида не считается пустым множеством
	rec := putForm(router, "/api/v1/profile/1", url.Values{"nfts": {"a"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgMissingSetField)

	rec = putForm(router, "/api/v1/orders/1", url.Values{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgMissingSetField)
}

func TestReplace_MalformedForm(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	req := putRequest("/api/v1/profile/1", "likes=%zz")
	rec := serve(h.Init(), req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInvalidForm)
}

func TestReplace_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: fmt.Errorf("%w: bad id", service.ErrInvalidDataProvided), wantStatus: http.StatusBadRequest},
		{name: "unknown profile", err: store.ErrProfileNotFound, wantStatus: http.StatusNotFound},
		{name: "database", err: store.ErrBeginningTransaction, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, nil)
			m.membership.EXPECT().ReplaceLikes(gomock.Any(), gomock.Any()).Return(models.Profile{}, tt.err)

			rec := putForm(h.Init(), "/api/v1/profile/1", url.Values{"likes": {"a"}})

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func putRequest(target, body string) *http.Request {
	req, _ := http.NewRequest(http.MethodPut, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(utils.TokenHeader, testToken)
	return req
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-nft-keeper/internal/app"
	"github.com/MKhiriev/go-nft-keeper/internal/store"
	"github.com/MKhiriev/go-nft-keeper/models"
)

func TestGetNFT(t *testing.T) {
	const id = "7a4ef3a4-2b19-4c43-9a2c-d0e2a1c3b00f"

	tests := []struct {
		name       string
		path       string
		setup      func(m *testMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			path: "/api/v1/nft/" + id,
			setup: func(m *testMocks) {
				m.nfts.EXPECT().GetNFT(gomock.Any(), models.Identifier(id)).
					Return(models.NFT{ID: id, Name: "April", Rating: 3}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "uppercase uuid is normalized",
			path: "/api/v1/nft/7A4EF3A4-2B19-4C43-9A2C-D0E2A1C3B00F",
			setup: func(m *testMocks) {
				m.nfts.EXPECT().GetNFT(gomock.Any(), models.Identifier(id)).
					Return(models.NFT{ID: id}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/api/v1/nft/missing",
			setup: func(m *testMocks) {
				m.nfts.EXPECT().GetNFT(gomock.Any(), models.Identifier("missing")).
					Return(models.NFT{}, store.ErrNFTNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   app.MsgNFTNotFound,
		},
		{
			name: "database failure",
			path: "/api/v1/nft/x",
			setup: func(m *testMocks) {
				m.nfts.EXPECT().GetNFT(gomock.Any(), gomock.Any()).
					Return(models.NFT{}, store.ErrExecutingQuery)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
		{
			name:       "blank id",
			path:       "/api/v1/nft/%20",
			setup:      func(m *testMocks) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, nil)
			tt.setup(m)

			rec := do(h.Init(), http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestGetNFT_JSONBody(t *testing.T) {
	h, m := newTestHandler(t, nil)
	want := models.NFT{ID: "a", Name: "April", Images: []string{"https://img/a.png"}, Rating: 5, Price: 1.5, Author: "b"}
	m.nfts.EXPECT().GetNFT(gomock.Any(), models.Identifier("a")).Return(want, nil)

	rec := do(h.Init(), http.MethodGet, "/api/v1/nft/a", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.NFT
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestListCollections_RawMembers(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.collections.EXPECT().ListCollections(gomock.Any()).Return([]models.NFTCollection{
		{ID: "c1", Name: "Peach", NFTs: []models.Identifier{"a", "b", "a"}},
	}, nil)

	rec := do(h.Init(), http.MethodGet, "/api/v1/collections", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.NFTCollection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, []models.Identifier{"a", "b", "a"}, got[0].NFTs)
}

func TestListCollections_EmptyIsArray(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.collections.EXPECT().ListCollections(gomock.Any()).Return(nil, nil)

	rec := do(h.Init(), http.MethodGet, "/api/v1/collections", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListCollections_Failure(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.collections.EXPECT().ListCollections(gomock.Any()).Return(nil, errors.New("boom"))

	rec := do(h.Init(), http.MethodGet, "/api/v1/collections", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/internal/mock"
	"github.com/MKhiriev/go-nft-keeper/models"
)

func TestNewCachingServerAdapter_DisabledReturnsNext(t *testing.T) {
	next := mock.NewMockServerAdapter(gomock.NewController(t))

	got, err := NewCachingServerAdapter(next, 0, logger.Nop())

	require.NoError(t, err)
	assert.Same(t, next, got)
}

func TestCachingServerAdapter_FetchNFT_CachesSuccess(t *testing.T) {
	next := mock.NewMockServerAdapter(gomock.NewController(t))
	want := models.NFT{ID: "a", Name: "April"}
	next.EXPECT().FetchNFT(gomock.Any(), models.Identifier("a")).Return(want, nil).Times(1)

	cached, err := NewCachingServerAdapter(next, 2, logger.Nop())
	require.NoError(t, err)

	for range 3 {
		got, err := cached.FetchNFT(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCachingServerAdapter_FetchNFT_ErrorsNotCached(t *testing.T) {
	next := mock.NewMockServerAdapter(gomock.NewController(t))
	gomock.InOrder(
		next.EXPECT().FetchNFT(gomock.Any(), models.Identifier("a")).Return(models.NFT{}, ErrTransport),
		next.EXPECT().FetchNFT(gomock.Any(), models.Identifier("a")).Return(models.NFT{ID: "a"}, nil),
	)

	cached, err := NewCachingServerAdapter(next, 2, logger.Nop())
	require.NoError(t, err)

	_, err = cached.FetchNFT(context.Background(), "a")
	assert.ErrorIs(t, err, ErrTransport)

	got, err := cached.FetchNFT(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, models.Identifier("a"), got.ID)
}

func TestCachingServerAdapter_FetchNFT_Evicts(t *testing.T) {
	next := mock.NewMockServerAdapter(gomock.NewController(t))
	next.EXPECT().FetchNFT(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id models.Identifier) (models.NFT, error) {
			return models.NFT{ID: id}, nil
		}).Times(4)

	cached, err := NewCachingServerAdapter(next, 2, logger.Nop())
	require.NoError(t, err)

	// a, b, c: a вытесняется и запрашивается снова
	for _, id := range []models.Identifier{"a", "b", "c", "a"} {
		_, err = cached.FetchNFT(context.Background(), id)
		require.NoError(t, err)
	}
}

func TestCachingServerAdapter_MembershipPassesThrough(t *testing.T) {
	next := mock.NewMockServerAdapter(gomock.NewController(t))
	owner := models.Owner{ID: "1", Kind: models.KindLikes}
	next.EXPECT().GetWholeSet(gomock.Any(), owner).Return([]models.Identifier{"x"}, nil).Times(2)
	next.EXPECT().PutWholeSet(gomock.Any(), owner, []models.Identifier{"x", "y"}).Return(nil)
	next.EXPECT().GetCollections(gomock.Any()).Return(nil, ErrTransport)
	next.EXPECT().GetProfile(gomock.Any(), "1").Return(models.Profile{ID: "1"}, nil).Times(2)

	cached, err := NewCachingServerAdapter(next, 2, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	for range 2 {
		got, err := cached.GetWholeSet(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, []models.Identifier{"x"}, got)
	}
	require.NoError(t, cached.PutWholeSet(ctx, owner, []models.Identifier{"x", "y"}))
	_, err = cached.GetCollections(ctx)
	assert.ErrorIs(t, err, ErrTransport)

	for range 2 {
		profile, err := cached.GetProfile(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "1", profile.ID)
	}
}

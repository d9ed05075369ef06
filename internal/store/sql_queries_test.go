package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-nft-keeper/models"
)

func TestBuildInsertMembersQuery(t *testing.T) {
	owner := models.Owner{ID: "7", Kind: models.KindCart}

	query, args, err := buildInsertMembersQuery(owner, []models.Identifier{"a", "b", "a"})

	require.NoError(t, err)
	q := strings.ToLower(query)
	require.Contains(t, q, "insert into memberships")
	// three rows → twelve placeholders
	require.Contains(t, query, "$12")
	require.Len(t, args, 12)
	require.Equal(t, []any{"7", "cart", 0, "a", "7", "cart", 1, "b", "7", "cart", 2, "a"}, args)
}

func TestBuildGetMembersQuery(t *testing.T) {
	query, args, err := buildGetMembersQuery(models.Owner{ID: "1", Kind: models.KindLikes})

	require.NoError(t, err)
	require.Contains(t, query, "ORDER BY position")
	require.Equal(t, []any{"likes", "1"}, args)
}

func TestBuildGetNFTQuery(t *testing.T) {
	query, args, err := buildGetNFTQuery("abc")

	require.NoError(t, err)
	require.Contains(t, strings.ToLower(query), "from nfts")
	require.Contains(t, query, "$1")
	require.Equal(t, []any{"abc"}, args)
}

func TestBuildPreferenceQueries_UseQuestionPlaceholders(t *testing.T) {
	query, _, err := buildGetPreferenceQuery("k")
	require.NoError(t, err)
	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")

	query, args, err := buildSetPreferenceQuery("k", "v")
	require.NoError(t, err)
	require.Contains(t, query, "ON CONFLICT(key)")
	require.Equal(t, []any{"k", "v"}, args)
}

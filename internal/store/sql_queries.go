package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-nft-keeper/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	nftColumns        = []string{"id", "name", "images", "rating", "description", "price", "author", "created_at"}
	collectionColumns = []string{"id", "name", "cover", "description", "author", "created_at"}
	profileColumns    = []string{"id", "name", "avatar", "description", "website", "nfts"}
)

func buildGetNFTQuery(id models.Identifier) (string, []any, error) {
	return psql.Select(nftColumns...).
		From("nfts").
		Where(sq.Eq{"id": id.String()}).
		ToSql()
}

func buildListCollectionsQuery() (string, []any, error) {
	return psql.Select(collectionColumns...).
		From("collections").
		OrderBy("id").
		ToSql()
}

func buildListCollectionMembersQuery() (string, []any, error) {
	return psql.Select("collection_id", "nft_id").
		From("collection_nfts").
		OrderBy("collection_id", "position").
		ToSql()
}

func buildGetMembersQuery(owner models.Owner) (string, []any, error) {
	return psql.Select("nft_id").
		From("memberships").
		Where(sq.Eq{"owner_id": owner.ID, "kind": string(owner.Kind)}).
		OrderBy("position").
		ToSql()
}

func buildDeleteMembersQuery(owner models.Owner) (string, []any, error) {
	return psql.Delete("memberships").
		Where(sq.Eq{"owner_id": owner.ID, "kind": string(owner.Kind)}).
		ToSql()
}

// buildInsertMembersQuery must not be called with an empty ids slice:
// an INSERT without VALUES is rejected by squirrel.
func buildInsertMembersQuery(owner models.Owner, ids []models.Identifier) (string, []any, error) {
	insert := psql.Insert("memberships").Columns("owner_id", "kind", "position", "nft_id")
	for position, id := range ids {
		insert = insert.Values(owner.ID, string(owner.Kind), position, id.String())
	}

	return insert.ToSql()
}

func buildGetProfileQuery(id string) (string, []any, error) {
	return psql.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildGetPreferenceQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From("preferences").
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildSetPreferenceQuery(key, value string) (string, []any, error) {
	return sq.Insert("preferences").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}

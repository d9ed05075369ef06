package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-nft-keeper/internal/config"
	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/internal/utils"
	"github.com/MKhiriev/go-nft-keeper/models"
)

const (
	nftPath         = "/api/v1/nft/{id}"
	collectionsPath = "/api/v1/collections"
	profilePath     = "/api/v1/profile/{id}"
	orderPath       = "/api/v1/orders/{id}"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The base URL is taken from adapterCfg.HTTPAddress ("http://" is assumed
// when no scheme is given); adapterCfg.RequestTimeout bounds every request
// and adapterCfg.Token is sent in the backend token header.
//
// Returns an error if the address is empty or is not a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, adapterCfg.Token)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchNFT implements [ServerAdapter] with GET /api/v1/nft/{id}.
func (h *httpServerAdapter) FetchNFT(ctx context.Context, id models.Identifier) (models.NFT, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", id.String()).
		Get(nftPath)
	if err != nil {
		return models.NFT{}, fmt.Errorf("%w: fetch nft %s: %w", ErrTransport, id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NFT{}, fmt.Errorf("fetch nft %s: %w", id, err)
	}

	var nft models.NFT
	if err = decode(resp, &nft); err != nil {
		return models.NFT{}, fmt.Errorf("fetch nft %s: %w", id, err)
	}

	return nft, nil
}

// GetWholeSet implements [ServerAdapter]. Likes are read from the "likes"
// field of GET /api/v1/profile/{id}, cart contents from the "nfts" field of
// GET /api/v1/orders/{id}.
func (h *httpServerAdapter) GetWholeSet(ctx context.Context, owner models.Owner) ([]models.Identifier, error) {
	path, err := ownerPath(owner)
	if err != nil {
		return nil, err
	}

	resp, err := h.request(ctx).
		SetPathParam("id", owner.ID).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", ErrTransport, owner, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("get %s: %w", owner, err)
	}

	var ids []models.Identifier
	switch owner.Kind {
	case models.KindLikes:
		var profile models.Profile
		if err = decode(resp, &profile); err != nil {
			return nil, fmt.Errorf("get %s: %w", owner, err)
		}
		ids = profile.Likes
	case models.KindCart:
		var order models.Order
		if err = decode(resp, &order); err != nil {
			return nil, fmt.Errorf("get %s: %w", owner, err)
		}
		ids = order.NFTs
	}

	if ids == nil {
		ids = []models.Identifier{}
	}
	return ids, nil
}

// PutWholeSet implements [ServerAdapter]. The set is sent form-encoded as a
// comma separated list in the kind's field; an empty set is sent as
// "<field>=null" because the backend treats a missing field as malformed.
func (h *httpServerAdapter) PutWholeSet(ctx context.Context, owner models.Owner, ids []models.Identifier) error {
	path, err := ownerPath(owner)
	if err != nil {
		return err
	}

	log := h.logger.WithOwner(owner)
	log.Debug().Int("count", len(ids)).Msg("putting whole set")

	resp, err := h.request(ctx).
		SetPathParam("id", owner.ID).
		SetFormData(map[string]string{
			owner.Kind.FormField(): models.JoinIdentifiers(ids),
		}).
		Put(path)
	if err != nil {
		log.Err(err).Msg("whole set put failed before response")
		return fmt.Errorf("%w: put %s: %w", ErrTransport, owner, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Int("status", resp.StatusCode()).Msg("whole set put rejected")
		return fmt.Errorf("put %s: %w", owner, err)
	}

	return nil
}

// GetProfile implements [ServerAdapter] with GET /api/v1/profile/{id}.
func (h *httpServerAdapter) GetProfile(ctx context.Context, id string) (models.Profile, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Get(profilePath)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: get profile %s: %w", ErrTransport, id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, fmt.Errorf("get profile %s: %w", id, err)
	}

	var profile models.Profile
	if err = decode(resp, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("get profile %s: %w", id, err)
	}

	return profile, nil
}

// GetCollections implements [ServerAdapter] with GET /api/v1/collections.
func (h *httpServerAdapter) GetCollections(ctx context.Context) ([]models.NFTCollection, error) {
	resp, err := h.request(ctx).Get(collectionsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: get collections: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("get collections: %w", err)
	}

	var collections []models.NFTCollection
	if err = decode(resp, &collections); err != nil {
		return nil, fmt.Errorf("get collections: %w", err)
	}

	return collections, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func ownerPath(owner models.Owner) (string, error) {
	switch owner.Kind {
	case models.KindLikes:
		return profilePath, nil
	case models.KindCart:
		return orderPath, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMembershipKind, owner.Kind)
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

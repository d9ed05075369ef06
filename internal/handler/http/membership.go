package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/internal/utils"
	"github.com/MKhiriev/go-nft-keeper/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	profile, err := h.services.MembershipService.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("get profile failed")
		h.writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, profile, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing profile response")
	}
}

// replaceLikes handles PUT /api/v1/profile/{id} with a form-encoded "likes"
// field. The whole set is replaced; "likes=null" empties it.
func (h *Handler) replaceLikes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	update, err := parseMembershipUpdate(r, models.KindLikes)
	if err != nil {
		log.Err(err).Msg("invalid likes form")
		h.writeError(w, err)
		return
	}

	profile, err := h.services.MembershipService.ReplaceLikes(r.Context(), update)
	if err != nil {
		log.Err(err).Str("profile_id", update.Owner.ID).Msg("replace likes failed")
		h.writeError(w, err)
		return
	}

	log.Info().Str("profile_id", update.Owner.ID).Int("count", len(update.IDs)).Msg("likes replaced")
	if _, err = utils.WriteJSON(w, profile, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing profile response")
	}
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	order, err := h.services.MembershipService.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("get order failed")
		h.writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, order, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing order response")
	}
}

// replaceOrder handles PUT /api/v1/orders/{id} with a form-encoded "nfts"
// field. The whole set is replaced; "nfts=null" empties it.
func (h *Handler) replaceOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	update, err := parseMembershipUpdate(r, models.KindCart)
	if err != nil {
		log.Err(err).Msg("invalid order form")
		h.writeError(w, err)
		return
	}

	order, err := h.services.MembershipService.ReplaceOrder(r.Context(), update)
	if err != nil {
		log.Err(err).Str("order_id", update.Owner.ID).Msg("replace order failed")
		h.writeError(w, err)
		return
	}

	log.Info().Str("order_id", update.Owner.ID).Int("count", len(update.IDs)).Msg("order replaced")
	if _, err = utils.WriteJSON(w, order, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing order response")
	}
}

// parseMembershipUpdate reads the whole-set field of kind from the request
// body. The field must be present; a missing field is not the empty set.
func parseMembershipUpdate(r *http.Request, kind models.MembershipKind) (models.MembershipUpdate, error) {
	if err := r.ParseForm(); err != nil {
		return models.MembershipUpdate{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	values, ok := r.PostForm[kind.FormField()]
	if !ok || len(values) == 0 {
		return models.MembershipUpdate{}, ErrMissingSetField
	}

	return models.MembershipUpdate{
		Owner: models.Owner{ID: chi.URLParam(r, "id"), Kind: kind},
		IDs:   models.ParseIdentifiers(values[0]),
	}, nil
}

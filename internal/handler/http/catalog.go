package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-nft-keeper/internal/app"
	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/internal/utils"
	"github.com/MKhiriev/go-nft-keeper/models"
)

func (h *Handler) getNFT(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := models.NormalizeIdentifier(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid nft id")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	nft, err := h.services.NFTService.GetNFT(r.Context(), id)
	if err != nil {
		log.Err(err).Str("nft_id", id.String()).Msg("get nft failed")
		h.writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, nft, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing nft response")
	}
}

func (h *Handler) listCollections(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	collections, err := h.services.CollectionService.ListCollections(r.Context())
	if err != nil {
		log.Err(err).Msg("list collections failed")
		h.writeError(w, err)
		return
	}

	if collections == nil {
		collections = []models.NFTCollection{}
	}

	if _, err = utils.WriteJSON(w, collections, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing collections response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, message := responseFromError(err)
	http.Error(w, message, status)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/mkosarev/keepsake/internal/logger"
	"github.com/mkosarev/keepsake/internal/utils"
	"github.com/mkosarev/keepsake/models"
)

func (h *Handler) pinStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	hasPin, err := h.services.PinService.Status(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PinStatusResponse{HasPin: hasPin}, http.StatusOK)
}

func (h *Handler) setPin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.PinRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.setPin").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.PinService.Set(r.Context(), ownerID, request.Pin); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) verifyPin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.PinRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.verifyPin").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	valid, err := h.services.PinService.Verify(r.Context(), ownerID, request.Pin)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PinVerifyResponse{Valid: valid}, http.StatusOK)
}

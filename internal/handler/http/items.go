// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/nudge/internal/app"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/utils"
	"github.com/MKhiriev/nudge/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listActive(w http.ResponseWriter, r *http.Request) {
	userID := mustUserID(r)

	filter, err := parseStatusFilter(r)
	if err != nil {
		writeServiceError(w, r, err, app.MsgBadStatusFilter)
		return
	}

	items, err := h.services.ItemService.ListActive(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, r, err, app.MsgListItemsFailed)
		return
	}
	_, _ = utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) listArchived(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.ListArchived(r.Context(), mustUserID(r))
	if err != nil {
		writeServiceError(w, r, err, app.MsgListArchivedFailed)
		return
	}
	_, _ = utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var input models.ItemInput
	if err := utils.ReadJSON(r, &input); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createItem").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.Create(r.Context(), mustUserID(r), input)
	if err != nil {
		writeServiceError(w, r, err, app.MsgCreateItemFailed)
		return
	}
	_, _ = utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := itemIDParam(r)
	if err != nil {
		writeServiceError(w, r, err, app.MsgBadItemID)
		return
	}

	var input models.ItemInput
	if err = utils.ReadJSON(r, &input); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateItem").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.Update(r.Context(), mustUserID(r), itemID, input)
	if err != nil {
		writeServiceError(w, r, err, app.MsgUpdateItemFailed)
		return
	}
	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) archiveItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := itemIDParam(r)
	if err != nil {
		writeServiceError(w, r, err, app.MsgBadItemID)
		return
	}

	if err = h.services.ItemService.Archive(r.Context(), mustUserID(r), itemID); err != nil {
		writeServiceError(w, r, err, app.MsgArchiveItemFailed)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := itemIDParam(r)
	if err != nil {
		writeServiceError(w, r, err, app.MsgBadItemID)
		return
	}

	if err = h.services.ItemService.Delete(r.Context(), mustUserID(r), itemID); err != nil {
		writeServiceError(w, r, err, app.MsgDeleteItemFailed)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) archiveAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.ItemService.ArchiveAll(r.Context(), mustUserID(r))
	if err != nil {
		writeServiceError(w, r, err, app.MsgArchiveAllFailed)
		return
	}
	_, _ = utils.WriteJSON(w, models.CountResponse{Count: count}, http.StatusOK)
}

func (h *Handler) deleteAllArchived(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.ItemService.DeleteAllArchived(r.Context(), mustUserID(r))
	if err != nil {
		writeServiceError(w, r, err, app.MsgDeleteAllArchivedFailed)
		return
	}
	_, _ = utils.WriteJSON(w, models.CountResponse{Count: count}, http.StatusOK)
}

// mustUserID reads the id stored by the auth middleware. Routes using it
// are only mounted behind that middleware.
func mustUserID(r *http.Request) int64 {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	return userID
}

func itemIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	itemID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || itemID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidItemID, raw)
	}
	return itemID, nil
}

// parseStatusFilter reads ?status=critical,approaching. A missing parameter
// means no filter; a present but empty one hides every bucket.
func parseStatusFilter(r *http.Request) (*models.FilterPreference, error) {
	query := r.URL.Query()
	if !query.Has("status") {
		return nil, nil
	}

	var filter models.FilterPreference
	for _, raw := range strings.Split(query.Get("status"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		status, err := models.ParseStatus(strings.ToLower(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidStatusFilter, err)
		}
		filter.Set(status, true)
	}
	return &filter, nil
}

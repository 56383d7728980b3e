package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RitaM5/Learn-Lingo-server/internal/middleware"
	"github.com/RitaM5/Learn-Lingo-server/internal/models"
	"github.com/RitaM5/Learn-Lingo-server/internal/store"
	"github.com/RitaM5/Learn-Lingo-server/internal/utils"
)

type SelectionHandler struct {
	selections store.SelectionStore
}

func NewSelectionHandler(selections store.SelectionStore) *SelectionHandler {
	return &SelectionHandler{selections: selections}
}

// GetSelection handles GET /select/{id}.
func (h *SelectionHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid selection id")
		return
	}

	selection, err := h.selections.FindByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "selection not found")
		return
	}
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch selection")
		return
	}

	utils.WriteJSON(w, http.StatusOK, selection)
}

// GetMySelections handles GET /select?email=. The list is scoped to the
// authenticated user: a missing email yields an empty list, a mismatched
// one is forbidden.
func (h *SelectionHandler) GetMySelections(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.WriteJSON(w, http.StatusOK, []models.Selection{})
		return
	}

	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok || claims.Email != email {
		utils.WriteError(w, http.StatusForbidden, "forbidden access")
		return
	}

	selections, err := h.selections.FindByEmail(r.Context(), email)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch selections")
		return
	}

	utils.WriteJSON(w, http.StatusOK, selections)
}

// CreateSelection handles POST /select. The only requirement is that the
// request names a user email; there is deliberately no auth gate here.
func (h *SelectionHandler) CreateSelection(w http.ResponseWriter, r *http.Request) {
	var selection models.Selection
	if err := json.NewDecoder(r.Body).Decode(&selection); err != nil || selection.Email == "" {
		utils.WriteError(w, http.StatusBadRequest, "email is required")
		return
	}
	selection.CreatedAt = time.Now()

	id, err := h.selections.Insert(r.Context(), selection)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to save selection")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"acknowledged": true,
		"insertedId":   id.Hex(),
	})
}

// DeleteSelection handles DELETE /select/{id}.
func (h *SelectionHandler) DeleteSelection(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid selection id")
		return
	}

	deleted, err := h.selections.Delete(r.Context(), id)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to delete selection")
		return
	}
	if deleted == 0 {
		utils.WriteError(w, http.StatusNotFound, "selection not found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"acknowledged": true,
		"deletedCount": deleted,
	})
}

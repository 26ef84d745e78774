// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pantrychef/v1/internal/ports/inbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
	"go.uber.org/zap"
)

// PantryAPIHandlers handles pantry REST API requests
type PantryAPIHandlers struct {
	pantryService inbound.PantryService
	logger        *zap.Logger
}

// NewPantryAPIHandlers creates a new pantry API handlers instance
func NewPantryAPIHandlers(
	pantryService inbound.PantryService,
	logger *zap.Logger,
) *PantryAPIHandlers {
	return &PantryAPIHandlers{
		pantryService: pantryService,
		logger:        logger,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ListItems handles GET /api/v1/pantry
func (h *PantryAPIHandlers) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.pantryService.ListItems(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    items,
		Message: "Pantry items retrieved successfully",
	})
}

// AddItem handles POST /api/v1/pantry
func (h *PantryAPIHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.AddItemCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.writeError(w, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	item, err := h.pantryService.AddItem(r.Context(), cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    item,
		Message: "Pantry item added successfully",
	})
}

// RemoveItem handles DELETE /api/v1/pantry/{id}
func (h *PantryAPIHandlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, apperrors.NewBadRequestError("Invalid pantry item ID"))
		return
	}

	if err := h.pantryService.RemoveItem(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Pantry item removed successfully",
	})
}

// CompleteRecipe handles POST /api/v1/pantry/complete-recipe
func (h *PantryAPIHandlers) CompleteRecipe(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.CompleteRecipeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.writeError(w, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	result, err := h.pantryService.CompleteRecipe(r.Context(), cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
		Message: "Recipe completed",
	})
}

// ShoppingList handles POST /api/v1/shopping-list
func (h *PantryAPIHandlers) ShoppingList(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.ShoppingListCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.writeError(w, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	entries, err := h.pantryService.AggregateShoppingList(r.Context(), cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    entries,
		Message: "Shopping list aggregated",
	})
}

// writeError maps application errors to HTTP responses
func (h *PantryAPIHandlers) writeError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.NewInternalError("")
	}
	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.Error(err))
	}

	h.writeJSON(w, appErr.StatusCode(), APIResponse{
		Success: false,
		Error:   appErr.Message,
	})
}

// writeJSON writes a JSON response
func (h *PantryAPIHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

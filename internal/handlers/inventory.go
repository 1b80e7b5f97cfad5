package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wastenot/planner/internal/advice"
	"wastenot/planner/internal/domain"
	"wastenot/planner/internal/inventory"
)

type InventoryHandler struct {
	Store  inventory.Store
	Advice *advice.Service
}

type addItemRequest struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Location string `json:"location"`
}

func (h *InventoryHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		errorJSON(w, http.StatusBadRequest, "Item name is required")
		return
	}
	location, ok := domain.ParseLocation(req.Location)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "Unknown storage location")
		return
	}

	item := domain.FoodItem{
		Name:     req.Name,
		Quantity: req.Quantity,
		Location: location,
	}
	item.ExpiryDays = h.Advice.Advice(r.Context(), req.Name).Days()

	saved, err := h.Store.Add(r.Context(), item)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

func (h *InventoryHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	locationParam := r.URL.Query().Get("location")

	var (
		items []domain.FoodItem
		err   error
	)
	if locationParam == "" {
		items, err = h.Store.All(r.Context())
	} else {
		location, ok := domain.ParseLocation(locationParam)
		if !ok {
			errorJSON(w, http.StatusBadRequest, "Unknown storage location")
			return
		}
		items, err = h.Store.ItemsByLocation(r.Context(), location)
	}
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	if items == nil {
		items = []domain.FoodItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	location, ok := domain.ParseLocation(r.URL.Query().Get(":location"))
	if !ok {
		errorJSON(w, http.StatusBadRequest, "Unknown storage location")
		return
	}
	id := r.URL.Query().Get(":id")
	if id == "" {
		errorJSON(w, http.StatusBadRequest, "Item ID is required")
		return
	}

	if err := h.Store.Remove(r.Context(), location, id); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			errorJSON(w, http.StatusNotFound, err.Error())
			return
		}
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"wastenot/planner/internal/domain"
	"wastenot/planner/internal/planner"

	log "github.com/sirupsen/logrus"
)

type PlanHandler struct {
	Planner *planner.Service
}

type planRequest struct {
	SelectedMeals []domain.SelectedMeal `json:"selected_meals"`
}

type planResponse struct {
	domain.GroceryList
	Availability map[string]domain.AvailabilityResult `json:"availability,omitempty"`
}

// BuildList generates the categorized grocery list for the selected
// meals and annotates it with pantry availability.
func (h *PlanHandler) BuildList(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, domain.GroceryList{Error: "Invalid request body"})
		return
	}
	if len(req.SelectedMeals) == 0 {
		writeJSON(w, http.StatusBadRequest, domain.GroceryList{Error: "No meals selected"})
		return
	}

	list := h.Planner.Plan(r.Context(), req.SelectedMeals)
	if list.Error != "" {
		writeJSON(w, http.StatusInternalServerError, list)
		return
	}

	resp := planResponse{GroceryList: list}
	availability, err := h.Planner.Reconcile(r.Context(), list)
	if err != nil {
		// The list is still useful without pantry reconciliation.
		log.Warnf("Skipping pantry reconciliation: %v", err)
	} else {
		resp.Availability = availability
	}

	writeJSON(w, http.StatusOK, resp)
}

type categoryResponse struct {
	Category domain.Category      `json:"category"`
	Column   domain.Column        `json:"column"`
	Items    []domain.GroceryItem `json:"items"`
}

// ItemsByCategory recomputes the plan and returns a single category's
// items in list order.
func (h *PlanHandler) ItemsByCategory(w http.ResponseWriter, r *http.Request) {
	category := domain.ParseCategory(r.URL.Query().Get(":category"))

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, domain.GroceryList{Error: "Invalid request body"})
		return
	}

	list := h.Planner.Plan(r.Context(), req.SelectedMeals)
	if list.Error != "" {
		writeJSON(w, http.StatusInternalServerError, list)
		return
	}

	writeJSON(w, http.StatusOK, categoryResponse{
		Category: category,
		Column:   category.Column(),
		Items:    planner.ItemsByCategory(list, category),
	})
}

// Availability answers how much of one item the pantry already covers.
func (h *PlanHandler) Availability(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	qty := r.URL.Query().Get("quantity")
	if name == "" {
		errorJSON(w, http.StatusBadRequest, "Item name is required")
		return
	}

	result, err := h.Planner.Availability(r.Context(), name, qty)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

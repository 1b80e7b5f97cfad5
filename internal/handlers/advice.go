package handlers

import (
	"encoding/json"
	"net/http"

	"wastenot/planner/internal/advice"
)

type AdviceHandler struct {
	Advice *advice.Service
}

type adviceRequest struct {
	FoodType string `json:"food_type"`
}

func (h *AdviceHandler) GetStorageAdvice(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FoodType == "" {
		errorJSON(w, http.StatusBadRequest, "Food type is required")
		return
	}

	writeJSON(w, http.StatusOK, h.Advice.Advice(r.Context(), req.FoodType))
}

func (h *AdviceHandler) GetFoodTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Advice.FoodTypes(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	if types == nil {
		types = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"food_types": types})
}

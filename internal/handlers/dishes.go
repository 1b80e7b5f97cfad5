package handlers

import (
	"net/http"

	"wastenot/planner/internal/domain"
	"wastenot/planner/internal/repository"
)

type DishHandler struct {
	Repo repository.DishRepository
}

func (h *DishHandler) GetSignatureDishes(w http.ResponseWriter, r *http.Request) {
	cuisine := r.URL.Query().Get("cuisine")

	dishes, err := h.Repo.SignatureDishes(r.Context(), cuisine)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	if dishes == nil {
		dishes = []domain.Dish{}
	}
	writeJSON(w, http.StatusOK, dishes)
}

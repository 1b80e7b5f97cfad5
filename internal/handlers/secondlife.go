package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"wastenot/planner/internal/domain"
	"wastenot/planner/internal/repository"
)

type SecondLifeHandler struct {
	Repo repository.SecondLifeRepository
}

func (h *SecondLifeHandler) GetMethods(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	methods, err := h.Repo.Methods(r.Context(), search)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	if methods == nil {
		methods = []domain.SecondLifeMethod{}
	}
	writeJSON(w, http.StatusOK, methods)
}

func (h *SecondLifeHandler) GetMethodByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid method ID")
		return
	}

	method, err := h.Repo.MethodByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrMethodNotFound) {
			errorJSON(w, http.StatusNotFound, "Item not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, method)
}

package handlers

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

// Routes wires every handler into the API surface consumed by the
// rendering layer.
func Routes(plan *PlanHandler, inv *InventoryHandler, secondLife *SecondLifeHandler, adv *AdviceHandler, dishes *DishHandler) http.Handler {
	standard := alice.New(recoverPanic, logRequest, secureHeaders)

	mux := pat.New()

	// Grocery planning
	mux.Post("/plan", standard.ThenFunc(plan.BuildList))
	mux.Post("/plan/category/:category", standard.ThenFunc(plan.ItemsByCategory))
	mux.Get("/availability", standard.ThenFunc(plan.Availability))

	// Inventory
	mux.Post("/inventory", standard.ThenFunc(inv.AddItem))
	mux.Get("/inventory", standard.ThenFunc(inv.GetItems))
	mux.Del("/inventory/:location/:id", standard.ThenFunc(inv.RemoveItem))

	// Second life methods
	mux.Get("/second-life", standard.ThenFunc(secondLife.GetMethods))
	mux.Get("/second-life/:id", standard.ThenFunc(secondLife.GetMethodByID))

	// Storage advice
	mux.Post("/storage-advice", standard.ThenFunc(adv.GetStorageAdvice))
	mux.Get("/food-types", standard.ThenFunc(adv.GetFoodTypes))

	// Signature dishes
	mux.Get("/dishes", standard.ThenFunc(dishes.GetSignatureDishes))

	return mux
}

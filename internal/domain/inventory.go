package domain

import "time"

type Location string

func (l Location) String() string {
	return string(l)
}

const (
	LocationFridge  Location = "fridge"
	LocationPantry  Location = "pantry"
	LocationFreezer Location = "freezer"
)

var Locations = []Location{LocationFridge, LocationPantry, LocationFreezer}

func ParseLocation(s string) (Location, bool) {
	for _, l := range Locations {
		if s == l.String() {
			return l, true
		}
	}
	return "", false
}

// FoodItem is a tracked inventory entry. It carries everything a
// PantryItem does plus bookkeeping for expiry reminders.
type FoodItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Quantity   string    `json:"quantity"`
	Location   Location  `json:"location"`
	AddedAt    time.Time `json:"added_at"`
	ExpiryDays int       `json:"expiry_days,omitempty"`
}

// PantryView narrows a FoodItem to the fields pantry matching cares about.
func (f FoodItem) PantryView() PantryItem {
	return PantryItem{Name: f.Name, Quantity: f.Quantity}
}

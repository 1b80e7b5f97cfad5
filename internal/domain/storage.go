package domain

type StorageMethod int

const (
	StorageMethodPantry StorageMethod = 0
	StorageMethodFridge StorageMethod = 1
)

// StorageAdvice says how long a food type keeps in the pantry and the
// fridge, and which of the two is recommended.
type StorageAdvice struct {
	Type       string        `json:"type"`
	PantryDays int           `json:"pantry"`
	FridgeDays int           `json:"fridge"`
	Method     StorageMethod `json:"method"`
	Source     string        `json:"source,omitempty"`
}

// Days returns the shelf life under the recommended storage method.
func (a StorageAdvice) Days() int {
	if a.Method == StorageMethodFridge {
		return a.FridgeDays
	}
	return a.PantryDays
}

const (
	AdviceSourceDatabase = "database"
	AdviceSourceRemote   = "remote"
	AdviceSourceDefault  = "database_default"
)

// DefaultStorageAdvice is returned when neither the database nor the
// remote advisor knows the food type.
func DefaultStorageAdvice(foodType string) StorageAdvice {
	return StorageAdvice{
		Type:       foodType,
		PantryDays: 14,
		FridgeDays: 7,
		Method:     StorageMethodFridge,
		Source:     AdviceSourceDefault,
	}
}

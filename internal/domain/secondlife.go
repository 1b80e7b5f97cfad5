package domain

// SecondLifeMethod is a way to repurpose food scraps or leftovers
// instead of throwing them away.
type SecondLifeMethod struct {
	MethodID       int    `json:"method_id"`
	MethodName     string `json:"method_name"`
	IsCombo        string `json:"is_combo"`
	MethodCategory string `json:"method_category"`
	Ingredient     string `json:"ingredient"`
	Description    string `json:"description"`
	Picture        string `json:"picture"`
}

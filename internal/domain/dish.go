package domain

// Dish is a signature dish shown on the meal picker.
type Dish struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cuisine     string `json:"cuisine"`
	ImageURL    string `json:"imageUrl"`
}

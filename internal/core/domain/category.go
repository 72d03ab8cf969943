package domain

// Category groups products and records where they live on the shop floor.
// Deleting a category removes its products via the schema's cascade rule.
type Category struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ShelfLocation string `json:"shelf_location"`
}

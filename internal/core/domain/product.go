package domain

// Product is an inventory item. CategoryName and ShelfLocation are projections
// from the owning category, filled by the repository's join; they are empty when
// the category has been removed out from under the row.
type Product struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	Stock         int64  `json:"stock"`
	CategoryID    int64  `json:"category_id"`
	CategoryName  string `json:"category_name,omitempty"`
	ShelfLocation string `json:"shelf_location,omitempty"`
}

package request

type CatalogServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes" binding:"required"`
	SortOrder       int     `json:"sort_order"`
}

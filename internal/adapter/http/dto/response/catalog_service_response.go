package response

import (
	"time"

	"lavacar_xpto/internal/domain/entities"
)

type CatalogServiceResponse struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenant_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	SortOrder       int       `json:"sort_order"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromCatalogService(s entities.CatalogService) CatalogServiceResponse {
	return CatalogServiceResponse{
		ID:              s.ID,
		TenantID:        s.TenantID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		SortOrder:       s.SortOrder,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func FromCatalogServices(services []entities.CatalogService) []CatalogServiceResponse {
	out := make([]CatalogServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromCatalogService(s))
	}
	return out
}

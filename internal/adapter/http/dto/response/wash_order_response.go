package response

import (
	"time"

	"lavacar_xpto/internal/domain/entities"
	"lavacar_xpto/internal/usecase"
)

type WashOrderResponse struct {
	ID               string     `json:"id"`
	TenantID         string     `json:"tenant_id"`
	VehiclePlate     string     `json:"vehicle_plate"`
	VehicleModel     string     `json:"vehicle_model,omitempty"`
	ClientName       string     `json:"client_name,omitempty"`
	Status           string     `json:"status"`
	QueuePosition    int        `json:"queue_position"`
	EnteredAt        time.Time  `json:"entered_at"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	FinishedAt       *time.Time `json:"finished_at,omitempty"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	TotalValue       float64    `json:"total_value"`
	Discount         float64    `json:"discount,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromWashOrder(o entities.WashOrder) WashOrderResponse {
	return WashOrderResponse{
		ID:               o.ID,
		TenantID:         o.TenantID,
		VehiclePlate:     o.VehiclePlate,
		VehicleModel:     o.VehicleModel,
		ClientName:       o.ClientName,
		Status:           string(o.Status),
		QueuePosition:    o.QueuePosition,
		EnteredAt:        o.EnteredAt,
		StartedAt:        o.StartedAt,
		FinishedAt:       o.FinishedAt,
		EstimatedMinutes: o.EstimatedMinutes,
		TotalValue:       o.TotalValue,
		Discount:         o.Discount,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func FromWashOrders(orders []entities.WashOrder) []WashOrderResponse {
	out := make([]WashOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromWashOrder(o))
	}
	return out
}

// TrackingResponse is what the public tracking page renders: the order plus
// the live position and ETA derived from it.
type TrackingResponse struct {
	Order            WashOrderResponse `json:"order"`
	Position         int               `json:"position"`
	TotalInQueue     int               `json:"total_in_queue"`
	RemainingMinutes int               `json:"remaining_minutes"`
}

func FromTrackingSnapshot(s usecase.TrackingSnapshot) TrackingResponse {
	return TrackingResponse{
		Order:            FromWashOrder(s.Order),
		Position:         s.Position,
		TotalInQueue:     s.TotalInQueue,
		RemainingMinutes: s.RemainingMinutes,
	}
}

type QueuePositionResponse struct {
	OrderID          string `json:"order_id"`
	Status           string `json:"status"`
	Position         int    `json:"position"`
	TotalInQueue     int    `json:"total_in_queue"`
	RemainingMinutes int    `json:"remaining_minutes"`
}

func FromSnapshotPosition(s usecase.TrackingSnapshot) QueuePositionResponse {
	return QueuePositionResponse{
		OrderID:          s.Order.ID,
		Status:           string(s.Order.Status),
		Position:         s.Position,
		TotalInQueue:     s.TotalInQueue,
		RemainingMinutes: s.RemainingMinutes,
	}
}

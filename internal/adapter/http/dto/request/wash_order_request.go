package request

import "strings"

// AdmitVehicleRequest is the staff panel payload for putting a vehicle into
// the queue. Pricing comes either from the selected catalog services or from
// the explicit fields, never both.
type AdmitVehicleRequest struct {
	VehiclePlate     string   `json:"vehicle_plate" binding:"required"`
	VehicleModel     string   `json:"vehicle_model"`
	ClientName       string   `json:"client_name"`
	ServiceIDs       []string `json:"service_ids"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	TotalValue       float64  `json:"total_value"`
	Discount         float64  `json:"discount"`
}

// AdvanceOrderRequest names the status the operator saw on screen. The
// backend refuses the advance when the stored order already moved on.
type AdvanceOrderRequest struct {
	CurrentStatus string `json:"current_status" binding:"required"`
}

func (r AdvanceOrderRequest) ResolveCurrentStatus() string {
	return strings.ToLower(strings.TrimSpace(r.CurrentStatus))
}

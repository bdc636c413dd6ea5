package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	request "lavacar_xpto/internal/adapter/http/dto/request"
	response "lavacar_xpto/internal/adapter/http/dto/response"
	"lavacar_xpto/internal/domain/entities"
	"lavacar_xpto/internal/usecase"
	"lavacar_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid order payload", http.StatusBadRequest)

// QueueHandler is the staff panel's write side: admissions, status advances
// and cancellations, plus the queue listing the panel renders.

type QueueHandler struct {
	usecase       usecase.IQueueUseCase
	subscriptions usecase.ITrackingSubscriptions
}

func NewQueueHandler(uc usecase.IQueueUseCase, subs usecase.ITrackingSubscriptions) *QueueHandler {
	return &QueueHandler{usecase: uc, subscriptions: subs}
}

func (h *QueueHandler) AdmitVehicle(c *gin.Context) {
	var payload request.AdmitVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.AdmitVehicle(c.Request.Context(), c.Param("tenant_id"), usecase.AdmitVehicleInput{
		VehiclePlate:     payload.VehiclePlate,
		VehicleModel:     payload.VehicleModel,
		ClientName:       payload.ClientName,
		ServiceIDs:       payload.ServiceIDs,
		EstimatedMinutes: payload.EstimatedMinutes,
		TotalValue:       payload.TotalValue,
		Discount:         payload.Discount,
	})
	if err != nil {
		appErr := mapQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWashOrder(o))
}

func (h *QueueHandler) AdvanceOrder(c *gin.Context) {
	var payload request.AdvanceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	expected := entities.OrderStatus(payload.ResolveCurrentStatus())
	if !expected.IsValid() {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.AdvanceOrder(c.Request.Context(), c.Param("tenant_id"), c.Param("order_id"), expected)
	if err != nil {
		appErr := mapQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWashOrder(o))
}

func (h *QueueHandler) CancelOrder(c *gin.Context) {
	o, err := h.usecase.CancelOrder(c.Request.Context(), c.Param("tenant_id"), c.Param("order_id"))
	if err != nil {
		appErr := mapQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWashOrder(o))
}

func (h *QueueHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetOrder(c.Request.Context(), c.Param("tenant_id"), c.Param("order_id"))
	if err != nil {
		appErr := mapQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWashOrder(o))
}

// ListQueue returns the tenant's orders, optionally narrowed with
// ?status=aguardando,lavando. Unknown status values are rejected rather than
// silently ignored.
func (h *QueueHandler) ListQueue(c *gin.Context) {
	statuses, ok := parseStatusFilter(c.Query("status"))
	if !ok {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	orders, err := h.usecase.ListQueue(c.Request.Context(), c.Param("tenant_id"), statuses)
	if err != nil {
		appErr := mapQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWashOrders(orders))
}

// WatchQueue streams the full queue over SSE, re-listing on every change so
// the panel never patches local state.
func (h *QueueHandler) WatchQueue(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	orders, err := h.usecase.ListQueue(c.Request.Context(), tenantID, nil)
	if err != nil {
		appErr := mapQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// Coalescing channel: many changes between flushes collapse into one
	// re-list.
	changed := make(chan struct{}, 1)
	cancel, err := h.subscriptions.WatchQueue(c.Request.Context(), tenantID, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		appErr := mapQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.SSEvent("queue", response.FromWashOrders(orders))
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case <-changed:
			orders, err := h.usecase.ListQueue(c.Request.Context(), tenantID, nil)
			if err != nil {
				return true
			}
			c.SSEvent("queue", response.FromWashOrders(orders))
			return true
		}
	})
}

func parseStatusFilter(raw string) ([]entities.OrderStatus, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	parts := strings.Split(raw, ",")
	statuses := make([]entities.OrderStatus, 0, len(parts))
	for _, p := range parts {
		s := entities.OrderStatus(strings.ToLower(strings.TrimSpace(p)))
		if !s.IsValid() {
			return nil, false
		}
		statuses = append(statuses, s)
	}
	return statuses, true
}

func mapQueueError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidPlate),
		errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidAdmission):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlateAlreadyActive):
		return pkg.NewDomainErrorSimple("PLATE_ALREADY_ACTIVE", "This plate already has a wash in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Catalog service not found", http.StatusBadRequest)
	case errors.Is(err, entities.ErrStatusConflict):
		return pkg.NewDomainErrorSimple("STATUS_CONFLICT", "Order status changed, reload and retry", http.StatusConflict)
	case errors.Is(err, entities.ErrNoNextStatus), errors.Is(err, entities.ErrTerminalStatus):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Order cannot move from its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQueryFailed):
		return pkg.NewDomainError("QUERY_FAILED", "Could not reach the order store, try again", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"io"
	"net/http"

	response "lavacar_xpto/internal/adapter/http/dto/response"
	"lavacar_xpto/internal/usecase"
	"lavacar_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// TrackingHandler serves the public "where is my car" page: one-shot lookups
// plus a server-sent-events stream for the live view. No authentication; the
// plate is the lookup key and only non-sensitive order fields go out.

type TrackingHandler struct {
	usecase       usecase.ITrackingUseCase
	subscriptions usecase.ITrackingSubscriptions
}

func NewTrackingHandler(uc usecase.ITrackingUseCase, subs usecase.ITrackingSubscriptions) *TrackingHandler {
	return &TrackingHandler{usecase: uc, subscriptions: subs}
}

// GetTracking resolves the plate's current order with position and ETA.
func (h *TrackingHandler) GetTracking(c *gin.Context) {
	snap, err := h.usecase.Snapshot(c.Request.Context(), c.Param("tenant_id"), c.Param("plate"))
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTrackingSnapshot(snap))
}

// GetPosition is the lighter polling endpoint: position and ETA only.
func (h *TrackingHandler) GetPosition(c *gin.Context) {
	snap, err := h.usecase.Snapshot(c.Request.Context(), c.Param("tenant_id"), c.Param("plate"))
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshotPosition(snap))
}

// WatchTracking streams tracking snapshots over SSE. The first event is the
// current snapshot; afterwards every change to the order produces a fresh
// one. The stream ends when the order record is deleted, the feed drops, or
// the client disconnects.
func (h *TrackingHandler) WatchTracking(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	plate := c.Param("plate")

	snap, err := h.usecase.Snapshot(c.Request.Context(), tenantID, plate)
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// Each update supersedes the previous one, so when a slow client fills
	// the buffer the oldest pending update is the right one to drop.
	updates := make(chan usecase.TrackedUpdate, 16)
	cancel, err := h.subscriptions.TrackPlate(c.Request.Context(), tenantID, plate, func(u usecase.TrackedUpdate) {
		for {
			select {
			case updates <- u:
				return
			default:
				select {
				case <-updates:
				default:
				}
			}
		}
	})
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.SSEvent("snapshot", response.FromTrackingSnapshot(snap))
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case u := <-updates:
			switch {
			case u.Err != nil:
				c.SSEvent("error", pkg.HTTPError{Code: "FEED_CLOSED", Message: "Live updates interrupted, reconnect to resume"})
				return false
			case u.Removed:
				c.SSEvent("removed", pkg.HTTPError{Code: "ORDER_REMOVED", Message: "This order is no longer tracked"})
				return false
			default:
				next, err := h.usecase.SnapshotFor(c.Request.Context(), *u.Order)
				if err != nil {
					// Position query hiccup; the next change retries it.
					return true
				}
				c.SSEvent("snapshot", response.FromTrackingSnapshot(next))
				return true
			}
		}
	})
}

func mapTrackingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidPlate), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "No wash in progress for this plate", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQueryFailed):
		return pkg.NewDomainError("QUERY_FAILED", "Could not reach the order store, try again", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "lavacar_xpto/internal/adapter/http/dto/request"
	response "lavacar_xpto/internal/adapter/http/dto/response"
	"lavacar_xpto/internal/usecase"
	"lavacar_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid service payload", http.StatusBadRequest)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.CatalogServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.CreateService(c.Request.Context(), c.Param("tenant_id"), toServiceInput(payload))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCatalogService(s))
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var payload request.CatalogServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.UpdateService(c.Request.Context(), c.Param("tenant_id"), c.Param("service_id"), toServiceInput(payload))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogService(s))
}

func (h *CatalogHandler) DeactivateService(c *gin.Context) {
	s, err := h.usecase.DeactivateService(c.Request.Context(), c.Param("tenant_id"), c.Param("service_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogService(s))
}

// ListServices lists the tenant's catalog; ?active=true narrows to services
// offered for new admissions.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	onlyActive, _ := strconv.ParseBool(c.Query("active"))

	services, err := h.usecase.ListServices(c.Request.Context(), c.Param("tenant_id"), onlyActive)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogServices(services))
}

func toServiceInput(payload request.CatalogServiceRequest) usecase.CatalogServiceInput {
	return usecase.CatalogServiceInput{
		Name:            payload.Name,
		Description:     payload.Description,
		Price:           payload.Price,
		DurationMinutes: payload.DurationMinutes,
		SortOrder:       payload.SortOrder,
	}
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidServiceInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Catalog service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

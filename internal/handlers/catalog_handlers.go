package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles billable service and product operations
type CatalogHandler struct {
	common *CommonServices
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(common *CommonServices) *CatalogHandler {
	return &CatalogHandler{common: common}
}

// ServiceResponse represents a billable service in API responses
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Price           string `json:"price"`
	DurationMinutes int32  `json:"duration_minutes"`
	Active          bool   `json:"active"`
	CreatedAt       int64  `json:"created_at"`
	UpdatedAt       int64  `json:"updated_at"`
}

func toServiceResponse(s *db.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID.String(),
		Name:            s.Name,
		Description:     helpers.TextOrEmpty(s.Description),
		Price:           helpers.NumericToDecimal(s.Price).StringFixed(2),
		DurationMinutes: s.DurationMinutes,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt.Unix(),
		UpdatedAt:       s.UpdatedAt.Unix(),
	}
}

// ProductResponse represents a stocked product in API responses
type ProductResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Price         string `json:"price"`
	StockQuantity int32  `json:"stock_quantity"`
	Sku           string `json:"sku,omitempty"`
	Active        bool   `json:"active"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     int64  `json:"updated_at"`
}

func toProductResponse(p *db.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Description:   helpers.TextOrEmpty(p.Description),
		Price:         helpers.NumericToDecimal(p.Price).StringFixed(2),
		StockQuantity: p.StockQuantity,
		Sku:           helpers.TextOrEmpty(p.Sku),
		Active:        p.Active,
		CreatedAt:     p.CreatedAt.Unix(),
		UpdatedAt:     p.UpdatedAt.Unix(),
	}
}

// CreateServiceRequest represents the request body for creating a service
type CreateServiceRequest struct {
	Name            string         `json:"name" binding:"required"`
	Description     *string        `json:"description"`
	Price           helpers.Amount `json:"price"`
	DurationMinutes int32          `json:"duration_minutes" binding:"required"`
}

// UpdateServiceRequest represents the request body for updating a service
type UpdateServiceRequest struct {
	Name            *string         `json:"name"`
	Description     *string         `json:"description"`
	Price           *helpers.Amount `json:"price"`
	DurationMinutes *int32          `json:"duration_minutes"`
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name          string         `json:"name" binding:"required"`
	Description   *string        `json:"description"`
	Price         helpers.Amount `json:"price"`
	StockQuantity int32          `json:"stock_quantity"`
	Sku           *string        `json:"sku"`
}

// UpdateProductRequest represents the request body for updating a product
type UpdateProductRequest struct {
	Name          *string         `json:"name"`
	Description   *string         `json:"description"`
	Price         *helpers.Amount `json:"price"`
	StockQuantity *int32          `json:"stock_quantity"`
	Sku           *string         `json:"sku"`
}

// AdjustStockRequest represents a relative stock change
type AdjustStockRequest struct {
	Delta int32 `json:"delta" binding:"required"`
}

// @Summary Create a service
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body CreateServiceRequest true "Service details"
// @Success 201 {object} ServiceResponse
// @Security BearerAuth
// @Router /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	service, err := h.common.Catalog.CreateService(c.Request.Context(), services.CreateServiceParams{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price.Decimal,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "create", "service", &service.ID, nil)
	c.JSON(http.StatusCreated, toServiceResponse(service))
}

// @Summary List services
// @Tags catalog
// @Produce json
// @Param search query string false "Name fragment"
// @Param include_inactive query bool false "Include soft-deleted services"
// @Success 200 {array} ServiceResponse
// @Security BearerAuth
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	list, err := h.common.Catalog.ListServices(c.Request.Context(), c.Query("include_inactive") == "true", c.Query("search"))
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list services", err)
		return
	}

	resp := make([]ServiceResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toServiceResponse(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary Get a service
// @Tags catalog
// @Produce json
// @Param service_id path string true "Service ID"
// @Success 200 {object} ServiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{service_id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := parseUUIDParam(c, "service_id")
	if !ok {
		return
	}

	service, err := h.common.Catalog.GetService(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get service", err)
		return
	}
	c.JSON(http.StatusOK, toServiceResponse(service))
}

// @Summary Update a service
// @Description Price changes never affect items already attached to invoices
// @Tags catalog
// @Accept json
// @Produce json
// @Param service_id path string true "Service ID"
// @Param request body UpdateServiceRequest true "Fields to update"
// @Success 200 {object} ServiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{service_id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := parseUUIDParam(c, "service_id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params := services.UpdateServiceParams{
		ID:              id,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
	}
	if req.Price != nil {
		params.Price = &req.Price.Decimal
	}

	service, err := h.common.Catalog.UpdateService(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "update", "service", &id, nil)
	c.JSON(http.StatusOK, toServiceResponse(service))
}

// @Summary Delete a service
// @Tags catalog
// @Produce json
// @Param service_id path string true "Service ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{service_id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := parseUUIDParam(c, "service_id")
	if !ok {
		return
	}

	if err := h.common.Catalog.SetServiceActive(c.Request.Context(), id, false); err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to delete service", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "delete", "service", &id, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Service deleted"})
}

// @Summary Create a product
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body CreateProductRequest true "Product details"
// @Success 201 {object} ProductResponse
// @Security BearerAuth
// @Router /products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := h.common.Catalog.CreateProduct(c.Request.Context(), services.CreateProductParams{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price.Decimal,
		StockQuantity: req.StockQuantity,
		Sku:           req.Sku,
	})
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "create", "product", &product.ID, nil)
	c.JSON(http.StatusCreated, toProductResponse(product))
}

// @Summary List products
// @Tags catalog
// @Produce json
// @Param search query string false "Name or SKU fragment"
// @Param include_inactive query bool false "Include soft-deleted products"
// @Success 200 {array} ProductResponse
// @Security BearerAuth
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	list, err := h.common.Catalog.ListProducts(c.Request.Context(), c.Query("include_inactive") == "true", c.Query("search"))
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list products", err)
		return
	}

	resp := make([]ProductResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toProductResponse(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary List low-stock products
// @Tags catalog
// @Produce json
// @Param threshold query int false "Stock threshold (default 5)"
// @Success 200 {array} ProductResponse
// @Security BearerAuth
// @Router /products/low-stock [get]
func (h *CatalogHandler) ListLowStockProducts(c *gin.Context) {
	threshold := int32(services.LowStockThreshold)
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid threshold", err)
			return
		}
		threshold = int32(parsed)
	}

	list, err := h.common.Catalog.ListLowStockProducts(c.Request.Context(), threshold)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list low-stock products", err)
		return
	}

	resp := make([]ProductResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toProductResponse(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary Get a product
// @Tags catalog
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{product_id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "product_id")
	if !ok {
		return
	}

	product, err := h.common.Catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get product", err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(product))
}

// @Summary Update a product
// @Description Price changes never affect items already attached to invoices
// @Tags catalog
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Param request body UpdateProductRequest true "Fields to update"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{product_id} [put]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "product_id")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params := services.UpdateProductParams{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		StockQuantity: req.StockQuantity,
		Sku:           req.Sku,
	}
	if req.Price != nil {
		params.Price = &req.Price.Decimal
	}

	product, err := h.common.Catalog.UpdateProduct(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "update", "product", &id, nil)
	c.JSON(http.StatusOK, toProductResponse(product))
}

// @Summary Adjust product stock
// @Description Applies a relative delta; stock never goes below zero
// @Tags catalog
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Param request body AdjustStockRequest true "Stock delta"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{product_id}/stock [post]
func (h *CatalogHandler) AdjustProductStock(c *gin.Context) {
	id, ok := parseUUIDParam(c, "product_id")
	if !ok {
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := h.common.Catalog.AdjustProductStock(c.Request.Context(), id, req.Delta)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to adjust stock", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "adjust_stock", "product", &id, map[string]interface{}{"delta": req.Delta})
	c.JSON(http.StatusOK, toProductResponse(product))
}

// @Summary Delete a product
// @Tags catalog
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{product_id} [delete]
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "product_id")
	if !ok {
		return
	}

	if err := h.common.Catalog.SetProductActive(c.Request.Context(), id, false); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to delete product", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "delete", "product", &id, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Product deleted"})
}

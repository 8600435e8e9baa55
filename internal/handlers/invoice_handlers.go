package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceHandler handles invoice and invoice-item operations
type InvoiceHandler struct {
	common *CommonServices
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(common *CommonServices) *InvoiceHandler {
	return &InvoiceHandler{common: common}
}

// InvoiceItemResponse represents one invoice line in API responses. The
// name, description and unit price are the values snapshotted when the item
// was attached, not the current catalog values.
type InvoiceItemResponse struct {
	ID              string  `json:"id"`
	InvoiceID       string  `json:"invoice_id"`
	ItemType        string  `json:"item_type"`
	ServiceID       *string `json:"service_id,omitempty"`
	ProductID       *string `json:"product_id,omitempty"`
	ItemName        string  `json:"item_name"`
	ItemDescription string  `json:"item_description,omitempty"`
	UnitPrice       string  `json:"unit_price"`
	Quantity        int32   `json:"quantity"`
	DiscountPercent string  `json:"discount_percent"`
	LineTotal       string  `json:"line_total"`
}

// InvoiceResponse represents an invoice with its derived ledger figures.
// Subtotal, discount amount, total, balance due and status are computed on
// every read and never stored.
type InvoiceResponse struct {
	ID              string                `json:"id"`
	InvoiceNumber   string                `json:"invoice_number"`
	ClientID        string                `json:"client_id"`
	PetID           *string               `json:"pet_id,omitempty"`
	InvoiceDate     string                `json:"invoice_date"`
	DueDate         *string               `json:"due_date,omitempty"`
	DiscountPercent string                `json:"discount_percent"`
	Deposit         string                `json:"deposit"`
	Notes           string                `json:"notes,omitempty"`
	Subtotal        string                `json:"subtotal"`
	DiscountAmount  string                `json:"discount_amount"`
	Total           string                `json:"total"`
	BalanceDue      string                `json:"balance_due"`
	Status          string                `json:"status"`
	Items           []InvoiceItemResponse `json:"items"`
	Active          bool                  `json:"active"`
	CreatedAt       int64                 `json:"created_at"`
	UpdatedAt       int64                 `json:"updated_at"`
}

func (h *InvoiceHandler) toInvoiceItemResponse(item *db.InvoiceItem) InvoiceItemResponse {
	resp := InvoiceItemResponse{
		ID:              item.ID.String(),
		InvoiceID:       item.InvoiceID.String(),
		ItemType:        item.ItemType,
		ItemName:        item.ItemName,
		ItemDescription: helpers.TextOrEmpty(item.ItemDescription),
		UnitPrice:       helpers.NumericToDecimal(item.UnitPrice).StringFixed(2),
		Quantity:        item.Quantity,
		DiscountPercent: helpers.NumericToDecimal(item.DiscountPercent).String(),
	}
	if item.ServiceID.Valid {
		s := uuid.UUID(item.ServiceID.Bytes).String()
		resp.ServiceID = &s
	}
	if item.ProductID.Valid {
		p := uuid.UUID(item.ProductID.Bytes).String()
		resp.ProductID = &p
	}
	lineTotal, err := h.common.Invoices.Calculator().LineTotal(services.LedgerItem{
		UnitPrice:       helpers.NumericToDecimal(item.UnitPrice),
		Quantity:        item.Quantity,
		DiscountPercent: helpers.NumericToDecimal(item.DiscountPercent),
	})
	if err == nil {
		resp.LineTotal = lineTotal.StringFixed(2)
	}
	return resp
}

func (h *InvoiceHandler) toInvoiceResponse(inv *services.InvoiceWithLedger) InvoiceResponse {
	resp := InvoiceResponse{
		ID:              inv.Invoice.ID.String(),
		InvoiceNumber:   inv.Invoice.InvoiceNumber,
		ClientID:        inv.Invoice.ClientID.String(),
		InvoiceDate:     inv.Invoice.InvoiceDate.Format("2006-01-02"),
		DiscountPercent: inv.Ledger.DiscountPercent.String(),
		Deposit:         inv.Ledger.Deposit.StringFixed(2),
		Notes:           helpers.TextOrEmpty(inv.Invoice.Notes),
		Subtotal:        inv.Ledger.Subtotal.StringFixed(2),
		DiscountAmount:  inv.Ledger.DiscountAmount.StringFixed(2),
		Total:           inv.Ledger.Total.StringFixed(2),
		BalanceDue:      inv.Ledger.BalanceDue.StringFixed(2),
		Status:          string(inv.Ledger.Status),
		Items:           make([]InvoiceItemResponse, 0, len(inv.Items)),
		Active:          inv.Invoice.Active,
		CreatedAt:       inv.Invoice.CreatedAt.Unix(),
		UpdatedAt:       inv.Invoice.UpdatedAt.Unix(),
	}
	if inv.Invoice.PetID.Valid {
		p := uuid.UUID(inv.Invoice.PetID.Bytes).String()
		resp.PetID = &p
	}
	if inv.Invoice.DueDate.Valid {
		d := inv.Invoice.DueDate.Time.Format("2006-01-02")
		resp.DueDate = &d
	}
	for i := range inv.Items {
		resp.Items = append(resp.Items, h.toInvoiceItemResponse(&inv.Items[i]))
	}
	return resp
}

// CreateInvoiceRequest represents the request body for creating an invoice.
// Discount and deposit accept both JSON numbers and numeric strings.
type CreateInvoiceRequest struct {
	ClientID        uuid.UUID       `json:"client_id" binding:"required"`
	PetID           *uuid.UUID      `json:"pet_id"`
	InvoiceDate     string          `json:"invoice_date"`
	DueDate         *string         `json:"due_date"`
	DiscountPercent *helpers.Amount `json:"discount_percent"`
	Deposit         *helpers.Amount `json:"deposit"`
	Notes           *string         `json:"notes"`
}

// UpdateInvoiceRequest represents the request body for updating an invoice
type UpdateInvoiceRequest struct {
	ClientID        *uuid.UUID      `json:"client_id"`
	PetID           *uuid.UUID      `json:"pet_id"`
	InvoiceDate     *string         `json:"invoice_date"`
	DueDate         *string         `json:"due_date"`
	DiscountPercent *helpers.Amount `json:"discount_percent"`
	Deposit         *helpers.Amount `json:"deposit"`
	Notes           *string         `json:"notes"`
}

// AddInvoiceItemRequest attaches a catalog entry to an invoice. Exactly one
// of service_id or product_id must be set.
type AddInvoiceItemRequest struct {
	ServiceID       *uuid.UUID      `json:"service_id"`
	ProductID       *uuid.UUID      `json:"product_id"`
	Quantity        int32           `json:"quantity" binding:"required"`
	DiscountPercent *helpers.Amount `json:"discount_percent"`
}

// UpdateInvoiceItemRequest updates a line's quantity or discount. Snapshotted
// name and price are immutable.
type UpdateInvoiceItemRequest struct {
	Quantity        *int32          `json:"quantity"`
	DiscountPercent *helpers.Amount `json:"discount_percent"`
}

func parseDatePtr(raw *string, field string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s, expected YYYY-MM-DD", field)
	}
	return &t, nil
}

func amountOrZero(a *helpers.Amount) decimal.Decimal {
	if a == nil {
		return decimal.Zero
	}
	return a.Decimal
}

// @Summary Create an invoice
// @Description Assigns the next sequential invoice number for the month
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	invoiceDate := time.Now()
	if req.InvoiceDate != "" {
		parsed, err := time.Parse("2006-01-02", req.InvoiceDate)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid invoice_date, expected YYYY-MM-DD", err)
			return
		}
		invoiceDate = parsed
	}
	dueDate, err := parseDatePtr(req.DueDate, "due_date")
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	invoice, err := h.common.Invoices.CreateInvoice(c.Request.Context(), services.CreateInvoiceParams{
		ClientID:        req.ClientID,
		PetID:           req.PetID,
		InvoiceDate:     invoiceDate,
		DueDate:         dueDate,
		DiscountPercent: amountOrZero(req.DiscountPercent),
		Deposit:         amountOrZero(req.Deposit),
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientNotFound), errors.Is(err, services.ErrPetNotFound):
			sendError(c, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, services.ErrInvalidLedgerInput):
			sendError(c, http.StatusBadRequest, err.Error(), nil)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to create invoice", err)
		}
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "create", "invoice", &invoice.Invoice.ID, nil)
	c.JSON(http.StatusCreated, h.toInvoiceResponse(invoice))
}

// @Summary List invoices
// @Description Status filtering is applied to the derived payment status
// @Tags invoices
// @Produce json
// @Param client_id query string false "Filter by client"
// @Param status query string false "empty, pending or paid"
// @Param search query string false "Invoice number fragment"
// @Param include_inactive query bool false "Include soft-deleted invoices"
// @Success 200 {array} InvoiceResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	params := services.ListInvoicesParams{
		IncludeInactive: c.Query("include_inactive") == "true",
		Search:          c.Query("search"),
		Limit:           pagination.Limit,
		Offset:          pagination.Offset,
	}
	if raw := c.Query("status"); raw != "" {
		switch services.PaymentStatus(raw) {
		case services.PaymentStatusEmpty, services.PaymentStatusPending, services.PaymentStatusPaid:
			params.Status = services.PaymentStatus(raw)
		default:
			sendError(c, http.StatusBadRequest, "Invalid status, expected empty, pending or paid", nil)
			return
		}
	}
	if raw := c.Query("client_id"); raw != "" {
		clientID, err := uuid.Parse(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid client_id", err)
			return
		}
		params.ClientID = &clientID
	}

	invoices, total, err := h.common.Invoices.ListInvoices(c.Request.Context(), params)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list invoices", err)
		return
	}

	resp := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		resp = append(resp, h.toInvoiceResponse(inv))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "meta": listMeta(total, pagination)})
}

// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoice_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "invoice_id")
	if !ok {
		return
	}

	invoice, err := h.common.Invoices.GetInvoice(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get invoice", err)
		return
	}
	c.JSON(http.StatusOK, h.toInvoiceResponse(invoice))
}

// @Summary Download an invoice as PDF
// @Tags invoices
// @Produce application/pdf
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoice_id}/pdf [get]
func (h *InvoiceHandler) DownloadInvoicePDF(c *gin.Context) {
	id, ok := parseUUIDParam(c, "invoice_id")
	if !ok {
		return
	}

	invoice, err := h.common.Invoices.GetInvoice(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get invoice", err)
		return
	}

	client, err := h.common.Clients.GetClient(c.Request.Context(), invoice.Invoice.ClientID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to load invoice client", err)
		return
	}

	var pet *db.Pet
	if invoice.Invoice.PetID.Valid {
		pet, err = h.common.Pets.GetPet(c.Request.Context(), uuid.UUID(invoice.Invoice.PetID.Bytes))
		if err != nil && !errors.Is(err, services.ErrPetNotFound) {
			sendError(c, http.StatusInternalServerError, "Failed to load invoice pet", err)
			return
		}
	}

	pdf, err := h.common.PDF.RenderInvoice(invoice, client, pet)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to render invoice PDF", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", invoice.Invoice.InvoiceNumber))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// @Summary Update an invoice
// @Description Changing deposit or discount may flip the derived payment status; a transition into paid deducts product stock
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Param request body UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoice_id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "invoice_id")
	if !ok {
		return
	}

	var req UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params := services.UpdateInvoiceParams{
		ID:       id,
		ClientID: req.ClientID,
		PetID:    req.PetID,
		Notes:    req.Notes,
	}
	invoiceDate, err := parseDatePtr(req.InvoiceDate, "invoice_date")
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	params.InvoiceDate = invoiceDate
	dueDate, err := parseDatePtr(req.DueDate, "due_date")
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	params.DueDate = dueDate
	if req.DiscountPercent != nil {
		params.DiscountPercent = &req.DiscountPercent.Decimal
	}
	if req.Deposit != nil {
		params.Deposit = &req.Deposit.Decimal
	}

	invoice, err := h.common.Invoices.UpdateInvoice(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvoiceNotFound), errors.Is(err, services.ErrClientNotFound):
			sendError(c, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, services.ErrInvalidLedgerInput):
			sendError(c, http.StatusBadRequest, err.Error(), nil)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to update invoice", err)
		}
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "update", "invoice", &id, nil)
	c.JSON(http.StatusOK, h.toInvoiceResponse(invoice))
}

// @Summary Mark an invoice as paid
// @Description Sets the deposit to the invoice total and deducts product stock
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoice_id}/pay [post]
func (h *InvoiceHandler) MarkInvoicePaid(c *gin.Context) {
	id, ok := parseUUIDParam(c, "invoice_id")
	if !ok {
		return
	}

	invoice, err := h.common.Invoices.MarkInvoicePaid(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvoiceNotFound):
			sendError(c, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, services.ErrEmptyInvoice):
			sendError(c, http.StatusUnprocessableEntity, err.Error(), nil)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to mark invoice paid", err)
		}
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "mark_paid", "invoice", &id, nil)
	c.JSON(http.StatusOK, h.toInvoiceResponse(invoice))
}

// @Summary Delete an invoice
// @Description Soft-delete; the invoice can be restored later
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoice_id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "invoice_id")
	if !ok {
		return
	}

	if err := h.common.Invoices.DeleteInvoice(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to delete invoice", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "delete", "invoice", &id, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Invoice deleted"})
}

// @Summary Restore an invoice
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoice_id}/restore [post]
func (h *InvoiceHandler) RestoreInvoice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "invoice_id")
	if !ok {
		return
	}

	if err := h.common.Invoices.RestoreInvoice(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to restore invoice", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "restore", "invoice", &id, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Invoice restored"})
}

// @Summary Add an item to an invoice
// @Description Snapshots the catalog entry's name, description and price
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Param request body AddInvoiceItemRequest true "Item details"
// @Success 201 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoice_id}/items [post]
func (h *InvoiceHandler) AddInvoiceItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "invoice_id")
	if !ok {
		return
	}

	var req AddInvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	invoice, err := h.common.Invoices.AddInvoiceItem(c.Request.Context(), services.AddInvoiceItemParams{
		InvoiceID:       id,
		ServiceID:       req.ServiceID,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		DiscountPercent: amountOrZero(req.DiscountPercent),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvoiceNotFound),
			errors.Is(err, services.ErrServiceNotFound),
			errors.Is(err, services.ErrProductNotFound):
			sendError(c, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, services.ErrCatalogItemInactive):
			sendError(c, http.StatusUnprocessableEntity, err.Error(), nil)
		default:
			sendError(c, http.StatusBadRequest, err.Error(), err)
		}
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "add_item", "invoice", &id, nil)
	c.JSON(http.StatusCreated, h.toInvoiceResponse(invoice))
}

// @Summary Update an invoice item
// @Description Only quantity and discount are mutable; snapshotted name and price are not
// @Tags invoices
// @Accept json
// @Produce json
// @Param item_id path string true "Invoice item ID"
// @Param request body UpdateInvoiceItemRequest true "Fields to update"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoice-items/{item_id} [put]
func (h *InvoiceHandler) UpdateInvoiceItem(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "item_id")
	if !ok {
		return
	}

	var req UpdateInvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params := services.UpdateInvoiceItemParams{
		ItemID:   itemID,
		Quantity: req.Quantity,
	}
	if req.DiscountPercent != nil {
		params.DiscountPercent = &req.DiscountPercent.Decimal
	}

	invoice, err := h.common.Invoices.UpdateInvoiceItem(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvoiceItemNotFound):
			sendError(c, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, services.ErrInvalidLedgerInput):
			sendError(c, http.StatusBadRequest, err.Error(), nil)
		default:
			sendError(c, http.StatusBadRequest, err.Error(), err)
		}
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "update_item", "invoice", &invoice.Invoice.ID, nil)
	c.JSON(http.StatusOK, h.toInvoiceResponse(invoice))
}

// @Summary Remove an invoice item
// @Tags invoices
// @Produce json
// @Param item_id path string true "Invoice item ID"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoice-items/{item_id} [delete]
func (h *InvoiceHandler) RemoveInvoiceItem(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "item_id")
	if !ok {
		return
	}

	invoice, err := h.common.Invoices.RemoveInvoiceItem(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, services.ErrInvoiceItemNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to remove invoice item", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "remove_item", "invoice", &invoice.Invoice.ID, nil)
	c.JSON(http.StatusOK, h.toInvoiceResponse(invoice))
}

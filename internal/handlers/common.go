package handlers

import (
	"net/http"

	"github.com/dogtorvet/dogtorvet-api/internal/auth"
	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/logger"
	"github.com/dogtorvet/dogtorvet-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// CommonServices holds shared dependencies used across handlers
type CommonServices struct {
	queries db.Querier
	// dbPool is kept separate for transaction support
	dbPool *pgxpool.Pool
	logger *zap.Logger

	Tokens       *auth.TokenManager
	Users        *services.UserService
	Clients      *services.ClientService
	Pets         *services.PetService
	Taxonomy     *services.TaxonomyService
	Medical      *services.MedicalService
	Appointments *services.AppointmentService
	Catalog      *services.CatalogService
	Invoices     *services.InvoiceService
	Analytics    *services.AnalyticsService
	Audit        *services.AuditService
	PDF          *services.PDFService
}

// CommonServicesConfig contains the dependencies needed to create CommonServices
type CommonServicesConfig struct {
	DB     db.Querier
	DBPool *pgxpool.Pool
	Tokens *auth.TokenManager
	Logger *zap.Logger
}

// NewCommonServices wires the service layer once for all handlers.
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}

	return &CommonServices{
		queries:      config.DB,
		dbPool:       config.DBPool,
		logger:       config.Logger,
		Tokens:       config.Tokens,
		Users:        services.NewUserService(config.DB, config.Tokens),
		Clients:      services.NewClientService(config.DB),
		Pets:         services.NewPetService(config.DB),
		Taxonomy:     services.NewTaxonomyService(config.DB),
		Medical:      services.NewMedicalService(config.DB),
		Appointments: services.NewAppointmentService(config.DB),
		Catalog:      services.NewCatalogService(config.DB),
		Invoices:     services.NewInvoiceService(config.DB),
		Analytics:    services.NewAnalyticsService(config.DB),
		Audit:        services.NewAuditService(config.DB),
		PDF:          services.NewPDFService(),
	}
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// sendError logs the underlying error and returns a sanitized message.
func sendError(c *gin.Context, status int, message string, err error) {
	if err != nil && logger.Log != nil {
		logger.Log.Error(message,
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	c.JSON(status, ErrorResponse{Error: message})
}

// parseUUIDParam parses a path parameter as a UUID, responding 400 on
// failure. The bool reports whether the handler should continue.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid "+name+" format", err)
		return uuid.Nil, false
	}
	return id, true
}

// currentUserID returns the authenticated caller's id, if any, for audit
// attribution.
func currentUserID(c *gin.Context) *uuid.UUID {
	if id, ok := auth.CurrentUserID(c); ok {
		return &id
	}
	return nil
}

// ListMeta is the pagination envelope attached to list responses.
type ListMeta struct {
	Total  int64 `json:"total"`
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func listMeta(total int64, p helpers.PaginationParams) ListMeta {
	return ListMeta{Total: total, Limit: p.Limit, Offset: p.Offset}
}

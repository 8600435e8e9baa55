package db

import (
	"context"

	"github.com/google/uuid"
)

// Querier is the full set of database operations. Services depend on this
// interface so tests can substitute a mock (see internal/mocks).
//
//go:generate mockgen -destination=../mocks/querier_mock.go -package=mocks github.com/dogtorvet/dogtorvet-api/internal/db Querier
type Querier interface {
	// Users
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUser(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ListUsers(ctx context.Context, arg ListUsersParams) ([]User, error)
	UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error)
	UpdateUserPassword(ctx context.Context, arg UpdateUserPasswordParams) error
	SetUserActive(ctx context.Context, arg SetUserActiveParams) error

	// Clients
	CreateClient(ctx context.Context, arg CreateClientParams) (Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (Client, error)
	GetClientByPhone(ctx context.Context, phoneNumber string) (Client, error)
	ListClients(ctx context.Context, arg ListClientsParams) ([]Client, error)
	CountClients(ctx context.Context, arg CountClientsParams) (int64, error)
	UpdateClient(ctx context.Context, arg UpdateClientParams) (Client, error)
	SetClientActive(ctx context.Context, arg SetClientActiveParams) error

	// Species and breeds
	CreateSpecies(ctx context.Context, name string) (Species, error)
	GetSpecies(ctx context.Context, id uuid.UUID) (Species, error)
	ListSpecies(ctx context.Context, includeInactive bool) ([]Species, error)
	UpdateSpecies(ctx context.Context, arg UpdateSpeciesParams) (Species, error)
	SetSpeciesActive(ctx context.Context, arg SetSpeciesActiveParams) error
	CreateBreed(ctx context.Context, arg CreateBreedParams) (Breed, error)
	GetBreed(ctx context.Context, id uuid.UUID) (Breed, error)
	ListBreeds(ctx context.Context, arg ListBreedsParams) ([]Breed, error)
	UpdateBreed(ctx context.Context, arg UpdateBreedParams) (Breed, error)
	SetBreedActive(ctx context.Context, arg SetBreedActiveParams) error

	// Allergies and vaccinations
	CreateAllergy(ctx context.Context, arg CreateAllergyParams) (Allergy, error)
	GetAllergy(ctx context.Context, id uuid.UUID) (Allergy, error)
	ListAllergies(ctx context.Context, includeInactive bool) ([]Allergy, error)
	UpdateAllergy(ctx context.Context, arg UpdateAllergyParams) (Allergy, error)
	SetAllergyActive(ctx context.Context, arg SetAllergyActiveParams) error
	CreateVaccination(ctx context.Context, arg CreateVaccinationParams) (Vaccination, error)
	GetVaccination(ctx context.Context, id uuid.UUID) (Vaccination, error)
	ListVaccinations(ctx context.Context, includeInactive bool) ([]Vaccination, error)
	UpdateVaccination(ctx context.Context, arg UpdateVaccinationParams) (Vaccination, error)
	SetVaccinationActive(ctx context.Context, arg SetVaccinationActiveParams) error

	// Pets
	CreatePet(ctx context.Context, arg CreatePetParams) (Pet, error)
	GetPet(ctx context.Context, id uuid.UUID) (Pet, error)
	ListPets(ctx context.Context, arg ListPetsParams) ([]Pet, error)
	CountPets(ctx context.Context, arg CountPetsParams) (int64, error)
	UpdatePet(ctx context.Context, arg UpdatePetParams) (Pet, error)
	SetPetActive(ctx context.Context, arg SetPetActiveParams) error

	// Appointments
	CreateAppointment(ctx context.Context, arg CreateAppointmentParams) (Appointment, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (Appointment, error)
	ListAppointments(ctx context.Context, arg ListAppointmentsParams) ([]Appointment, error)
	ListUpcomingAppointments(ctx context.Context, limit int32) ([]Appointment, error)
	UpdateAppointment(ctx context.Context, arg UpdateAppointmentParams) (Appointment, error)
	SetAppointmentActive(ctx context.Context, arg SetAppointmentActiveParams) error

	// Services and products
	CreateService(ctx context.Context, arg CreateServiceParams) (Service, error)
	GetService(ctx context.Context, id uuid.UUID) (Service, error)
	ListServices(ctx context.Context, arg ListServicesParams) ([]Service, error)
	UpdateService(ctx context.Context, arg UpdateServiceParams) (Service, error)
	SetServiceActive(ctx context.Context, arg SetServiceActiveParams) error
	CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (Product, error)
	ListProducts(ctx context.Context, arg ListProductsParams) ([]Product, error)
	ListLowStockProducts(ctx context.Context, threshold int32) ([]Product, error)
	UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error)
	AdjustProductStock(ctx context.Context, arg AdjustProductStockParams) (Product, error)
	SetProductActive(ctx context.Context, arg SetProductActiveParams) error

	// Invoices and items
	CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (Invoice, error)
	ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error)
	ListAllInvoices(ctx context.Context, arg ListAllInvoicesParams) ([]Invoice, error)
	CountInvoices(ctx context.Context, arg CountInvoicesParams) (int64, error)
	CountInvoicesWithPrefix(ctx context.Context, prefix string) (int64, error)
	UpdateInvoice(ctx context.Context, arg UpdateInvoiceParams) (Invoice, error)
	SetInvoiceActive(ctx context.Context, arg SetInvoiceActiveParams) error
	CreateInvoiceItem(ctx context.Context, arg CreateInvoiceItemParams) (InvoiceItem, error)
	GetInvoiceItem(ctx context.Context, id uuid.UUID) (InvoiceItem, error)
	ListInvoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceItem, error)
	UpdateInvoiceItem(ctx context.Context, arg UpdateInvoiceItemParams) (InvoiceItem, error)
	DeleteInvoiceItem(ctx context.Context, id uuid.UUID) error

	// Audit and analytics
	CreateAuditLog(ctx context.Context, arg CreateAuditLogParams) (AuditLog, error)
	ListAuditLogs(ctx context.Context, arg ListAuditLogsParams) ([]AuditLog, error)
	CountAppointmentsByStatus(ctx context.Context, status string) (int64, error)
	ListInvoiceLedgerRows(ctx context.Context) ([]InvoiceLedgerRow, error)
}

var _ Querier = (*Queries)(nil)

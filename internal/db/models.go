package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// User is a staff member who can sign in to the API.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Client is a pet owner.
type Client struct {
	ID               uuid.UUID
	Name             string
	Gender           string
	PhoneNumber      string
	OtherContactInfo pgtype.Text
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Species struct {
	ID        uuid.UUID
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Breed struct {
	ID        uuid.UUID
	Name      string
	SpeciesID uuid.UUID
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Allergy struct {
	ID          uuid.UUID
	Name        string
	Description pgtype.Text
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Vaccination struct {
	ID             uuid.UUID
	Name           string
	Description    pgtype.Text
	DurationMonths int32
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Pet struct {
	ID             uuid.UUID
	Name           string
	Gender         string
	Dob            time.Time
	SpeciesID      uuid.UUID
	BreedID        uuid.UUID
	ClientID       uuid.UUID
	Weight         pgtype.Numeric
	Color          string
	MedicalHistory pgtype.Text
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Appointment struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	PetID           uuid.UUID
	ServiceID       pgtype.UUID
	UserID          pgtype.UUID
	AppointmentDate time.Time
	DurationMinutes int32
	Status          string
	Notes           pgtype.Text
	Diagnosis       pgtype.Text
	Treatment       pgtype.Text
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Service is a billable clinic service (exam, surgery, grooming).
type Service struct {
	ID              uuid.UUID
	Name            string
	Description     pgtype.Text
	Price           pgtype.Numeric
	DurationMinutes int32
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Product is a billable stocked item (medication, food, accessories).
type Product struct {
	ID            uuid.UUID
	Name          string
	Description   pgtype.Text
	Price         pgtype.Numeric
	StockQuantity int32
	Sku           pgtype.Text
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Invoice stores only source data; subtotal, total, balance due and payment
// status are derived by the ledger calculator and never persisted.
type Invoice struct {
	ID              uuid.UUID
	InvoiceNumber   string
	ClientID        uuid.UUID
	PetID           pgtype.UUID
	InvoiceDate     time.Time
	DueDate         pgtype.Date
	DiscountPercent pgtype.Numeric
	Deposit         pgtype.Numeric
	Notes           pgtype.Text
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// InvoiceItem is a price snapshot taken when a service or product is attached
// to an invoice. Catalog price changes never affect existing items.
type InvoiceItem struct {
	ID              uuid.UUID
	InvoiceID       uuid.UUID
	ItemType        string
	ServiceID       pgtype.UUID
	ProductID       pgtype.UUID
	ItemName        string
	ItemDescription pgtype.Text
	UnitPrice       pgtype.Numeric
	Quantity        int32
	DiscountPercent pgtype.Numeric
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AuditLog struct {
	ID         uuid.UUID
	UserID     pgtype.UUID
	Action     string
	EntityType string
	EntityID   pgtype.UUID
	Details    []byte
	CreatedAt  time.Time
}

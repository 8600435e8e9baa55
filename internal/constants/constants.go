package constants

// Deployment stages
const (
	StageDev  = "dev"
	StageProd = "prod"
	StageTest = "test"
)

// User roles
const (
	RoleAdmin = "admin"
	RoleVet   = "vet"
	RoleStaff = "staff"
)

// Invoice item types
const (
	ItemTypeService = "service"
	ItemTypeProduct = "product"
)

// Appointment statuses
const (
	AppointmentScheduled  = "scheduled"
	AppointmentConfirmed  = "confirmed"
	AppointmentInProgress = "in_progress"
	AppointmentCompleted  = "completed"
	AppointmentCancelled  = "cancelled"
)

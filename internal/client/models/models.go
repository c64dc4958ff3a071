// Package models defines the data shapes exchanged with the HR backend:
// domain entities, create-request payloads, and the response wrappers
// (paginated lists and the success/error envelope some endpoints use).
//
// Entity ids and createdAt/updatedAt timestamps are always assigned by
// the server; create-request types deliberately carry neither.
package models

import "time"

// Roles a user account can hold. The backend gates /admin and /manager
// routes on these.
const (
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
	RoleEmployee = "EMPLOYEE"
)

// SalaryType describes how an employee's pay is computed.
type SalaryType string

const (
	SalaryMonthly SalaryType = "MONTHLY"
	SalaryDaily   SalaryType = "DAILY"
	SalaryHourly  SalaryType = "HOURLY"
)

// Payment and project status strings as reported by the backend.
const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"

	ProjectActive    = "ACTIVE"
	ProjectCompleted = "COMPLETED"

	AttendancePresent = "PRESENT"
	AttendanceAbsent  = "ABSENT"
)

// User is the account profile returned by the backend.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UserCreateRequest is the payload for /auth/register and user CRUD.
type UserCreateRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest carries credentials for /auth/login. Transient: never
// persisted beyond the call itself.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the successful /auth/login body.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Employee is a staff record managed under /admin/employees.
type Employee struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Position      string     `json:"position"`
	Department    string     `json:"department"`
	HireDate      string     `json:"hireDate"`
	SalaryType    SalaryType `json:"salaryType"`
	SalaryAmount  float64    `json:"salaryAmount"`
	SalaryRate    *float64   `json:"salaryRate,omitempty"`
	IsActive      bool       `json:"isActive"`
	FaceEmbedding *string    `json:"faceEmbedding,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// EmployeeCreateRequest is submitted as multipart form data together
// with a photo attachment.
type EmployeeCreateRequest struct {
	UserID       string     `json:"userId"`
	Name         string     `json:"name"`
	Position     string     `json:"position"`
	Department   string     `json:"department"`
	SalaryType   SalaryType `json:"salaryType"`
	SalaryAmount float64    `json:"salaryAmount"`
	SalaryRate   *float64   `json:"salaryRate,omitempty"`
	IsActive     bool       `json:"isActive"`
}

// Attendance is a single day's attendance record for an employee.
// CheckIn/CheckOut are clock times, nil until the respective event.
type Attendance struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Date       string    `json:"date"`
	CheckIn    *string   `json:"checkIn"`
	CheckOut   *string   `json:"checkOut"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// AttendanceCreateRequest is the JSON payload for attendance CRUD.
type AttendanceCreateRequest struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"checkIn,omitempty"`
	CheckOut   *string `json:"checkOut,omitempty"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
}

// SalaryRecord is a computed pay record for one employee and period.
type SalaryRecord struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employeeId"`
	PeriodStart   string    `json:"periodStart"`
	PeriodEnd     string    `json:"periodEnd"`
	BaseAmount    float64   `json:"baseAmount"`
	Bonus         float64   `json:"bonus"`
	Deductions    float64   `json:"deductions"`
	NetAmount     float64   `json:"netAmount"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentDate   *string   `json:"paymentDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SalaryCalculationRequest asks the backend to compute a salary record
// for the given employee and period.
type SalaryCalculationRequest struct {
	EmployeeID  string  `json:"employeeId"`
	PeriodStart string  `json:"periodStart"`
	PeriodEnd   string  `json:"periodEnd"`
	Bonus       float64 `json:"bonus"`
	Deductions  float64 `json:"deductions"`
}

// Project is a project record managed under /admin/projects.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    *string   `json:"location"`
	StartDate   string    `json:"startDate"`
	EndDate     *string   `json:"endDate"`
	ManagerID   *string   `json:"managerId"`
	EmployeeIDs []string  `json:"employeeIds"`
	Budget      *float64  `json:"budget"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectCreateRequest is the JSON payload for project CRUD.
type ProjectCreateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Location    *string  `json:"location,omitempty"`
	StartDate   string   `json:"startDate"`
	EndDate     *string  `json:"endDate,omitempty"`
	ManagerID   *string  `json:"managerId,omitempty"`
	EmployeeIDs []string `json:"employeeIds,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// APIResponse is the {success,message,data,error} envelope some mutation
// endpoints wrap their result in. Other endpoints return the raw
// resource; callers must accept both shapes.
type APIResponse[T any] struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
	Data    *T      `json:"data,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// PaginatedResponse is a page of a resource collection. Page numbers are
// 1-indexed and len(Data) never exceeds PageSize.
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// HasNextPage reports whether a page after Page exists.
func (p PaginatedResponse[T]) HasNextPage() bool {
	return p.Page < p.TotalPages
}

// HasPreviousPage reports whether a page before Page exists.
func (p PaginatedResponse[T]) HasPreviousPage() bool {
	return p.Page > 1
}

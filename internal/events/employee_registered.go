package events

import "time"

const (
	EmployeeLifecycleTopic  = "groupware.employee.lifecycle.v1"
	EmployeeRegisteredEvent = "employee_registered"
)

// EmployeeRegistered ditulis ke outbox dalam transaksi yang sama dengan insert employee.
type EmployeeRegistered struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	Name         string    `json:"name"`
	DepartmentID int       `json:"department_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}

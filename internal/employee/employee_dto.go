package employee

type AddEmployeeRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email,max=100"`
	HireDate     string `json:"hireDate" binding:"omitempty,pastorpresent"`
	DepartmentID int    `json:"departmentId" binding:"required"`
	Position     string `json:"position" binding:"max=50"`
}

type EmployeeDepartmentResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// EmployeeResponse tidak pernah membawa hash password.
type EmployeeResponse struct {
	ID         string                     `json:"id"`
	Name       string                     `json:"name"`
	Email      string                     `json:"email"`
	HireDate   string                     `json:"hireDate,omitempty"`
	Position   string                     `json:"position,omitempty"`
	Active     string                     `json:"active"`
	Department EmployeeDepartmentResponse `json:"department"`
}

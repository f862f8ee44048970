package auth

import "go-groupware/internal/employee"

type LoginRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token    string                    `json:"token"`
	Employee employee.EmployeeResponse `json:"employee"`
}

type ChangePasswordRequest struct {
	EmployeeID  string `json:"employeeId" binding:"required"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,max=72,strongpassword"`
}

package models

// Success Response Models

// CreateEmployeeSuccessResponse represents successful employee creation response
type CreateEmployeeSuccessResponse struct {
	Message  string   `json:"message" example:"Karyawan berhasil ditambahkan"`
	Employee Employee `json:"employee"`
}

// GetEmployeeSuccessResponse represents successful get employee response
type GetEmployeeSuccessResponse struct {
	Message  string   `json:"message" example:"Karyawan berhasil ditemukan"`
	Employee Employee `json:"employee"`
}

// GetAllEmployeesSuccessResponse represents successful get all employees response
type GetAllEmployeesSuccessResponse struct {
	Message   string     `json:"message" example:"Data karyawan berhasil diambil"`
	Employees []Employee `json:"employees"`
	Total     int        `json:"total" example:"10"`
}

// UpdateEmployeeSuccessResponse represents successful employee update response
type UpdateEmployeeSuccessResponse struct {
	Message  string   `json:"message" example:"Karyawan berhasil diupdate"`
	Employee Employee `json:"employee"`
}

// DeleteEmployeeSuccessResponse represents successful employee deletion response
type DeleteEmployeeSuccessResponse struct {
	Message    string `json:"message" example:"Karyawan berhasil dihapus"`
	EmployeeID string `json:"employee_id" example:"7f8de1a2-4c83-4a53-9d8a-0b6a3a1f9b11"`
}

// CreateDependentSuccessResponse represents successful dependent creation response
type CreateDependentSuccessResponse struct {
	Message   string    `json:"message" example:"Tanggungan berhasil ditambahkan"`
	Dependent Dependent `json:"dependent"`
}

// UpdateDependentSuccessResponse represents successful dependent update response
type UpdateDependentSuccessResponse struct {
	Message   string    `json:"message" example:"Tanggungan berhasil diupdate"`
	Dependent Dependent `json:"dependent"`
}

// DeleteDependentSuccessResponse represents successful dependent deletion response
type DeleteDependentSuccessResponse struct {
	Message     string `json:"message" example:"Tanggungan berhasil dihapus"`
	DependentID string `json:"dependent_id" example:"3a1d9c70-55be-4f02-8a5e-6f2d7c4b9e21"`
}

// Error Response Models

// ErrorResponse represents basic error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Error  string `json:"error" example:"Validation failed"`
	Errors string `json:"errors" example:"first_name: kolom wajib diisi"`
}

// NotFoundErrorResponse represents not found error response
type NotFoundErrorResponse struct {
	Error string `json:"error" example:"Karyawan tidak ditemukan"`
}

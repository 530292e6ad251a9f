package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"Kalkulator-Benefit-Karyawan/models"
	util "Kalkulator-Benefit-Karyawan/pkg/utils"
	"Kalkulator-Benefit-Karyawan/repository"
)

type EmployeeHandler struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeHandler(employeeRepo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{
		employeeRepo: employeeRepo,
	}
}

// GetAllEmployees godoc
// @Summary Get All Employees
// @Description Mendapatkan daftar semua karyawan beserta tanggungannya
// @Tags Employees
// @Accept json
// @Produce json
// @Success 200 {object} models.GetAllEmployeesSuccessResponse "Data karyawan berhasil diambil"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil data karyawan"
// @Router /employees [get]
func (h *EmployeeHandler) GetAllEmployees(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employees, err := h.employeeRepo.FindAllEmployees(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil data karyawan: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Data karyawan berhasil diambil",
		"employees": employees,
		"total":     len(employees),
	})
}

// GetEmployeeByID godoc
// @Summary Get Employee by ID
// @Description Mendapatkan detail karyawan berdasarkan ID
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} models.Employee "Karyawan berhasil ditemukan"
// @Failure 404 {object} models.NotFoundErrorResponse "Karyawan tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil karyawan"
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployeeByID(c *fiber.Ctx) error {
	idParam := c.Params("id")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindEmployeeByID(ctx, idParam)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil karyawan: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(employee)
}

// CreateEmployee godoc
// @Summary Create Employee
// @Description Menambahkan karyawan baru tanpa tanggungan
// @Tags Employees
// @Accept json
// @Produce json
// @Param employee body models.EmployeeCreatePayload true "Data karyawan baru"
// @Success 201 {object} models.CreateEmployeeSuccessResponse "Karyawan berhasil ditambahkan"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body atau validation error"
// @Failure 500 {object} models.ErrorResponse "Gagal membuat karyawan"
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var payload models.EmployeeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.CreateEmployee(ctx, &payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal membuat karyawan: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Karyawan berhasil ditambahkan",
		"employee": employee,
	})
}

// UpdateEmployee godoc
// @Summary Update Employee
// @Description Memperbarui data karyawan berdasarkan ID
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body models.EmployeeUpdatePayload true "Data karyawan untuk diupdate"
// @Success 200 {object} models.UpdateEmployeeSuccessResponse "Karyawan berhasil diupdate"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body atau validation error"
// @Failure 404 {object} models.NotFoundErrorResponse "Karyawan tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal mengupdate karyawan"
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	idParam := c.Params("id")

	var payload models.EmployeeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.UpdateEmployee(ctx, idParam, &payload)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengupdate karyawan: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Karyawan berhasil diupdate",
		"employee": employee,
	})
}

// DeleteEmployee godoc
// @Summary Delete Employee
// @Description Menghapus karyawan berdasarkan ID, termasuk seluruh tanggungannya
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} models.DeleteEmployeeSuccessResponse "Karyawan berhasil dihapus"
// @Failure 404 {object} models.NotFoundErrorResponse "Karyawan tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal menghapus karyawan"
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	idParam := c.Params("id")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	err := h.employeeRepo.DeleteEmployee(ctx, idParam)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal menghapus karyawan: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Karyawan berhasil dihapus",
		"employee_id": idParam,
	})
}

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

type DependentHandler struct {
	employeeRepo repository.EmployeeRepository
}

func NewDependentHandler(employeeRepo repository.EmployeeRepository) *DependentHandler {
	return &DependentHandler{
		employeeRepo: employeeRepo,
	}
}

func notFoundMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, repository.ErrEmployeeNotFound):
		return "Karyawan tidak ditemukan", true
	case errors.Is(err, repository.ErrDependentNotFound):
		return "Tanggungan tidak ditemukan", true
	}
	return "", false
}

// CreateDependent godoc
// @Summary Create Dependent
// @Description Menambahkan tanggungan baru di bawah seorang karyawan
// @Tags Dependents
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param dependent body models.DependentCreatePayload true "Data tanggungan baru"
// @Success 201 {object} models.CreateDependentSuccessResponse "Tanggungan berhasil ditambahkan"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body atau validation error"
// @Failure 404 {object} models.NotFoundErrorResponse "Karyawan tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal membuat tanggungan"
// @Router /employees/{id}/dependents [post]
func (h *DependentHandler) CreateDependent(c *fiber.Ctx) error {
	employeeID := c.Params("id")

	var payload models.DependentCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dependent, err := h.employeeRepo.CreateDependent(ctx, employeeID, &payload)
	if err != nil {
		if msg, ok := notFoundMessage(err); ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal membuat tanggungan: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Tanggungan berhasil ditambahkan",
		"dependent": dependent,
	})
}

// UpdateDependent godoc
// @Summary Update Dependent
// @Description Memperbarui data tanggungan di bawah seorang karyawan
// @Tags Dependents
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param dependentId path string true "Dependent ID"
// @Param dependent body models.DependentUpdatePayload true "Data tanggungan untuk diupdate"
// @Success 200 {object} models.UpdateDependentSuccessResponse "Tanggungan berhasil diupdate"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body atau validation error"
// @Failure 404 {object} models.NotFoundErrorResponse "Karyawan atau tanggungan tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal mengupdate tanggungan"
// @Router /employees/{id}/dependents/{dependentId} [put]
func (h *DependentHandler) UpdateDependent(c *fiber.Ctx) error {
	employeeID := c.Params("id")
	dependentID := c.Params("dependentId")

	var payload models.DependentUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dependent, err := h.employeeRepo.UpdateDependent(ctx, employeeID, dependentID, &payload)
	if err != nil {
		if msg, ok := notFoundMessage(err); ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengupdate tanggungan: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Tanggungan berhasil diupdate",
		"dependent": dependent,
	})
}

// DeleteDependent godoc
// @Summary Delete Dependent
// @Description Menghapus tanggungan di bawah seorang karyawan
// @Tags Dependents
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param dependentId path string true "Dependent ID"
// @Success 200 {object} models.DeleteDependentSuccessResponse "Tanggungan berhasil dihapus"
// @Failure 404 {object} models.NotFoundErrorResponse "Karyawan atau tanggungan tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal menghapus tanggungan"
// @Router /employees/{id}/dependents/{dependentId} [delete]
func (h *DependentHandler) DeleteDependent(c *fiber.Ctx) error {
	employeeID := c.Params("id")
	dependentID := c.Params("dependentId")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	err := h.employeeRepo.DeleteDependent(ctx, employeeID, dependentID)
	if err != nil {
		if msg, ok := notFoundMessage(err); ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal menghapus tanggungan: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Tanggungan berhasil dihapus",
		"dependent_id": dependentID,
	})
}

package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"Kalkulator-Benefit-Karyawan/pkg/benefit"
	"Kalkulator-Benefit-Karyawan/repository"
)

type BenefitHandler struct {
	employeeRepo repository.EmployeeRepository
	calculator   *benefit.Calculator
}

func NewBenefitHandler(employeeRepo repository.EmployeeRepository, calculator *benefit.Calculator) *BenefitHandler {
	return &BenefitHandler{
		employeeRepo: employeeRepo,
		calculator:   calculator,
	}
}

// GetEmployeeBenefits godoc
// @Summary Get Employee Benefits
// @Description Mendapatkan rincian biaya benefit seorang karyawan, dihitung ulang dari data saat ini
// @Tags Benefits
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} models.BenefitsCalculation "Rincian benefit berhasil dihitung"
// @Failure 404 {object} models.NotFoundErrorResponse "Karyawan tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal menghitung benefit"
// @Router /employees/{id}/benefits [get]
func (h *BenefitHandler) GetEmployeeBenefits(c *fiber.Ctx) error {
	idParam := c.Params("id")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindEmployeeByID(ctx, idParam)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal menghitung benefit: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(h.calculator.ForEmployee(employee))
}

// GetAggregateBenefits godoc
// @Summary Get Aggregate Benefits
// @Description Mendapatkan total benefit seluruh karyawan, dijumlahkan per kolom
// @Tags Benefits
// @Accept json
// @Produce json
// @Success 200 {object} models.BenefitsCalculation "Agregat benefit berhasil dihitung"
// @Failure 500 {object} models.ErrorResponse "Gagal menghitung agregat benefit"
// @Router /benefits [get]
func (h *BenefitHandler) GetAggregateBenefits(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employees, err := h.employeeRepo.FindAllEmployees(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal menghitung agregat benefit: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(h.calculator.Aggregate(employees))
}

// GetBenefitsStats godoc
// @Summary Get Benefits Stats
// @Description Mendapatkan ringkasan jumlah karyawan, tanggungan, penerima diskon, dan agregat biaya
// @Tags Benefits
// @Accept json
// @Produce json
// @Success 200 {object} models.BenefitsStats "Statistik benefit berhasil diambil"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil statistik benefit"
// @Router /benefits/stats [get]
func (h *BenefitHandler) GetBenefitsStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employees, err := h.employeeRepo.FindAllEmployees(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil statistik benefit: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(h.calculator.Stats(employees))
}

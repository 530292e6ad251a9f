// Package benefit berisi perhitungan biaya benefit murni.
// Tidak ada side effect dan tidak ada mode kegagalan: karyawan tanpa
// tanggungan pun valid.
package benefit

import (
	"strings"

	"Kalkulator-Benefit-Karyawan/config"
	"Kalkulator-Benefit-Karyawan/models"
)

type Calculator struct {
	cfg config.BenefitConfig
}

func NewCalculator(cfg config.BenefitConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// qualifiesForDiscount memeriksa aturan diskon prefix nama, case-insensitive.
// Aturan berlaku per orang, bukan per perhitungan.
func (c *Calculator) qualifiesForDiscount(firstName string) bool {
	if c.cfg.DiscountPrefix == "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(firstName), strings.ToLower(c.cfg.DiscountPrefix))
}

func (c *Calculator) discountFor(firstName string, cost float64) float64 {
	if !c.qualifiesForDiscount(firstName) {
		return 0
	}
	return cost * c.cfg.DiscountPercent / 100
}

// ForEmployee menghitung rincian biaya benefit satu karyawan beserta
// seluruh tanggungannya. Tanpa pembulatan internal.
func (c *Calculator) ForEmployee(employee *models.Employee) models.BenefitsCalculation {
	employeeCost := c.cfg.EmployeeAnnualCost
	dependentCost := c.cfg.DependentAnnualCost * float64(len(employee.Dependents))

	discount := c.discountFor(employee.FirstName, employeeCost)
	for i := range employee.Dependents {
		discount += c.discountFor(employee.Dependents[i].FirstName, c.cfg.DependentAnnualCost)
	}

	totalCost := employeeCost + dependentCost - discount
	perPaycheck := totalCost / float64(c.cfg.PaychecksPerYear)

	return models.BenefitsCalculation{
		EmployeeCost:            employeeCost,
		DependentCost:           dependentCost,
		Discount:                discount,
		TotalCost:               totalCost,
		PerPaycheck:             perPaycheck,
		PerYear:                 totalCost,
		PaycheckBeforeDeduction: c.cfg.GrossPerPaycheck,
		PaycheckAfterDeduction:  c.cfg.GrossPerPaycheck - perPaycheck,
	}
}

// Aggregate menjumlahkan perhitungan semua karyawan per kolom.
func (c *Calculator) Aggregate(employees []models.Employee) models.BenefitsCalculation {
	var total models.BenefitsCalculation
	for i := range employees {
		calc := c.ForEmployee(&employees[i])
		total.EmployeeCost += calc.EmployeeCost
		total.DependentCost += calc.DependentCost
		total.Discount += calc.Discount
		total.TotalCost += calc.TotalCost
		total.PerPaycheck += calc.PerPaycheck
		total.PerYear += calc.PerYear
		total.PaycheckBeforeDeduction += calc.PaycheckBeforeDeduction
		total.PaycheckAfterDeduction += calc.PaycheckAfterDeduction
	}
	return total
}

// Stats merangkum jumlah karyawan, tanggungan, orang yang memenuhi aturan
// diskon, dan agregat biayanya.
func (c *Calculator) Stats(employees []models.Employee) models.BenefitsStats {
	stats := models.BenefitsStats{
		TotalKaryawan: len(employees),
		Agregat:       c.Aggregate(employees),
	}
	for i := range employees {
		stats.TotalTanggungan += len(employees[i].Dependents)
		if c.qualifiesForDiscount(employees[i].FirstName) {
			stats.TotalDiskonOrang++
		}
		for j := range employees[i].Dependents {
			if c.qualifiesForDiscount(employees[i].Dependents[j].FirstName) {
				stats.TotalDiskonOrang++
			}
		}
	}
	return stats
}

package benefit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Kalkulator-Benefit-Karyawan/config"
	"Kalkulator-Benefit-Karyawan/models"
)

func testConfig() config.BenefitConfig {
	return config.BenefitConfig{
		EmployeeAnnualCost:  1000,
		DependentAnnualCost: 500,
		DiscountPercent:     10,
		DiscountPrefix:      "A",
		PaychecksPerYear:    26,
		GrossPerPaycheck:    2000,
	}
}

func employeeWithDependents(firstName string, dependentFirstNames ...string) models.Employee {
	emp := models.Employee{
		ID:         "emp-1",
		FirstName:  firstName,
		LastName:   "Santoso",
		Dependents: []models.Dependent{},
	}
	for i, name := range dependentFirstNames {
		emp.Dependents = append(emp.Dependents, models.Dependent{
			ID:         "dep-" + string(rune('a'+i)),
			EmployeeID: emp.ID,
			FirstName:  name,
			LastName:   "Santoso",
		})
	}
	return emp
}

func TestForEmployee_ZeroDependents(t *testing.T) {
	calc := NewCalculator(testConfig())

	tests := []struct {
		name          string
		firstName     string
		wantDiscount  float64
		wantTotalCost float64
	}{
		{
			name:          "nama tidak memenuhi aturan diskon",
			firstName:     "Budi",
			wantDiscount:  0,
			wantTotalCost: 1000,
		},
		{
			name:          "nama memenuhi aturan diskon",
			firstName:     "Alice",
			wantDiscount:  100,
			wantTotalCost: 900,
		},
		{
			name:          "prefix case-insensitive",
			firstName:     "alice",
			wantDiscount:  100,
			wantTotalCost: 900,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := employeeWithDependents(tt.firstName)
			result := calc.ForEmployee(&emp)

			assert.Equal(t, 1000.0, result.EmployeeCost)
			assert.Equal(t, 0.0, result.DependentCost)
			assert.Equal(t, tt.wantDiscount, result.Discount)
			assert.Equal(t, tt.wantTotalCost, result.TotalCost)
			assert.Equal(t, tt.wantTotalCost, result.PerYear)
		})
	}
}

func TestForEmployee_DependentCostLinear(t *testing.T) {
	calc := NewCalculator(testConfig())

	tests := []struct {
		name       string
		dependents []string
		wantCost   float64
	}{
		{name: "satu tanggungan", dependents: []string{"Budi"}, wantCost: 500},
		{name: "dua tanggungan", dependents: []string{"Budi", "Citra"}, wantCost: 1000},
		{name: "empat tanggungan", dependents: []string{"Budi", "Citra", "Dewi", "Eko"}, wantCost: 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := employeeWithDependents("Budi", tt.dependents...)
			result := calc.ForEmployee(&emp)

			assert.Equal(t, tt.wantCost, result.DependentCost)
			assert.Equal(t, 0.0, result.Discount)
		})
	}
}

func TestForEmployee_DiscountAppliesPerPerson(t *testing.T) {
	calc := NewCalculator(testConfig())

	// Contoh acuan: Alice dengan satu tanggungan Adam, diskon 10%.
	emp := employeeWithDependents("Alice", "Adam")
	result := calc.ForEmployee(&emp)

	assert.Equal(t, 1000.0, result.EmployeeCost)
	assert.Equal(t, 500.0, result.DependentCost)
	assert.Equal(t, 150.0, result.Discount)
	assert.Equal(t, 1350.0, result.TotalCost)
	assert.InDelta(t, 51.92, result.PerPaycheck, 0.01)

	// Diskon hanya mengurangi porsi biaya orang yang memenuhi aturan.
	empOnlyDependent := employeeWithDependents("Budi", "Adam")
	resultOnlyDependent := calc.ForEmployee(&empOnlyDependent)
	assert.Equal(t, 50.0, resultOnlyDependent.Discount)
	assert.Equal(t, 1450.0, resultOnlyDependent.TotalCost)
}

func TestForEmployee_PaycheckFigures(t *testing.T) {
	calc := NewCalculator(testConfig())

	emp := employeeWithDependents("Alice", "Adam")
	result := calc.ForEmployee(&emp)

	assert.Equal(t, 2000.0, result.PaycheckBeforeDeduction)
	assert.InDelta(t, 2000.0-result.PerPaycheck, result.PaycheckAfterDeduction, 1e-9)
	assert.InDelta(t, result.PerYear, result.PerPaycheck*26, 1e-9)
}

func TestForEmployee_EmptyPrefixDisablesDiscount(t *testing.T) {
	cfg := testConfig()
	cfg.DiscountPrefix = ""
	calc := NewCalculator(cfg)

	emp := employeeWithDependents("Alice", "Adam")
	result := calc.ForEmployee(&emp)

	assert.Equal(t, 0.0, result.Discount)
	assert.Equal(t, 1500.0, result.TotalCost)
}

func TestAggregate_FieldwiseSum(t *testing.T) {
	calc := NewCalculator(testConfig())

	employees := []models.Employee{
		employeeWithDependents("Alice", "Adam"),
		employeeWithDependents("Budi", "Citra", "Dewi"),
		employeeWithDependents("Eko"),
	}

	var want models.BenefitsCalculation
	for i := range employees {
		one := calc.ForEmployee(&employees[i])
		want.EmployeeCost += one.EmployeeCost
		want.DependentCost += one.DependentCost
		want.Discount += one.Discount
		want.TotalCost += one.TotalCost
		want.PerPaycheck += one.PerPaycheck
		want.PerYear += one.PerYear
		want.PaycheckBeforeDeduction += one.PaycheckBeforeDeduction
		want.PaycheckAfterDeduction += one.PaycheckAfterDeduction
	}

	assert.Equal(t, want, calc.Aggregate(employees))
}

func TestAggregate_EmptyStore(t *testing.T) {
	calc := NewCalculator(testConfig())

	result := calc.Aggregate(nil)
	assert.Equal(t, models.BenefitsCalculation{}, result)
}

func TestStats(t *testing.T) {
	calc := NewCalculator(testConfig())

	employees := []models.Employee{
		employeeWithDependents("Alice", "Adam", "Budi"),
		employeeWithDependents("Citra", "ani"),
	}

	stats := calc.Stats(employees)

	assert.Equal(t, 2, stats.TotalKaryawan)
	assert.Equal(t, 3, stats.TotalTanggungan)
	// Alice, Adam, dan ani memenuhi aturan prefix.
	assert.Equal(t, 3, stats.TotalDiskonOrang)
	assert.Equal(t, calc.Aggregate(employees), stats.Agregat)
}

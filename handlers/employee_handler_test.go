package handlers_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Kalkulator-Benefit-Karyawan/config"
	"Kalkulator-Benefit-Karyawan/models"
	"Kalkulator-Benefit-Karyawan/pkg/benefit"
	"Kalkulator-Benefit-Karyawan/repository"
	"Kalkulator-Benefit-Karyawan/router"
)

func testBenefitConfig() config.BenefitConfig {
	return config.BenefitConfig{
		EmployeeAnnualCost:  1000,
		DependentAnnualCost: 500,
		DiscountPercent:     10,
		DiscountPrefix:      "A",
		PaychecksPerYear:    26,
		GrossPerPaycheck:    2000,
	}
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	employeeRepo := repository.NewEmployeeRepository(filepath.Join(t.TempDir(), "employees.json"))
	calculator := benefit.NewCalculator(testBenefitConfig())

	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	router.SetupRoutes(app, employeeRepo, calculator)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, payload interface{}) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func createEmployeeViaAPI(t *testing.T, app *fiber.App, firstName, lastName string) models.Employee {
	t.Helper()

	status, raw := doRequest(t, app, http.MethodPost, "/api/v1/employees", models.EmployeeCreatePayload{
		FirstName: firstName,
		LastName:  lastName,
	})
	require.Equal(t, fiber.StatusCreated, status)

	var envelope struct {
		Message  string          `json:"message"`
		Employee models.Employee `json:"employee"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	require.NotEmpty(t, envelope.Employee.ID)
	return envelope.Employee
}

func createDependentViaAPI(t *testing.T, app *fiber.App, employeeID, firstName, lastName string) models.Dependent {
	t.Helper()

	status, raw := doRequest(t, app, http.MethodPost, "/api/v1/employees/"+employeeID+"/dependents", models.DependentCreatePayload{
		FirstName: firstName,
		LastName:  lastName,
	})
	require.Equal(t, fiber.StatusCreated, status)

	var envelope struct {
		Message   string           `json:"message"`
		Dependent models.Dependent `json:"dependent"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	require.NotEmpty(t, envelope.Dependent.ID)
	return envelope.Dependent
}

func TestCreateEmployee(t *testing.T) {
	app := setupApp(t)

	employee := createEmployeeViaAPI(t, app, "Alice", "Wijaya")
	assert.Equal(t, "Alice", employee.FirstName)
	assert.NotNil(t, employee.Dependents)
	assert.Empty(t, employee.Dependents)
}

func TestCreateEmployee_ValidationError(t *testing.T) {
	app := setupApp(t)

	status, raw := doRequest(t, app, http.MethodPost, "/api/v1/employees", fiber.Map{
		"first_name": "Alice",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(raw), "errors")
	assert.Contains(t, string(raw), "LastName")
}

func TestGetEmployee_NotFound(t *testing.T) {
	app := setupApp(t)

	status, raw := doRequest(t, app, http.MethodGet, "/api/v1/employees/tidak-ada", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, string(raw), "Karyawan tidak ditemukan")
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	app := setupApp(t)

	status, _ := doRequest(t, app, http.MethodPut, "/api/v1/employees/tidak-ada", models.EmployeeUpdatePayload{
		FirstName: "Siapa",
		LastName:  "Saja",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestGetEmployeeBenefits(t *testing.T) {
	app := setupApp(t)

	employee := createEmployeeViaAPI(t, app, "Alice", "Wijaya")
	createDependentViaAPI(t, app, employee.ID, "Adam", "Wijaya")

	status, raw := doRequest(t, app, http.MethodGet, "/api/v1/employees/"+employee.ID+"/benefits", nil)
	require.Equal(t, fiber.StatusOK, status)

	var calc models.BenefitsCalculation
	require.NoError(t, json.Unmarshal(raw, &calc))

	assert.Equal(t, 1000.0, calc.EmployeeCost)
	assert.Equal(t, 500.0, calc.DependentCost)
	assert.Equal(t, 150.0, calc.Discount)
	assert.Equal(t, 1350.0, calc.TotalCost)
	assert.InDelta(t, 51.92, calc.PerPaycheck, 0.01)
	assert.Equal(t, 2000.0, calc.PaycheckBeforeDeduction)
}

func TestGetEmployeeBenefits_NotFound(t *testing.T) {
	app := setupApp(t)

	status, _ := doRequest(t, app, http.MethodGet, "/api/v1/employees/tidak-ada/benefits", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDeleteEmployee_CascadesDependents(t *testing.T) {
	app := setupApp(t)

	employee := createEmployeeViaAPI(t, app, "Alice", "Wijaya")
	dependent := createDependentViaAPI(t, app, employee.ID, "Adam", "Wijaya")

	status, _ := doRequest(t, app, http.MethodDelete, "/api/v1/employees/"+employee.ID, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = doRequest(t, app, http.MethodGet, "/api/v1/employees/"+employee.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, raw := doRequest(t, app, http.MethodDelete, "/api/v1/employees/"+employee.ID+"/dependents/"+dependent.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, string(raw), "Karyawan tidak ditemukan")
}

func TestUpdateDependent_NotFound(t *testing.T) {
	app := setupApp(t)

	employee := createEmployeeViaAPI(t, app, "Budi", "Santoso")

	status, raw := doRequest(t, app, http.MethodPut, "/api/v1/employees/"+employee.ID+"/dependents/tidak-ada", models.DependentUpdatePayload{
		FirstName: "Citra",
		LastName:  "Santoso",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, string(raw), "Tanggungan tidak ditemukan")
}

func TestGetAllEmployees(t *testing.T) {
	app := setupApp(t)

	createEmployeeViaAPI(t, app, "Alice", "Wijaya")
	createEmployeeViaAPI(t, app, "Budi", "Santoso")

	status, raw := doRequest(t, app, http.MethodGet, "/api/v1/employees", nil)
	require.Equal(t, fiber.StatusOK, status)

	var envelope struct {
		Message   string            `json:"message"`
		Employees []models.Employee `json:"employees"`
		Total     int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, 2, envelope.Total)
	assert.Len(t, envelope.Employees, 2)
}

func TestGetAggregateBenefits(t *testing.T) {
	app := setupApp(t)

	alice := createEmployeeViaAPI(t, app, "Alice", "Wijaya")
	createDependentViaAPI(t, app, alice.ID, "Adam", "Wijaya")
	createEmployeeViaAPI(t, app, "Budi", "Santoso")

	status, raw := doRequest(t, app, http.MethodGet, "/api/v1/benefits", nil)
	require.Equal(t, fiber.StatusOK, status)

	var calc models.BenefitsCalculation
	require.NoError(t, json.Unmarshal(raw, &calc))

	// Alice+Adam = 1350, Budi = 1000.
	assert.Equal(t, 2350.0, calc.TotalCost)
	assert.Equal(t, 2000.0, calc.EmployeeCost)
	assert.Equal(t, 500.0, calc.DependentCost)
	assert.Equal(t, 150.0, calc.Discount)
	assert.InDelta(t, calc.PerYear, calc.PerPaycheck*26, 1e-9)
}

func TestGetBenefitsStats(t *testing.T) {
	app := setupApp(t)

	alice := createEmployeeViaAPI(t, app, "Alice", "Wijaya")
	createDependentViaAPI(t, app, alice.ID, "Adam", "Wijaya")
	createDependentViaAPI(t, app, alice.ID, "Budi", "Wijaya")

	status, raw := doRequest(t, app, http.MethodGet, "/api/v1/benefits/stats", nil)
	require.Equal(t, fiber.StatusOK, status)

	var stats models.BenefitsStats
	require.NoError(t, json.Unmarshal(raw, &stats))

	assert.Equal(t, 1, stats.TotalKaryawan)
	assert.Equal(t, 2, stats.TotalTanggungan)
	assert.Equal(t, 2, stats.TotalDiskonOrang)
	assert.Equal(t, 1850.0, stats.Agregat.TotalCost)
}

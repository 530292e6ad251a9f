package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "Kalkulator-Benefit-Karyawan/docs"
	"Kalkulator-Benefit-Karyawan/handlers"
	"Kalkulator-Benefit-Karyawan/pkg/benefit"
	"Kalkulator-Benefit-Karyawan/repository"
)

// SetupRoutes mendaftarkan seluruh rute aplikasi. Repository dan calculator
// dibuat oleh pemanggil (main atau test fixture) dan dioper ke sini.
func SetupRoutes(app *fiber.App, employeeRepo repository.EmployeeRepository, calculator *benefit.Calculator) {
	log.Println("Memulai pendaftaran rute aplikasi...")

	// Inisialisasi Handlers
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo)
	dependentHandler := handlers.NewDependentHandler(employeeRepo)
	benefitHandler := handlers.NewBenefitHandler(employeeRepo, calculator)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Kalkulator Benefit Karyawan API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	// API v1 group
	api := app.Group("/api/v1")

	// Employee routes
	employeeGroup := api.Group("/employees")
	employeeGroup.Get("/", employeeHandler.GetAllEmployees)
	employeeGroup.Post("/", employeeHandler.CreateEmployee)
	employeeGroup.Get("/:id", employeeHandler.GetEmployeeByID)
	employeeGroup.Put("/:id", employeeHandler.UpdateEmployee)
	employeeGroup.Delete("/:id", employeeHandler.DeleteEmployee)

	// Dependent routes (selalu di bawah karyawan pemiliknya)
	employeeGroup.Post("/:id/dependents", dependentHandler.CreateDependent)
	employeeGroup.Put("/:id/dependents/:dependentId", dependentHandler.UpdateDependent)
	employeeGroup.Delete("/:id/dependents/:dependentId", dependentHandler.DeleteDependent)

	// Benefit routes
	employeeGroup.Get("/:id/benefits", benefitHandler.GetEmployeeBenefits)
	benefitGroup := api.Group("/benefits")
	benefitGroup.Get("/", benefitHandler.GetAggregateBenefits)
	benefitGroup.Get("/stats", benefitHandler.GetBenefitsStats)

	log.Println("Semua rute aplikasi berhasil didaftarkan.")
	log.Println("Routes yang tersedia:")
	log.Println("- GET /api/v1/employees")
	log.Println("- POST /api/v1/employees")
	log.Println("- GET /api/v1/employees/:id")
	log.Println("- PUT /api/v1/employees/:id")
	log.Println("- DELETE /api/v1/employees/:id")
	log.Println("- GET /api/v1/employees/:id/benefits")
	log.Println("- POST /api/v1/employees/:id/dependents")
	log.Println("- PUT /api/v1/employees/:id/dependents/:dependentId")
	log.Println("- DELETE /api/v1/employees/:id/dependents/:dependentId")
	log.Println("- GET /api/v1/benefits")
	log.Println("- GET /api/v1/benefits/stats")
	log.Println("Swagger documentation tersedia di: /docs/index.html")
}

package main

import (
	"log"
	"os"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"Kalkulator-Benefit-Karyawan/config"
	_ "Kalkulator-Benefit-Karyawan/docs" // Import docs untuk swagger
	"Kalkulator-Benefit-Karyawan/pkg/benefit"
	"Kalkulator-Benefit-Karyawan/repository"
	"Kalkulator-Benefit-Karyawan/router"
	"Kalkulator-Benefit-Karyawan/seeder"
)

// @title Kalkulator Benefit Karyawan API
// @version 1.0
// @description API untuk menghitung potongan gaji benefit karyawan beserta tanggungannya
//
// @contact.name API Support
// @contact.url https://github.com/your-repo
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Employees
// @tag.description Employee management endpoints
//
// @tag.name Dependents
// @tag.description Dependent management endpoints
//
// @tag.name Benefits
// @tag.description Benefits calculation endpoints
func main() {

	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file tidak ditemukan, menggunakan environment variables sistem")
	}

	cfg := config.LoadConfig()

	employeeRepo := repository.NewEmployeeRepository(cfg.StorePath)
	calculator := benefit.NewCalculator(cfg.Benefit)

	if os.Getenv("RUN_SEEDER") == "true" {
		seeder.SeedEmployees(employeeRepo)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	// Setup CORS menggunakan konfigurasi dari cors.go
	config.SetupCORS(app)

	app.Use(logger.New())

	// Setup routes (termasuk Swagger di dalamnya)
	router.SetupRoutes(app, employeeRepo, calculator)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("Health Check: http://localhost:%s/", cfg.Port)
	log.Printf("Store file: %s", cfg.StorePath)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}

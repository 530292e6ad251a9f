// file: seeder/employee_seeder.go

package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"Kalkulator-Benefit-Karyawan/models"
	"Kalkulator-Benefit-Karyawan/repository"
)

// SeedEmployees memasukkan data karyawan contoh ke store.
// Aman dipanggil berulang: karyawan dengan nama yang sama dilewati.
func SeedEmployees(employeeRepo repository.EmployeeRepository) {
	log.Println("🌱 Memulai seeding karyawan...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	type seedRow struct {
		employee   models.EmployeeCreatePayload
		dependents []models.DependentCreatePayload
	}

	employeesData := []seedRow{
		{
			employee: models.EmployeeCreatePayload{FirstName: "Alice", LastName: "Wijaya"},
			dependents: []models.DependentCreatePayload{
				{FirstName: "Adam", LastName: "Wijaya"},
			},
		},
		{
			employee: models.EmployeeCreatePayload{FirstName: "Budi", LastName: "Santoso"},
			dependents: []models.DependentCreatePayload{
				{FirstName: "Citra", LastName: "Santoso"},
				{FirstName: "Andi", LastName: "Santoso"},
			},
		},
		{
			employee:   models.EmployeeCreatePayload{FirstName: "Dewi", LastName: "Lestari"},
			dependents: nil,
		},
	}

	existing, err := employeeRepo.FindAllEmployees(ctx)
	if err != nil {
		log.Printf("Seeding dibatalkan, gagal membaca store: %v", err)
		return
	}
	existingNames := make(map[string]bool, len(existing))
	for _, emp := range existing {
		existingNames[emp.FirstName+" "+emp.LastName] = true
	}

	for _, row := range employeesData {
		fullName := row.employee.FirstName + " " + row.employee.LastName
		if existingNames[fullName] {
			fmt.Printf("Skipping: Karyawan '%s' sudah ada.\n", fullName)
			continue
		}

		created, err := employeeRepo.CreateEmployee(ctx, &row.employee)
		if err != nil {
			log.Printf("Gagal seeding karyawan '%s': %v", fullName, err)
			continue
		}

		for _, dep := range row.dependents {
			if _, err := employeeRepo.CreateDependent(ctx, created.ID, &dep); err != nil {
				log.Printf("Gagal seeding tanggungan '%s %s': %v", dep.FirstName, dep.LastName, err)
			}
		}
		fmt.Printf("Seeded: Karyawan '%s' dengan %d tanggungan.\n", fullName, len(row.dependents))
	}

	log.Println("Seeding karyawan selesai.")
}

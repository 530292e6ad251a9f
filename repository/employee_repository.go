package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"Kalkulator-Benefit-Karyawan/models"
)

var (
	ErrEmployeeNotFound  = errors.New("karyawan tidak ditemukan")
	ErrDependentNotFound = errors.New("tanggungan tidak ditemukan")
)

type EmployeeRepository interface {
	FindAllEmployees(ctx context.Context) ([]models.Employee, error)
	FindEmployeeByID(ctx context.Context, id string) (*models.Employee, error)
	CreateEmployee(ctx context.Context, payload *models.EmployeeCreatePayload) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id string, payload *models.EmployeeUpdatePayload) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
	CreateDependent(ctx context.Context, employeeID string, payload *models.DependentCreatePayload) (*models.Dependent, error)
	UpdateDependent(ctx context.Context, employeeID, dependentID string, payload *models.DependentUpdatePayload) (*models.Dependent, error)
	DeleteDependent(ctx context.Context, employeeID, dependentID string) error
}

// employeeRepository menyimpan seluruh koleksi karyawan dalam SATU file JSON.
// Setiap operasi adalah read-modify-write atas seluruh dokumen di bawah mutex,
// jadi mutasi dalam satu proses tidak saling menimpa. Akses lintas proses tetap
// last-writer-wins; itu keterbatasan yang diketahui, bukan jaminan.
type employeeRepository struct {
	path string
	mu   sync.Mutex
}

func NewEmployeeRepository(path string) EmployeeRepository {
	return &employeeRepository{path: path}
}

// load membaca seluruh dokumen. File yang belum ada atau rusak dibaca
// sebagai koleksi kosong.
func (r *employeeRepository) load() []models.Employee {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: gagal membaca store %s: %v", r.path, err)
		}
		return []models.Employee{}
	}

	var employees []models.Employee
	if err := json.Unmarshal(data, &employees); err != nil {
		log.Printf("Warning: store %s rusak, dibaca sebagai koleksi kosong: %v", r.path, err)
		return []models.Employee{}
	}

	for i := range employees {
		if employees[i].Dependents == nil {
			employees[i].Dependents = []models.Dependent{}
		}
	}
	return employees
}

func (r *employeeRepository) save(employees []models.Employee) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("gagal membuat direktori store: %w", err)
		}
	}

	data, err := json.MarshalIndent(employees, "", "  ")
	if err != nil {
		return fmt.Errorf("gagal men-serialize koleksi karyawan: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("gagal menulis store %s: %w", r.path, err)
	}
	return nil
}

func (r *employeeRepository) FindAllEmployees(ctx context.Context) ([]models.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

func (r *employeeRepository) FindEmployeeByID(ctx context.Context, id string) (*models.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	employees := r.load()
	for i := range employees {
		if employees[i].ID == id {
			return &employees[i], nil
		}
	}
	return nil, ErrEmployeeNotFound
}

func (r *employeeRepository) CreateEmployee(ctx context.Context, payload *models.EmployeeCreatePayload) (*models.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	employee := models.Employee{
		ID:         uuid.New().String(),
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Dependents: []models.Dependent{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	employees := append(r.load(), employee)
	if err := r.save(employees); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) UpdateEmployee(ctx context.Context, id string, payload *models.EmployeeUpdatePayload) (*models.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	employees := r.load()
	for i := range employees {
		if employees[i].ID != id {
			continue
		}
		employees[i].FirstName = payload.FirstName
		employees[i].LastName = payload.LastName
		employees[i].UpdatedAt = time.Now()

		if err := r.save(employees); err != nil {
			return nil, err
		}
		return &employees[i], nil
	}
	return nil, ErrEmployeeNotFound
}

// DeleteEmployee menghapus karyawan berikut seluruh tanggungannya, karena
// tanggungan hanya hidup di dalam record karyawan.
func (r *employeeRepository) DeleteEmployee(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	employees := r.load()
	for i := range employees {
		if employees[i].ID != id {
			continue
		}
		employees = append(employees[:i], employees[i+1:]...)
		return r.save(employees)
	}
	return ErrEmployeeNotFound
}

func (r *employeeRepository) CreateDependent(ctx context.Context, employeeID string, payload *models.DependentCreatePayload) (*models.Dependent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	employees := r.load()
	for i := range employees {
		if employees[i].ID != employeeID {
			continue
		}

		now := time.Now()
		dependent := models.Dependent{
			ID:         uuid.New().String(),
			EmployeeID: employeeID,
			FirstName:  payload.FirstName,
			LastName:   payload.LastName,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		employees[i].Dependents = append(employees[i].Dependents, dependent)
		employees[i].UpdatedAt = now

		if err := r.save(employees); err != nil {
			return nil, err
		}
		return &dependent, nil
	}
	return nil, ErrEmployeeNotFound
}

func (r *employeeRepository) UpdateDependent(ctx context.Context, employeeID, dependentID string, payload *models.DependentUpdatePayload) (*models.Dependent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	employees := r.load()
	for i := range employees {
		if employees[i].ID != employeeID {
			continue
		}
		for j := range employees[i].Dependents {
			if employees[i].Dependents[j].ID != dependentID {
				continue
			}
			employees[i].Dependents[j].FirstName = payload.FirstName
			employees[i].Dependents[j].LastName = payload.LastName
			employees[i].Dependents[j].UpdatedAt = time.Now()
			employees[i].UpdatedAt = employees[i].Dependents[j].UpdatedAt

			if err := r.save(employees); err != nil {
				return nil, err
			}
			return &employees[i].Dependents[j], nil
		}
		return nil, ErrDependentNotFound
	}
	return nil, ErrEmployeeNotFound
}

func (r *employeeRepository) DeleteDependent(ctx context.Context, employeeID, dependentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	employees := r.load()
	for i := range employees {
		if employees[i].ID != employeeID {
			continue
		}
		for j := range employees[i].Dependents {
			if employees[i].Dependents[j].ID != dependentID {
				continue
			}
			employees[i].Dependents = append(employees[i].Dependents[:j], employees[i].Dependents[j+1:]...)
			employees[i].UpdatedAt = time.Now()
			return r.save(employees)
		}
		return ErrDependentNotFound
	}
	return ErrEmployeeNotFound
}

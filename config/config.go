package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	StorePath string
	Benefit   BenefitConfig
}

// BenefitConfig berisi konstanta bisnis untuk perhitungan benefit.
// Semua biaya adalah biaya tahunan kecuali GrossPerPaycheck.
type BenefitConfig struct {
	EmployeeAnnualCost  float64
	DependentAnnualCost float64
	DiscountPercent     float64
	DiscountPrefix      string
	PaychecksPerYear    int
	GrossPerPaycheck    float64
}

// LoadConfig loads configuration from .env file
func LoadConfig() *AppConfig {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file (might not exist in production): %v", err)
	}

	return &AppConfig{
		Port:      getEnv("PORT", "3000"),
		StorePath: getEnv("STORE_PATH", "data/employees.json"),
		Benefit: BenefitConfig{
			EmployeeAnnualCost:  getEnvFloat("BENEFIT_EMPLOYEE_ANNUAL_COST", 1000),
			DependentAnnualCost: getEnvFloat("BENEFIT_DEPENDENT_ANNUAL_COST", 500),
			DiscountPercent:     getEnvFloat("BENEFIT_DISCOUNT_PERCENT", 10),
			DiscountPrefix:      getEnv("BENEFIT_DISCOUNT_PREFIX", "A"),
			PaychecksPerYear:    getEnvInt("BENEFIT_PAYCHECKS_PER_YEAR", 26),
			GrossPerPaycheck:    getEnvFloat("BENEFIT_GROSS_PER_PAYCHECK", 2000),
		},
	}
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 {
		log.Printf("Warning: nilai %s tidak valid (%q), memakai default %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		log.Printf("Warning: nilai %s tidak valid (%q), memakai default %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

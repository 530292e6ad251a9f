package models

// BenefitsCalculation adalah rincian biaya benefit hasil perhitungan.
// Nilai ini tidak pernah disimpan; selalu dihitung ulang dari snapshot karyawan.
// Semua angka dalam presisi floating-point penuh, pembulatan urusan presentasi.
type BenefitsCalculation struct {
	EmployeeCost            float64 `json:"employee_cost"`
	DependentCost           float64 `json:"dependent_cost"`
	Discount                float64 `json:"discount"`
	TotalCost               float64 `json:"total_cost"`
	PerPaycheck             float64 `json:"per_paycheck"`
	PerYear                 float64 `json:"per_year"`
	PaycheckBeforeDeduction float64 `json:"paycheck_before_deduction"`
	PaycheckAfterDeduction  float64 `json:"paycheck_after_deduction"`
}

// BenefitsStats adalah ringkasan untuk dashboard admin.
type BenefitsStats struct {
	TotalKaryawan    int                 `json:"total_karyawan"`
	TotalTanggungan  int                 `json:"total_tanggungan"`
	TotalDiskonOrang int                 `json:"total_diskon_orang"`
	Agregat          BenefitsCalculation `json:"agregat"`
}

package models

import "github.com/shopspring/decimal"

// DashboardStats holds the headline numbers for the admin dashboard.
type DashboardStats struct {
	TotalStudents      int             `json:"total_students"`
	TotalClasses       int             `json:"total_classes"`
	ActiveQuarters     int             `json:"active_quarters"`
	CollectedThisMonth decimal.Decimal `json:"collected_this_month"`
	CollectedTotal     decimal.Decimal `json:"collected_total"`
	PendingCheques     int             `json:"pending_cheques"`
	Defaulters         int             `json:"defaulters"`
}

// QuarterCollection is one row of the per-quarter collection report.
type QuarterCollection struct {
	QuarterID    string          `json:"quarter_id"`
	QuarterName  string          `json:"quarter_name"`
	AcademicYear string          `json:"academic_year"`
	Collected    decimal.Decimal `json:"collected"`
	Transactions int             `json:"transactions"`
}

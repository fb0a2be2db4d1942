package database

import (
	"database/sql"
	"time"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

// GetDashboardStats returns the headline numbers for the admin dashboard.
// Defaulter counts come from the balance engine, not from here, because
// they depend on derived balances.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE is_active = true AND deleted_at IS NULL`).
		Scan(&stats.TotalStudents)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM classes WHERE is_active = true AND deleted_at IS NULL`).
		Scan(&stats.TotalClasses)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM quarters WHERE is_active = true AND deleted_at IS NULL`).
		Scan(&stats.ActiveQuarters)
	if err != nil {
		return nil, err
	}

	monthStart := time.Now().AddDate(0, 0, 1-time.Now().Day()).Format("2006-01-02")
	err = db.QueryRow(`
		SELECT COALESCE(SUM(amount_paid), 0)
		FROM transactions
		WHERE status IN ('completed', 'refunded') AND payment_date >= $1
	`, monthStart).Scan(&stats.CollectedThisMonth)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`
		SELECT COALESCE(SUM(amount_paid), 0)
		FROM transactions
		WHERE status IN ('completed', 'refunded')
	`).Scan(&stats.CollectedTotal)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`
		SELECT COUNT(*) FROM transactions WHERE status = 'pending' AND mode = 'cheque'
	`).Scan(&stats.PendingCheques)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// GetQuarterCollections reports net collected amounts per quarter.
func GetQuarterCollections(db *sql.DB, academicYear string) ([]models.QuarterCollection, error) {
	query := `
		SELECT q.id, q.name, q.academic_year,
			   COALESCE(SUM(t.amount_paid), 0) AS collected,
			   COUNT(t.id) AS transactions
		FROM quarters q
		LEFT JOIN transactions t ON t.quarter_id = q.id AND t.status IN ('completed', 'refunded')
		WHERE q.deleted_at IS NULL`
	var args []interface{}
	if academicYear != "" {
		query += ` AND q.academic_year = $1`
		args = append(args, academicYear)
	}
	query += ` GROUP BY q.id, q.name, q.academic_year ORDER BY q.academic_year DESC, q.start_date ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.QuarterCollection
	for rows.Next() {
		var qc models.QuarterCollection
		if err := rows.Scan(&qc.QuarterID, &qc.QuarterName, &qc.AcademicYear, &qc.Collected, &qc.Transactions); err != nil {
			return nil, err
		}
		out = append(out, qc)
	}
	return out, rows.Err()
}

// GetActiveStudentIDs returns ids of all active students, used by the
// bulk-reminder job.
func GetActiveStudentIDs(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT id FROM students WHERE is_active = true AND deleted_at IS NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

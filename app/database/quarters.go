package database

import (
	"database/sql"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

const quarterColumns = `id, academic_year, name, start_date, end_date, due_date,
	late_fee_type, late_fee_amount, late_fee_percentage, late_fee_grace_days,
	late_fee_apply_daily, late_fee_max, is_active, created_at, updated_at`

func scanQuarter(scanner interface {
	Scan(dest ...interface{}) error
}) (*models.Quarter, error) {
	q := &models.Quarter{}
	var lateFeeType sql.NullString
	policy := models.LateFeePolicy{}

	err := scanner.Scan(
		&q.ID, &q.AcademicYear, &q.Name, &q.StartDate, &q.EndDate, &q.DueDate,
		&lateFeeType, &policy.Amount, &policy.Percentage, &policy.GraceDays,
		&policy.ApplyDaily, &policy.MaxLateFee, &q.IsActive, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lateFeeType.Valid && lateFeeType.String != "" {
		policy.Type = models.LateFeeType(lateFeeType.String)
		q.LateFee = &policy
	}
	return q, nil
}

// GetQuarters lists quarters, optionally filtered by academic year, most
// recent year first then by start date.
func GetQuarters(db *sql.DB, academicYear string, activeOnly bool) ([]models.Quarter, error) {
	query := `SELECT ` + quarterColumns + ` FROM quarters WHERE deleted_at IS NULL`
	var args []interface{}

	if activeOnly {
		query += ` AND is_active = true`
	}
	if academicYear != "" {
		query += ` AND academic_year = $1`
		args = append(args, academicYear)
	}
	query += ` ORDER BY academic_year DESC, start_date ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quarters []models.Quarter
	for rows.Next() {
		q, err := scanQuarter(rows)
		if err != nil {
			return nil, err
		}
		quarters = append(quarters, *q)
	}
	return quarters, rows.Err()
}

func GetQuarterByID(db *sql.DB, id string) (*models.Quarter, error) {
	query := `SELECT ` + quarterColumns + ` FROM quarters WHERE id = $1 AND deleted_at IS NULL`
	return scanQuarter(db.QueryRow(query, id))
}

func CreateQuarter(db *sql.DB, q *models.Quarter) error {
	var lateFeeType interface{}
	policy := models.LateFeePolicy{}
	if q.LateFee != nil {
		lateFeeType = string(q.LateFee.Type)
		policy = *q.LateFee
	}

	query := `INSERT INTO quarters (academic_year, name, start_date, end_date, due_date,
			  late_fee_type, late_fee_amount, late_fee_percentage, late_fee_grace_days,
			  late_fee_apply_daily, late_fee_max, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		q.AcademicYear, q.Name, q.StartDate, q.EndDate, q.DueDate,
		lateFeeType, policy.Amount, policy.Percentage, policy.GraceDays,
		policy.ApplyDaily, policy.MaxLateFee,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

func UpdateQuarter(db *sql.DB, q *models.Quarter) error {
	var lateFeeType interface{}
	policy := models.LateFeePolicy{}
	if q.LateFee != nil {
		lateFeeType = string(q.LateFee.Type)
		policy = *q.LateFee
	}

	query := `UPDATE quarters SET academic_year = $1, name = $2, start_date = $3, end_date = $4,
			  due_date = $5, late_fee_type = $6, late_fee_amount = $7, late_fee_percentage = $8,
			  late_fee_grace_days = $9, late_fee_apply_daily = $10, late_fee_max = $11,
			  is_active = $12, updated_at = NOW()
			  WHERE id = $13 AND deleted_at IS NULL`
	result, err := db.Exec(query,
		q.AcademicYear, q.Name, q.StartDate, q.EndDate, q.DueDate,
		lateFeeType, policy.Amount, policy.Percentage, policy.GraceDays,
		policy.ApplyDaily, policy.MaxLateFee, q.IsActive, q.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteQuarter(db *sql.DB, id string) error {
	query := `UPDATE quarters SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

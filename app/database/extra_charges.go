package database

import (
	"database/sql"
	"fmt"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

const extraChargeColumns = `id, quarter_id, student_id, class_id, title, amount,
	mandatory, created_at, updated_at`

func scanExtraCharge(scanner interface {
	Scan(dest ...interface{}) error
}) (*models.ExtraCharge, error) {
	ec := &models.ExtraCharge{}
	err := scanner.Scan(
		&ec.ID, &ec.QuarterID, &ec.StudentID, &ec.ClassID, &ec.Title, &ec.Amount,
		&ec.Mandatory, &ec.CreatedAt, &ec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ec, nil
}

// GetExtraCharges lists extra charges, optionally filtered by quarter,
// student, or class.
func GetExtraCharges(db *sql.DB, quarterID, studentID, classID string) ([]models.ExtraCharge, error) {
	query := `SELECT ` + extraChargeColumns + ` FROM extra_charges WHERE deleted_at IS NULL`
	var args []interface{}
	argIndex := 1

	if quarterID != "" {
		query += fmt.Sprintf(` AND quarter_id = $%d`, argIndex)
		args = append(args, quarterID)
		argIndex++
	}
	if studentID != "" {
		query += fmt.Sprintf(` AND student_id = $%d`, argIndex)
		args = append(args, studentID)
		argIndex++
	}
	if classID != "" {
		query += fmt.Sprintf(` AND class_id = $%d`, argIndex)
		args = append(args, classID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var charges []models.ExtraCharge
	for rows.Next() {
		ec, err := scanExtraCharge(rows)
		if err != nil {
			return nil, err
		}
		charges = append(charges, *ec)
	}
	return charges, rows.Err()
}

func GetExtraChargeByID(db *sql.DB, id string) (*models.ExtraCharge, error) {
	query := `SELECT ` + extraChargeColumns + ` FROM extra_charges WHERE id = $1 AND deleted_at IS NULL`
	return scanExtraCharge(db.QueryRow(query, id))
}

func CreateExtraCharge(db *sql.DB, ec *models.ExtraCharge) error {
	query := `INSERT INTO extra_charges (quarter_id, student_id, class_id, title, amount, mandatory, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		ec.QuarterID, ec.StudentID, ec.ClassID, ec.Title, ec.Amount, ec.Mandatory,
	).Scan(&ec.ID, &ec.CreatedAt, &ec.UpdatedAt)
}

func UpdateExtraCharge(db *sql.DB, ec *models.ExtraCharge) error {
	query := `UPDATE extra_charges SET title = $1, amount = $2, mandatory = $3, updated_at = NOW()
			  WHERE id = $4 AND deleted_at IS NULL`
	result, err := db.Exec(query, ec.Title, ec.Amount, ec.Mandatory, ec.ID)
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

func DeleteExtraCharge(db *sql.DB, id string) error {
	query := `UPDATE extra_charges SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
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

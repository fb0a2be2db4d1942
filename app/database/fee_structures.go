package database

import (
	"database/sql"
	"fmt"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

const feeStructureColumns = `id, class_id, quarter_id, tuition_fee, transport_fee,
	activity_fee, examination_fee, other_fee, total_fee, created_at, updated_at`

func scanFeeStructure(scanner interface {
	Scan(dest ...interface{}) error
}) (*models.FeeStructure, error) {
	fs := &models.FeeStructure{}
	err := scanner.Scan(
		&fs.ID, &fs.ClassID, &fs.QuarterID, &fs.TuitionFee, &fs.TransportFee,
		&fs.ActivityFee, &fs.ExaminationFee, &fs.OtherFee, &fs.TotalFee,
		&fs.CreatedAt, &fs.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return fs, nil
}

// GetFeeStructures lists fee structures, optionally filtered by class
// and/or quarter.
func GetFeeStructures(db *sql.DB, classID, quarterID string) ([]models.FeeStructure, error) {
	query := `SELECT ` + feeStructureColumns + ` FROM fee_structures WHERE deleted_at IS NULL`
	var args []interface{}
	argIndex := 1

	if classID != "" {
		query += fmt.Sprintf(` AND class_id = $%d`, argIndex)
		args = append(args, classID)
		argIndex++
	}
	if quarterID != "" {
		query += fmt.Sprintf(` AND quarter_id = $%d`, argIndex)
		args = append(args, quarterID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var structures []models.FeeStructure
	for rows.Next() {
		fs, err := scanFeeStructure(rows)
		if err != nil {
			return nil, err
		}
		structures = append(structures, *fs)
	}
	return structures, rows.Err()
}

func GetFeeStructureByID(db *sql.DB, id string) (*models.FeeStructure, error) {
	query := `SELECT ` + feeStructureColumns + ` FROM fee_structures WHERE id = $1 AND deleted_at IS NULL`
	return scanFeeStructure(db.QueryRow(query, id))
}

func CreateFeeStructure(db *sql.DB, fs *models.FeeStructure) error {
	query := `INSERT INTO fee_structures (class_id, quarter_id, tuition_fee, transport_fee,
			  activity_fee, examination_fee, other_fee, total_fee, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		fs.ClassID, fs.QuarterID, fs.TuitionFee, fs.TransportFee,
		fs.ActivityFee, fs.ExaminationFee, fs.OtherFee, fs.TotalFee,
	).Scan(&fs.ID, &fs.CreatedAt, &fs.UpdatedAt)
}

func UpdateFeeStructure(db *sql.DB, fs *models.FeeStructure) error {
	query := `UPDATE fee_structures SET tuition_fee = $1, transport_fee = $2, activity_fee = $3,
			  examination_fee = $4, other_fee = $5, total_fee = $6, updated_at = NOW()
			  WHERE id = $7 AND deleted_at IS NULL`
	result, err := db.Exec(query,
		fs.TuitionFee, fs.TransportFee, fs.ActivityFee,
		fs.ExaminationFee, fs.OtherFee, fs.TotalFee, fs.ID,
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

func DeleteFeeStructure(db *sql.DB, id string) error {
	query := `UPDATE fee_structures SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
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

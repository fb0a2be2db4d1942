package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Kalpit0710/fee-manage-sub000/app/feecalc"
	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

// Store adapts the raw query helpers to the feecalc.Store interface so
// the balance engine can run against Postgres.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) StudentByID(_ context.Context, id string) (*models.Student, error) {
	student, err := GetStudentByID(s.db, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, feecalc.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return student, nil
}

func (s *Store) ActiveQuarters(context.Context) ([]models.Quarter, error) {
	return GetQuarters(s.db, "", true)
}

func (s *Store) AllFeeStructures(context.Context) ([]models.FeeStructure, error) {
	return GetFeeStructures(s.db, "", "")
}

func (s *Store) AllExtraCharges(context.Context) ([]models.ExtraCharge, error) {
	return GetExtraCharges(s.db, "", "", "")
}

func (s *Store) TransactionsByStudent(_ context.Context, studentID string) ([]models.Transaction, error) {
	return GetTransactionsByStudent(s.db, studentID)
}

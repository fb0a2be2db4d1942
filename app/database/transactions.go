package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

// TransactionFilters represents filtering options for the transaction ledger
type TransactionFilters struct {
	StudentID string
	QuarterID string
	Status    string
	DateFrom  string
	DateTo    string
	Limit     int
	Offset    int
}

const transactionColumns = `id, student_id, quarter_id, amount_paid, mode, receipt_number,
	status, payment_date, cheque_number, cheque_date, cheque_bank, gateway_reference,
	refund_of, notes, collected_by, created_at, updated_at`

func scanTransaction(scanner interface {
	Scan(dest ...interface{}) error
}) (*models.Transaction, error) {
	t := &models.Transaction{}
	err := scanner.Scan(
		&t.ID, &t.StudentID, &t.QuarterID, &t.AmountPaid, &t.Mode, &t.ReceiptNumber,
		&t.Status, &t.PaymentDate, &t.ChequeNumber, &t.ChequeDate, &t.ChequeBank,
		&t.GatewayReference, &t.RefundOf, &t.Notes, &t.CollectedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// NewReceiptNumber generates a unique receipt number. The date prefix
// keeps receipts human-sortable; the uuid fragment keeps them unique.
func NewReceiptNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("RCPT-%s-%s", now.Format("20060102"), suffix)
}

// GetTransactions lists transactions matching the filters, most recent
// first.
func GetTransactions(db *sql.DB, filters TransactionFilters) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	var args []interface{}
	argIndex := 1

	if filters.StudentID != "" {
		query += fmt.Sprintf(` AND student_id = $%d`, argIndex)
		args = append(args, filters.StudentID)
		argIndex++
	}
	if filters.QuarterID != "" {
		query += fmt.Sprintf(` AND quarter_id = $%d`, argIndex)
		args = append(args, filters.QuarterID)
		argIndex++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(` AND status = $%d`, argIndex)
		args = append(args, filters.Status)
		argIndex++
	}
	if filters.DateFrom != "" {
		query += fmt.Sprintf(` AND payment_date >= $%d`, argIndex)
		args = append(args, filters.DateFrom)
		argIndex++
	}
	if filters.DateTo != "" {
		query += fmt.Sprintf(` AND payment_date <= $%d`, argIndex)
		args = append(args, filters.DateTo)
		argIndex++
	}

	query += ` ORDER BY payment_date DESC, created_at DESC`
	if filters.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, argIndex, argIndex+1)
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *t)
	}
	return txns, rows.Err()
}

// GetTransactionsByStudent returns the full ledger for one student across
// all quarters.
func GetTransactionsByStudent(db *sql.DB, studentID string) ([]models.Transaction, error) {
	return GetTransactions(db, TransactionFilters{StudentID: studentID})
}

func GetTransactionByID(db *sql.DB, id string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return scanTransaction(db.QueryRow(query, id))
}

func GetTransactionByReceipt(db *sql.DB, receiptNumber string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE receipt_number = $1`
	return scanTransaction(db.QueryRow(query, receiptNumber))
}

// CreateTransaction persists a payment record, assigning a receipt number
// and defaulting status to completed.
func CreateTransaction(db *sql.DB, t *models.Transaction) error {
	if t.ReceiptNumber == "" {
		t.ReceiptNumber = NewReceiptNumber(time.Now())
	}
	if t.Status == "" {
		t.Status = models.TxnCompleted
	}
	if t.PaymentDate.IsZero() {
		t.PaymentDate = time.Now()
	}

	query := `INSERT INTO transactions (student_id, quarter_id, amount_paid, mode, receipt_number,
			  status, payment_date, cheque_number, cheque_date, cheque_bank, gateway_reference,
			  refund_of, notes, collected_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		t.StudentID, t.QuarterID, t.AmountPaid, string(t.Mode), t.ReceiptNumber,
		string(t.Status), t.PaymentDate, t.ChequeNumber, t.ChequeDate, t.ChequeBank,
		t.GatewayReference, t.RefundOf, t.Notes, t.CollectedBy,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// CreateRefund appends a negative-amount refund transaction and flips the
// original to refunded in a single database transaction. The original's
// amount is never mutated; the ledger stays append-only.
func CreateRefund(db *sql.DB, originalID string, amount decimal.Decimal, notes *string, refundedBy *string) (*models.Transaction, error) {
	original, err := GetTransactionByID(db, originalID)
	if err != nil {
		return nil, err
	}
	if original.Status != models.TxnCompleted {
		return nil, fmt.Errorf("transaction %s is not refundable (status %s)", originalID, original.Status)
	}
	if amount.IsNegative() || amount.IsZero() {
		return nil, fmt.Errorf("refund amount must be positive")
	}
	if amount.GreaterThan(original.AmountPaid) {
		return nil, fmt.Errorf("refund amount %s exceeds original payment %s", amount, original.AmountPaid)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now()
	refund := &models.Transaction{
		StudentID:     original.StudentID,
		QuarterID:     original.QuarterID,
		AmountPaid:    amount.Neg(),
		Mode:          original.Mode,
		ReceiptNumber: NewReceiptNumber(now),
		Status:        models.TxnCompleted,
		PaymentDate:   now,
		RefundOf:      &original.ID,
		Notes:         notes,
		CollectedBy:   refundedBy,
	}

	query := `INSERT INTO transactions (student_id, quarter_id, amount_paid, mode, receipt_number,
			  status, payment_date, refund_of, notes, collected_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query,
		refund.StudentID, refund.QuarterID, refund.AmountPaid, string(refund.Mode),
		refund.ReceiptNumber, string(refund.Status), refund.PaymentDate,
		refund.RefundOf, refund.Notes, refund.CollectedBy,
	).Scan(&refund.ID, &refund.CreatedAt, &refund.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert refund: %v", err)
	}

	// Marker only: the amount stays so the negative refund nets it out.
	_, err = tx.Exec(`UPDATE transactions SET status = 'refunded', updated_at = NOW() WHERE id = $1`, original.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark original as refunded: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return refund, nil
}

// UpdateTransactionStatus transitions a pending transaction (e.g. an
// uncleared cheque or an in-flight gateway payment).
func UpdateTransactionStatus(db *sql.DB, id string, status models.TransactionStatus) error {
	query := `UPDATE transactions SET status = $1, updated_at = NOW() WHERE id = $2`
	result, err := db.Exec(query, string(status), id)
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

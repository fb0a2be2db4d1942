package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an immutable record of money movement for a
// (student, quarter) pair. A refund is a separate transaction with a
// negative amount pointing back at the original via RefundOf; the original
// record is flipped to status refunded as a marker but keeps its amount,
// so the ledger stays append-only and nets out arithmetically.
type Transaction struct {
	ID               string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID        string            `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	QuarterID        string            `json:"quarter_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	AmountPaid       decimal.Decimal   `json:"amount_paid" gorm:"type:numeric;not null"`
	Mode             PaymentMode       `json:"mode" gorm:"not null;type:varchar(20)" validate:"required,oneof=cash upi cheque online"`
	ReceiptNumber    string            `json:"receipt_number" gorm:"uniqueIndex;not null"`
	Status           TransactionStatus `json:"status" gorm:"not null;default:'completed';index;type:varchar(20)"`
	PaymentDate      time.Time         `json:"payment_date" gorm:"not null;index"`
	ChequeNumber     *string           `json:"cheque_number,omitempty" gorm:"type:varchar(50)"`
	ChequeDate       *CustomDate       `json:"cheque_date,omitempty" gorm:"type:date"`
	ChequeBank       *string           `json:"cheque_bank,omitempty"`
	GatewayReference *string           `json:"gateway_reference,omitempty" gorm:"index"`
	RefundOf         *string           `json:"refund_of,omitempty" gorm:"index;type:uuid"`
	Notes            *string           `json:"notes,omitempty" gorm:"type:text"`
	CollectedBy      *string           `json:"collected_by,omitempty" gorm:"index;type:uuid"`
	CreatedAt        time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time         `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Quarter *Quarter `json:"quarter,omitempty" gorm:"foreignKey:QuarterID;references:ID"`
}

// Kind reports whether the record is a payment or a refund reversal.
func (t *Transaction) Kind() TransactionKind {
	if t.RefundOf != nil && *t.RefundOf != "" {
		return KindRefund
	}
	if t.AmountPaid.IsNegative() {
		return KindRefund
	}
	return KindPayment
}

// CountsTowardPaid reports whether the transaction's amount contributes to
// the student's net paid total. Pending and failed transactions never
// count. A refunded status is only a marker on the original payment: its
// amount stays in the sum and the separate negative refund transaction
// nets it out.
func (t *Transaction) CountsTowardPaid() bool {
	return t.Status == TxnCompleted || t.Status == TxnRefunded
}

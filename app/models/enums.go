package models

// PaymentMode defines how a transaction was settled.
type PaymentMode string

const (
	ModeCash   PaymentMode = "cash"
	ModeUPI    PaymentMode = "upi"
	ModeCheque PaymentMode = "cheque"
	ModeOnline PaymentMode = "online"
)

// TransactionStatus defines the lifecycle status of a transaction.
// Pending and failed transactions never count toward a student's paid
// amount; refunded is a marker on the original payment whose amount is
// netted out by a separate negative refund transaction.
type TransactionStatus string

const (
	TxnCompleted TransactionStatus = "completed"
	TxnPending   TransactionStatus = "pending"
	TxnFailed    TransactionStatus = "failed"
	TxnRefunded  TransactionStatus = "refunded"
)

// LateFeeType defines how a quarter's late fee is computed.
type LateFeeType string

const (
	LateFeeFlat       LateFeeType = "flat"
	LateFeePercentage LateFeeType = "percentage"
)

// ChargeScopeKind identifies who an extra charge applies to.
type ChargeScopeKind string

const (
	ScopeIndividual ChargeScopeKind = "individual"
	ScopeClassWide  ChargeScopeKind = "class"
	ScopeSchoolWide ChargeScopeKind = "school"
)

// TransactionKind distinguishes payments from refund reversals.
type TransactionKind string

const (
	KindPayment TransactionKind = "payment"
	KindRefund  TransactionKind = "refund"
)

package feecalc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

func txn(quarterID string, amount int64, status models.TransactionStatus) models.Transaction {
	return models.Transaction{
		QuarterID:  quarterID,
		AmountPaid: decimal.NewFromInt(amount),
		Status:     status,
	}
}

func TestNetPaidStatusFiltering(t *testing.T) {
	txns := []models.Transaction{
		txn("q1", 2000, models.TxnCompleted),
		txn("q1", 1500, models.TxnPending),
		txn("q1", 800, models.TxnFailed),
		txn("q1", 500, models.TxnCompleted),
	}
	got := NetPaid(txns)
	assert.True(t, got.Equal(decimal.NewFromInt(2500)), "only completed count, got %s", got)
}

// A payment flipped to refunded keeps its amount in the sum; the separate
// negative refund transaction nets it out.
func TestNetPaidRefundNetsOut(t *testing.T) {
	orig := txn("q1", 5000, models.TxnRefunded)
	refund := txn("q1", -5000, models.TxnCompleted)
	refund.RefundOf = strPtr("orig-id")
	other := txn("q1", 1200, models.TxnCompleted)

	got := NetPaid([]models.Transaction{orig, refund, other})
	assert.True(t, got.Equal(decimal.NewFromInt(1200)), "got %s", got)

	// Order independence: same total with the refund recorded first.
	got = NetPaid([]models.Transaction{refund, other, orig})
	assert.True(t, got.Equal(decimal.NewFromInt(1200)), "got %s", got)
}

func TestNetPaidEmpty(t *testing.T) {
	assert.True(t, NetPaid(nil).IsZero())
}

func TestFilterQuarter(t *testing.T) {
	txns := []models.Transaction{
		txn("q1", 100, models.TxnCompleted),
		txn("q2", 200, models.TxnCompleted),
		txn("q1", 300, models.TxnCompleted),
	}
	got := FilterQuarter(txns, "q1")
	assert.Len(t, got, 2)
	assert.True(t, NetPaid(got).Equal(decimal.NewFromInt(400)))
	assert.Empty(t, FilterQuarter(txns, "q9"))
}

func TestTransactionKind(t *testing.T) {
	pay := txn("q1", 500, models.TxnCompleted)
	assert.Equal(t, models.KindPayment, pay.Kind())

	ref := txn("q1", -500, models.TxnCompleted)
	assert.Equal(t, models.KindRefund, ref.Kind())

	linked := txn("q1", -500, models.TxnCompleted)
	linked.RefundOf = strPtr("orig")
	assert.Equal(t, models.KindRefund, linked.Kind())
}

package payments

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

func TestPaymentRequestToModel(t *testing.T) {
	req := PaymentRequest{
		StudentID: "c0a80121-7ac0-4e1c-9b2d-1c1b1a1d1e1f",
		QuarterID: "c0a80121-7ac0-4e1c-9b2d-2c2b2a2d2e2f",
		Amount:    "2500.50",
		Mode:      models.ModeCash,
	}

	txn, err := req.toModel()
	require.NoError(t, err)
	assert.True(t, txn.AmountPaid.Equal(decimal.RequireFromString("2500.50")))
	assert.Equal(t, models.ModeCash, txn.Mode)
	assert.Empty(t, txn.Status)
}

func TestPaymentRequestRejectsBadAmounts(t *testing.T) {
	for _, amount := range []string{"", "abc", "0", "-100"} {
		req := PaymentRequest{
			StudentID: "c0a80121-7ac0-4e1c-9b2d-1c1b1a1d1e1f",
			QuarterID: "c0a80121-7ac0-4e1c-9b2d-2c2b2a2d2e2f",
			Amount:    amount,
			Mode:      models.ModeCash,
		}
		_, err := req.toModel()
		assert.Error(t, err, "amount %q should be rejected", amount)
	}
}

func TestChequePaymentRequiresChequeNumber(t *testing.T) {
	req := PaymentRequest{
		StudentID: "c0a80121-7ac0-4e1c-9b2d-1c1b1a1d1e1f",
		QuarterID: "c0a80121-7ac0-4e1c-9b2d-2c2b2a2d2e2f",
		Amount:    "1000",
		Mode:      models.ModeCheque,
	}
	_, err := req.toModel()
	assert.Error(t, err)

	number := "123456"
	req.ChequeNumber = &number
	txn, err := req.toModel()
	require.NoError(t, err)
	assert.Equal(t, models.TxnPending, txn.Status)
}

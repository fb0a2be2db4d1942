package feecalc

import (
	"github.com/shopspring/decimal"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

// NetPaid folds a (student, quarter) transaction set into the net amount
// paid. It is a plain sum, not a sequential balance walk, so the result
// never depends on insertion order: a payment and its negative refund
// cancel wherever they sit in the set. Pending and failed transactions are
// skipped; a refunded status is only a marker on the original payment and
// its amount stays in (the separate refund transaction nets it out).
func NetPaid(txns []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for i := range txns {
		if !txns[i].CountsTowardPaid() {
			continue
		}
		total = total.Add(txns[i].AmountPaid)
	}
	return total
}

// FilterQuarter returns the subset of transactions for one quarter.
func FilterQuarter(txns []models.Transaction, quarterID string) []models.Transaction {
	var out []models.Transaction
	for i := range txns {
		if txns[i].QuarterID == quarterID {
			out = append(out, txns[i])
		}
	}
	return out
}

package payments

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Kalpit0710/fee-manage-sub000/app/database"
	"github.com/Kalpit0710/fee-manage-sub000/app/feecalc"
	"github.com/Kalpit0710/fee-manage-sub000/app/models"
	"github.com/Kalpit0710/fee-manage-sub000/app/money"
)

var validate = validator.New()

// PaymentRequest is the payload for collecting a fee payment.
type PaymentRequest struct {
	StudentID        string             `json:"student_id" validate:"required,uuid"`
	QuarterID        string             `json:"quarter_id" validate:"required,uuid"`
	Amount           string             `json:"amount" validate:"required"`
	Mode             models.PaymentMode `json:"mode" validate:"required,oneof=cash upi cheque online"`
	ChequeNumber     *string            `json:"cheque_number,omitempty"`
	ChequeDate       *models.CustomDate `json:"cheque_date,omitempty"`
	ChequeBank       *string            `json:"cheque_bank,omitempty"`
	GatewayReference *string            `json:"gateway_reference,omitempty"`
	Notes            *string            `json:"notes,omitempty"`
}

// RefundRequest is the payload for refunding a completed payment.
type RefundRequest struct {
	Amount string  `json:"amount" validate:"required"`
	Notes  *string `json:"notes,omitempty"`
}

func (req *PaymentRequest) toModel() (*models.Transaction, error) {
	amount, err := money.FromString(req.Amount)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid payment amount")
	}
	if !amount.IsPositive() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Payment amount must be positive")
	}

	if req.Mode == models.ModeCheque && (req.ChequeNumber == nil || *req.ChequeNumber == "") {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Cheque number is required for cheque payments")
	}

	t := &models.Transaction{
		StudentID:        req.StudentID,
		QuarterID:        req.QuarterID,
		AmountPaid:       amount,
		Mode:             req.Mode,
		ChequeNumber:     req.ChequeNumber,
		ChequeDate:       req.ChequeDate,
		ChequeBank:       req.ChequeBank,
		GatewayReference: req.GatewayReference,
		Notes:            req.Notes,
	}
	// Cheque and gateway payments start pending until cleared/confirmed.
	if req.Mode == models.ModeCheque {
		t.Status = models.TxnPending
	}
	return t, nil
}

// GetTransactionsAPI lists the payment ledger with filters and pagination
func GetTransactionsAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.TransactionFilters{
		StudentID: c.Query("student_id"),
		QuarterID: c.Query("quarter_id"),
		Status:    c.Query("status"),
		DateFrom:  c.Query("date_from"),
		DateTo:    c.Query("date_to"),
		Limit:     c.QueryInt("limit", 50),
		Offset:    c.QueryInt("offset", 0),
	}

	transactions, err := database.GetTransactions(db, filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch transactions")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    transactions,
	})
}

// GetTransactionAPI returns a single transaction by id
func GetTransactionAPI(c *fiber.Ctx, db *sql.DB) error {
	transaction, err := database.GetTransactionByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch transaction")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    transaction,
	})
}

// GetReceiptAPI looks up a transaction by its receipt number
func GetReceiptAPI(c *fiber.Ctx, db *sql.DB) error {
	transaction, err := database.GetTransactionByReceipt(db, c.Params("receipt"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Receipt not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch receipt")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    transaction,
	})
}

// CollectPaymentAPI records a fee payment against a student and quarter
func CollectPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid fields: "+err.Error())
	}

	transaction, err := req.toModel()
	if err != nil {
		return err
	}

	if _, dbErr := database.GetStudentByID(db, req.StudentID); dbErr != nil {
		if dbErr == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify student")
	}

	if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
		transaction.CollectedBy = &userID
	}

	if err := database.CreateTransaction(db, transaction); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    transaction,
		"message": "Payment recorded, receipt " + transaction.ReceiptNumber,
	})
}

// RefundPaymentAPI refunds a completed payment. The refund is a separate
// negative transaction so the ledger stays append-only.
func RefundPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req RefundRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid fields: "+err.Error())
	}

	amount, err := money.FromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid refund amount")
	}

	var refundedBy *string
	if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
		refundedBy = &userID
	}

	refund, err := database.CreateRefund(db, c.Params("id"), amount, req.Notes, refundedBy)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
		}
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    refund,
		"message": "Refund recorded, receipt " + refund.ReceiptNumber,
	})
}

// UpdateTransactionStatusAPI transitions a pending transaction, e.g. when
// a cheque clears or bounces
func UpdateTransactionStatusAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Status models.TransactionStatus `json:"status" validate:"required,oneof=completed failed"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Status must be completed or failed")
	}

	transaction, err := database.GetTransactionByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch transaction")
	}
	if transaction.Status != models.TxnPending {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Only pending transactions can be transitioned")
	}

	if err := database.UpdateTransactionStatus(db, transaction.ID, req.Status); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update transaction")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Transaction status updated",
	})
}

// GetStudentFeesAPI returns the derived fee breakdown for a student,
// recomputed from the ledger on every call. Cashiers use it to prefill
// the amount when collecting a payment.
func GetStudentFeesAPI(c *fiber.Ctx, engine *feecalc.Engine) error {
	details, err := engine.ComputeStudentFeeDetails(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, feecalc.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute fee details")
	}

	suggested := decimal.Zero
	for _, qb := range details.Quarters {
		if feecalc.IsDefaulter(qb) {
			suggested = qb.Balance
			break
		}
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"data":             details,
		"suggested_amount": suggested,
	})
}

package portal

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kalpit0710/fee-manage-sub000/app/feecalc"
	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

type fakeStore struct {
	student    *models.Student
	quarters   []models.Quarter
	structures []models.FeeStructure
	txns       []models.Transaction
}

func (f *fakeStore) StudentByID(_ context.Context, id string) (*models.Student, error) {
	if f.student == nil || f.student.ID != id {
		return nil, feecalc.ErrStudentNotFound
	}
	return f.student, nil
}

func (f *fakeStore) ActiveQuarters(context.Context) ([]models.Quarter, error) {
	return f.quarters, nil
}

func (f *fakeStore) AllFeeStructures(context.Context) ([]models.FeeStructure, error) {
	return f.structures, nil
}

func (f *fakeStore) AllExtraCharges(context.Context) ([]models.ExtraCharge, error) {
	return nil, nil
}

func (f *fakeStore) TransactionsByStudent(context.Context, string) ([]models.Transaction, error) {
	return f.txns, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testApp(store *fakeStore, asOf time.Time) *fiber.App {
	engine := feecalc.NewEngine(store, nil)
	engine.Now = func() time.Time { return asOf }

	handler := &Handler{
		Lookup: func(_ context.Context, admissionNumber string) (*models.Student, error) {
			if store.student != nil && store.student.AdmissionNumber == admissionNumber {
				return store.student, nil
			}
			return nil, sql.ErrNoRows
		},
		Engine: engine,
	}

	app := fiber.New()
	app.Get("/api/portal/balance/:admission", handler.GetBalanceAPI)
	return app
}

func portalStore() *fakeStore {
	return &fakeStore{
		student: &models.Student{
			ID:              "stu-1",
			AdmissionNumber: "ADM-2001",
			FirstName:       "Ravi",
			LastName:        "Kumar",
			ClassID:         "class-5",
			IsActive:        true,
		},
		quarters: []models.Quarter{
			{
				ID:           "q1",
				AcademicYear: "2024-25",
				Name:         "Q1",
				StartDate:    models.CustomDate{Time: date(2024, 4, 1)},
				EndDate:      models.CustomDate{Time: date(2024, 6, 30)},
				DueDate:      models.CustomDate{Time: date(2024, 7, 10)},
				LateFee: &models.LateFeePolicy{
					Type:   models.LateFeeFlat,
					Amount: decimal.NewFromInt(100),
				},
				IsActive: true,
			},
		},
		structures: []models.FeeStructure{
			{
				ID:         "fs-1",
				ClassID:    "class-5",
				QuarterID:  "q1",
				TuitionFee: decimal.NewFromInt(4000),
				TotalFee:   decimal.NewFromInt(4000),
				CreatedAt:  date(2024, 3, 1),
			},
		},
	}
}

type portalResponse struct {
	Success bool `json:"success"`
	Data    struct {
		StudentName     string `json:"student_name"`
		AdmissionNumber string `json:"admission_number"`
		Quarters        []struct {
			QuarterName string `json:"quarter_name"`
			TotalDue    string `json:"total_due"`
			Balance     string `json:"balance"`
			IsOverdue   bool   `json:"is_overdue"`
			IsDefaulter bool   `json:"is_defaulter"`
		} `json:"quarters"`
		TotalBalance   string `json:"total_balance"`
		HasOutstanding bool   `json:"has_outstanding"`
	} `json:"data"`
}

func TestPortalBalanceOverdueUnpaid(t *testing.T) {
	app := testApp(portalStore(), date(2024, 7, 15))

	req := httptest.NewRequest("GET", "/api/portal/balance/ADM-2001", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body portalResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.Success)
	assert.Equal(t, "Ravi Kumar", body.Data.StudentName)
	assert.Equal(t, "ADM-2001", body.Data.AdmissionNumber)
	require.Len(t, body.Data.Quarters, 1)
	assert.Equal(t, "Q1", body.Data.Quarters[0].QuarterName)
	assert.Equal(t, "4100.00", body.Data.Quarters[0].TotalDue)
	assert.Equal(t, "4100.00", body.Data.Quarters[0].Balance)
	assert.True(t, body.Data.Quarters[0].IsOverdue)
	assert.True(t, body.Data.Quarters[0].IsDefaulter)
	assert.Equal(t, "4100.00", body.Data.TotalBalance)
	assert.True(t, body.Data.HasOutstanding)
}

func TestPortalBalanceSettled(t *testing.T) {
	store := portalStore()
	store.txns = []models.Transaction{
		{
			ID:          "t1",
			StudentID:   "stu-1",
			QuarterID:   "q1",
			AmountPaid:  decimal.NewFromInt(4000),
			Status:      models.TxnCompleted,
			PaymentDate: date(2024, 7, 5),
		},
	}
	app := testApp(store, date(2024, 7, 15))

	req := httptest.NewRequest("GET", "/api/portal/balance/ADM-2001", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body portalResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Data.Quarters, 1)
	assert.Equal(t, "0.00", body.Data.Quarters[0].Balance)
	assert.False(t, body.Data.Quarters[0].IsDefaulter)
	assert.False(t, body.Data.HasOutstanding)
}

func TestPortalBalanceUnknownAdmission(t *testing.T) {
	app := testApp(portalStore(), date(2024, 7, 15))

	req := httptest.NewRequest("GET", "/api/portal/balance/ADM-9999", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPortalBalanceInactiveStudentHidden(t *testing.T) {
	store := portalStore()
	store.student.IsActive = false
	app := testApp(store, date(2024, 7, 15))

	req := httptest.NewRequest("GET", "/api/portal/balance/ADM-2001", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

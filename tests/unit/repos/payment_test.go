package repos

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/repository/postgres"
)

func TestPaymentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		payment := &domain.Payment{
			BookingID:       7,
			AmountPaidCents: 1_100_000,
			PaymentMethod:   domain.PaymentMethodUnknown,
			Status:          domain.PaymentStatusPending,
			RazorpayOrderID: "order_abc",
		}

		mock.ExpectQuery("INSERT INTO payments").
			WithArgs(payment.BookingID, payment.AmountPaidCents, payment.PaymentMethod,
				sqlmock.AnyArg(), payment.Status, payment.RazorpayOrderID,
				"", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		err := repo.Create(ctx, payment)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), payment.ID)
		assert.False(t, payment.PaymentDate.IsZero())
	})
}

func TestPaymentRepository_GetByOrderID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "booking_id", "amount_paid_cents", "payment_method", "payment_date", "payment_status", "razorpay_order_id", "razorpay_payment_id", "razorpay_signature", "created_on", "updated_on"}).
			AddRow(42, 7, 1_100_000, "Not Known", now, "PENDING", "order_abc", "", "", now, now)

		mock.ExpectQuery("SELECT (.+) FROM payments WHERE razorpay_order_id = \\$1").
			WithArgs("order_abc").
			WillReturnRows(rows)

		payment, err := repo.GetByOrderID(ctx, "order_abc")
		assert.NoError(t, err)
		assert.Equal(t, int64(42), payment.ID)
		assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM payments WHERE razorpay_order_id = \\$1").
			WithArgs("order_missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		payment, err := repo.GetByOrderID(ctx, "order_missing")
		assert.Error(t, err)
		assert.Nil(t, payment)
	})
}

func TestPaymentRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	payment := &domain.Payment{
		ID:                42,
		PaymentMethod:     "UPI",
		Status:            domain.PaymentStatusCompleted,
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: "sig",
	}

	mock.ExpectExec("UPDATE payments SET").
		WithArgs(payment.PaymentMethod, payment.Status, payment.RazorpayPaymentID,
			payment.RazorpaySignature, sqlmock.AnyArg(), payment.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(ctx, payment)
	assert.NoError(t, err)
}

func TestPaymentRepository_MarkStalePendingFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE payments SET payment_status").
		WithArgs(domain.PaymentStatusFailed, domain.PaymentStatusPending, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.MarkStalePendingFailed(ctx, 24)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

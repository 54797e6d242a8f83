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

func TestUndertakingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUndertakingRepository(db)
	ctx := context.Background()

	t.Run("Booking Scoped Copy", func(t *testing.T) {
		bookingID := int64(7)
		u := &domain.Undertaking{
			BookingID:          &bookingID,
			IsAccepted:         true,
			DepositAmountCents: 500_000,
			DamageClauseText:   "Renter covers rotor damage",
		}

		mock.ExpectQuery("INSERT INTO undertakings").
			WithArgs(u.BookingID, u.IsAccepted, u.DepositAmountCents, u.DamageClauseText, u.IsTemplate, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))

		err := repo.Create(ctx, u)
		assert.NoError(t, err)
		assert.Equal(t, int64(100), u.ID)
	})
}

func TestUndertakingRepository_ListDistinctTemplates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUndertakingRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "booking_id", "is_accepted", "deposit_amount_cents", "damage_clause_text", "is_template", "created_on", "updated_on"}).
		AddRow(10, nil, false, 0, "Renter covers rotor damage", true, now, now).
		AddRow(11, nil, false, 0, "Renter covers water damage", true, now, now)

	mock.ExpectQuery("SELECT (.+) FROM undertakings u").
		WillReturnRows(rows)

	templates, err := repo.ListDistinctTemplates(ctx)
	assert.NoError(t, err)
	assert.Len(t, templates, 2)
	assert.Nil(t, templates[0].BookingID)
	assert.True(t, templates[0].IsTemplate)
	assert.Equal(t, "Renter covers rotor damage", templates[0].DamageClauseText)
}

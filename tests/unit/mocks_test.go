package unit

import (
	"context"

	"github.com/stretchr/testify/mock"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/gateway"
	"skyfleet-backend/internal/repository"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDroneRepo
type MockDroneRepo struct {
	mock.Mock
}

func (m *MockDroneRepo) Create(ctx context.Context, drone *domain.Drone) error {
	args := m.Called(ctx, drone)
	return args.Error(0)
}
func (m *MockDroneRepo) GetByID(ctx context.Context, id int64) (*domain.Drone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drone), args.Error(1)
}
func (m *MockDroneRepo) ExistsByModel(ctx context.Context, model string) (bool, error) {
	args := m.Called(ctx, model)
	return args.Bool(0), args.Error(1)
}
func (m *MockDroneRepo) Update(ctx context.Context, drone *domain.Drone) error {
	args := m.Called(ctx, drone)
	return args.Error(0)
}
func (m *MockDroneRepo) List(ctx context.Context) ([]domain.Drone, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Drone), args.Error(1)
}
func (m *MockDroneRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListOverdueReturns(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) Update(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) List(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) MarkStalePendingFailed(ctx context.Context, olderThanHours int) (int64, error) {
	args := m.Called(ctx, olderThanHours)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPaymentRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPaymentRepo) DeleteByBooking(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

// MockPenaltyRepo
type MockPenaltyRepo struct {
	mock.Mock
}

func (m *MockPenaltyRepo) Create(ctx context.Context, penalty *domain.Penalty) error {
	args := m.Called(ctx, penalty)
	return args.Error(0)
}
func (m *MockPenaltyRepo) GetByID(ctx context.Context, id int64) (*domain.Penalty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Penalty), args.Error(1)
}
func (m *MockPenaltyRepo) Update(ctx context.Context, penalty *domain.Penalty) error {
	args := m.Called(ctx, penalty)
	return args.Error(0)
}
func (m *MockPenaltyRepo) List(ctx context.Context) ([]domain.Penalty, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Penalty), args.Error(1)
}
func (m *MockPenaltyRepo) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Penalty, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.Penalty), args.Error(1)
}
func (m *MockPenaltyRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPenaltyRepo) DeleteByBooking(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

// MockUndertakingRepo
type MockUndertakingRepo struct {
	mock.Mock
}

func (m *MockUndertakingRepo) Create(ctx context.Context, u *domain.Undertaking) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUndertakingRepo) GetByID(ctx context.Context, id int64) (*domain.Undertaking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Undertaking), args.Error(1)
}
func (m *MockUndertakingRepo) ListDistinctTemplates(ctx context.Context) ([]domain.Undertaking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Undertaking), args.Error(1)
}
func (m *MockUndertakingRepo) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Undertaking, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.Undertaking), args.Error(1)
}
func (m *MockUndertakingRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUndertakingRepo) DeleteByBooking(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

// MockRatingRepo
type MockRatingRepo struct {
	mock.Mock
}

func (m *MockRatingRepo) Create(ctx context.Context, rating *domain.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}
func (m *MockRatingRepo) GetByID(ctx context.Context, id int64) (*domain.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}
func (m *MockRatingRepo) List(ctx context.Context) ([]domain.Rating, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rating), args.Error(1)
}
func (m *MockRatingRepo) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Rating, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.Rating), args.Error(1)
}
func (m *MockRatingRepo) ListByDrone(ctx context.Context, droneID int64) ([]domain.Rating, error) {
	args := m.Called(ctx, droneID)
	return args.Get(0).([]domain.Rating), args.Error(1)
}
func (m *MockRatingRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRatingRepo) DeleteByBooking(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, user *domain.User, booking *domain.Booking) error {
	args := m.Called(ctx, user, booking)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReceipt(ctx context.Context, user *domain.User, payment *domain.Payment) error {
	args := m.Called(ctx, user, payment)
	return args.Error(0)
}
func (m *MockEmailService) SendPenaltyNotice(ctx context.Context, user *domain.User, penalty *domain.Penalty) error {
	args := m.Called(ctx, user, penalty)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReminder(ctx context.Context, user *domain.User, booking *domain.Booking) error {
	args := m.Called(ctx, user, booking)
	return args.Error(0)
}

// MockGateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*gateway.Order, error) {
	args := m.Called(ctx, amountMinorUnits, currency, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Order), args.Error(1)
}

// fakeUnitOfWork runs the callback against mock-backed repositories without
// a real database transaction.
type fakeUnitOfWork struct {
	tx *repository.Tx
}

func (f *fakeUnitOfWork) WithTx(ctx context.Context, fn func(tx *repository.Tx) error) error {
	return fn(f.tx)
}

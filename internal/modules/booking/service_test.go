package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"salonbooking/internal/domain"
	"salonbooking/internal/repository"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 1
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetDetails(ctx context.Context, id int64) (*repository.BookingDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BookingDetails), args.Error(1)
}

func (m *MockBookingRepository) CountConfirmedAt(ctx context.Context, stylistID int64, at time.Time, excludeID int64) (int64, error) {
	args := m.Called(ctx, stylistID, at, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) UpdateAppointmentTime(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) ListDetailed(ctx context.Context, f repository.BookingFilter, now time.Time, past bool) ([]repository.BookingDetails, error) {
	args := m.Called(ctx, f, now, past)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingDetails), args.Error(1)
}

type MockCatalogGate struct {
	mock.Mock
}

func (m *MockCatalogGate) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

type MockStylistGate struct {
	mock.Mock
}

func (m *MockStylistGate) GetByID(ctx context.Context, id int64) (*domain.Stylist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stylist), args.Error(1)
}

func (m *MockStylistGate) OffersService(ctx context.Context, stylistID, serviceID int64) (bool, error) {
	args := m.Called(ctx, stylistID, serviceID)
	return args.Bool(0), args.Error(1)
}

type MockUserGate struct {
	mock.Mock
}

func (m *MockUserGate) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestService() (*Service, *MockBookingRepository, *MockCatalogGate, *MockStylistGate, *MockUserGate) {
	bookings := new(MockBookingRepository)
	catalog := new(MockCatalogGate)
	stylists := new(MockStylistGate)
	users := new(MockUserGate)
	return NewService(bookings, catalog, stylists, users), bookings, catalog, stylists, users
}

func futureTime() time.Time {
	return time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
}

func TestCreate_Success(t *testing.T) {
	svc, bookings, catalog, stylists, _ := newTestService()
	at := futureTime()

	catalog.On("GetByID", mock.Anything, int64(3)).Return(&domain.Service{ServiceID: 3, Name: "Haircut"}, nil)
	stylists.On("GetByID", mock.Anything, int64(2)).Return(&domain.Stylist{ID: 2}, nil)
	stylists.On("OffersService", mock.Anything, int64(2), int64(3)).Return(true, nil)
	bookings.On("CountConfirmedAt", mock.Anything, int64(2), at, int64(0)).Return(int64(0), nil)
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.UserID == 7 && b.StylistID == 2 && b.ServiceID == 3 && b.Status == domain.BookingPending
	})).Return(nil)
	bookings.On("GetDetails", mock.Anything, int64(1)).Return(&repository.BookingDetails{
		ID: 1, UserID: 7, StylistID: 2, ServiceID: 3,
		AppointmentTime: at, Status: domain.BookingPending,
		StylistName: "jane", ServiceName: "Haircut",
	}, nil)

	details, err := svc.Create(context.Background(), 7, CreateBookingRequest{StylistID: 2, ServiceID: 3, AppointmentTime: at})

	require.NoError(t, err)
	assert.Equal(t, "Haircut", details.ServiceName)
	assert.Equal(t, domain.BookingPending, details.Status)
	bookings.AssertExpectations(t)
}

func TestCreate_ServiceMissing(t *testing.T) {
	svc, bookings, catalog, _, _ := newTestService()

	catalog.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), 7, CreateBookingRequest{StylistID: 2, ServiceID: 99, AppointmentTime: futureTime()})

	assert.ErrorIs(t, err, ErrServiceNotFound)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_StylistMissing(t *testing.T) {
	svc, _, catalog, stylists, _ := newTestService()

	catalog.On("GetByID", mock.Anything, int64(3)).Return(&domain.Service{ServiceID: 3}, nil)
	stylists.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), 7, CreateBookingRequest{StylistID: 42, ServiceID: 3, AppointmentTime: futureTime()})

	assert.ErrorIs(t, err, ErrStylistNotFound)
}

func TestCreate_ServiceNotOffered(t *testing.T) {
	svc, _, catalog, stylists, _ := newTestService()

	catalog.On("GetByID", mock.Anything, int64(3)).Return(&domain.Service{ServiceID: 3}, nil)
	stylists.On("GetByID", mock.Anything, int64(2)).Return(&domain.Stylist{ID: 2}, nil)
	stylists.On("OffersService", mock.Anything, int64(2), int64(3)).Return(false, nil)

	_, err := svc.Create(context.Background(), 7, CreateBookingRequest{StylistID: 2, ServiceID: 3, AppointmentTime: futureTime()})

	assert.ErrorIs(t, err, ErrNotOffered)
}

func TestCreate_PastTime(t *testing.T) {
	svc, bookings, catalog, stylists, _ := newTestService()

	catalog.On("GetByID", mock.Anything, int64(3)).Return(&domain.Service{ServiceID: 3}, nil)
	stylists.On("GetByID", mock.Anything, int64(2)).Return(&domain.Stylist{ID: 2}, nil)
	stylists.On("OffersService", mock.Anything, int64(2), int64(3)).Return(true, nil)

	past := time.Now().UTC().Add(-time.Hour)
	_, err := svc.Create(context.Background(), 7, CreateBookingRequest{StylistID: 2, ServiceID: 3, AppointmentTime: past})

	assert.ErrorIs(t, err, ErrPastTime)
	bookings.AssertNotCalled(t, "CountConfirmedAt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_SlotTaken(t *testing.T) {
	svc, bookings, catalog, stylists, _ := newTestService()
	at := futureTime()

	catalog.On("GetByID", mock.Anything, int64(3)).Return(&domain.Service{ServiceID: 3}, nil)
	stylists.On("GetByID", mock.Anything, int64(2)).Return(&domain.Stylist{ID: 2}, nil)
	stylists.On("OffersService", mock.Anything, int64(2), int64(3)).Return(true, nil)
	bookings.On("CountConfirmedAt", mock.Anything, int64(2), at, int64(0)).Return(int64(1), nil)

	_, err := svc.Create(context.Background(), 7, CreateBookingRequest{StylistID: 2, ServiceID: 3, AppointmentTime: at})

	assert.ErrorIs(t, err, ErrSlotConflict)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOnBehalf_UnknownUser(t *testing.T) {
	svc, _, catalog, _, users := newTestService()

	users.On("GetByID", mock.Anything, int64(55)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateOnBehalf(context.Background(), CreateForUserRequest{UserID: 55, StylistID: 2, ServiceID: 3, AppointmentTime: futureTime()})

	assert.ErrorIs(t, err, ErrUserNotFound)
	catalog.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUpdateTime_OnlyOwner(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 7, StylistID: 2, Status: domain.BookingPending}, nil)

	_, err := svc.UpdateTime(context.Background(), 8, UpdateBookingRequest{BookingID: 1, AppointmentTime: futureTime()})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateTime_ConfirmedNotEditable(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 7, StylistID: 2, Status: domain.BookingConfirmed}, nil)

	_, err := svc.UpdateTime(context.Background(), 7, UpdateBookingRequest{BookingID: 1, AppointmentTime: futureTime()})

	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestUpdateTime_ExcludesOwnBookingFromConflictCheck(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()
	at := futureTime()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 7, StylistID: 2, Status: domain.BookingPending}, nil)
	bookings.On("CountConfirmedAt", mock.Anything, int64(2), at, int64(1)).Return(int64(0), nil)
	bookings.On("UpdateAppointmentTime", mock.Anything, int64(1), at).Return(nil)
	bookings.On("GetDetails", mock.Anything, int64(1)).Return(&repository.BookingDetails{ID: 1, AppointmentTime: at, Status: domain.BookingPending}, nil)

	details, err := svc.UpdateTime(context.Background(), 7, UpdateBookingRequest{BookingID: 1, AppointmentTime: at})

	require.NoError(t, err)
	assert.True(t, details.AppointmentTime.Equal(at))
	bookings.AssertExpectations(t)
}

func TestTransition_StylistAcceptsOwnBooking(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 7, StylistID: 2, Status: domain.BookingPending}, nil)
	bookings.On("UpdateStatusFrom", mock.Anything, int64(1), domain.BookingPending, domain.BookingConfirmed).Return(nil)

	actor := &domain.Principal{ID: 2, Kind: domain.KindStylist}
	b, err := svc.Transition(context.Background(), 1, actor, domain.BookingConfirmed)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestTransition_StylistRejectsPending(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 7, StylistID: 2, Status: domain.BookingPending}, nil)
	bookings.On("UpdateStatusFrom", mock.Anything, int64(1), domain.BookingPending, domain.BookingRejected).Return(nil)

	actor := &domain.Principal{ID: 2, Kind: domain.KindStylist}
	b, err := svc.Transition(context.Background(), 1, actor, domain.BookingRejected)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingRejected, b.Status)
	bookings.AssertExpectations(t)
}

func TestTransition_StylistCannotTouchOthersBooking(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 7, StylistID: 2, Status: domain.BookingPending}, nil)

	actor := &domain.Principal{ID: 9, Kind: domain.KindStylist}
	_, err := svc.Transition(context.Background(), 1, actor, domain.BookingConfirmed)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTransition_ClientForbidden(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 7, StylistID: 2, Status: domain.BookingPending}, nil)

	actor := &domain.Principal{ID: 7, Kind: domain.KindClient}
	_, err := svc.Transition(context.Background(), 1, actor, domain.BookingConfirmed)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTransition_AdminCompletesConfirmed(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 7, StylistID: 2, Status: domain.BookingConfirmed}, nil)
	bookings.On("UpdateStatusFrom", mock.Anything, int64(1), domain.BookingConfirmed, domain.BookingCompleted).Return(nil)

	actor := &domain.Principal{ID: 1, Kind: domain.KindAdmin}
	b, err := svc.Transition(context.Background(), 1, actor, domain.BookingCompleted)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, b.Status)
}

func TestTransition_RejectedIsTerminal(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 7, StylistID: 2, Status: domain.BookingRejected}, nil)

	actor := &domain.Principal{ID: 1, Kind: domain.KindAdmin}
	_, err := svc.Transition(context.Background(), 1, actor, domain.BookingConfirmed)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	bookings.AssertNotCalled(t, "UpdateStatusFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransition_LostRace(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 7, StylistID: 2, Status: domain.BookingPending}, nil)
	bookings.On("UpdateStatusFrom", mock.Anything, int64(1), domain.BookingPending, domain.BookingConfirmed).Return(gorm.ErrRecordNotFound)

	actor := &domain.Principal{ID: 1, Kind: domain.KindAdmin}
	_, err := svc.Transition(context.Background(), 1, actor, domain.BookingConfirmed)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestList_ClientFiltersByUser(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()

	bookings.On("ListDetailed", mock.Anything, mock.MatchedBy(func(f repository.BookingFilter) bool {
		return f.UserID != nil && *f.UserID == 7 && f.StylistID == nil
	}), mock.Anything, true).Return([]repository.BookingDetails{{ID: 1}}, nil)
	bookings.On("ListDetailed", mock.Anything, mock.MatchedBy(func(f repository.BookingFilter) bool {
		return f.UserID != nil && *f.UserID == 7 && f.StylistID == nil
	}), mock.Anything, false).Return([]repository.BookingDetails{{ID: 2}, {ID: 3}}, nil)

	list, err := svc.List(context.Background(), &domain.Principal{ID: 7, Kind: domain.KindClient})

	require.NoError(t, err)
	assert.Len(t, list.PreviousBookings, 1)
	assert.Len(t, list.UpcomingBookings, 2)
}

func TestList_AdminSeesEverything(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()

	unfiltered := mock.MatchedBy(func(f repository.BookingFilter) bool {
		return f.UserID == nil && f.StylistID == nil
	})
	bookings.On("ListDetailed", mock.Anything, unfiltered, mock.Anything, true).Return([]repository.BookingDetails{}, nil)
	bookings.On("ListDetailed", mock.Anything, unfiltered, mock.Anything, false).Return([]repository.BookingDetails{}, nil)

	_, err := svc.List(context.Background(), &domain.Principal{ID: 1, Kind: domain.KindAdmin})

	require.NoError(t, err)
	bookings.AssertExpectations(t)
}

func TestDelete_OwnerOnly(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 7, StylistID: 2, Status: domain.BookingConfirmed}, nil)
	bookings.On("Delete", mock.Anything, int64(1)).Return(nil)

	err := svc.Delete(context.Background(), 1, &domain.Principal{ID: 7, Kind: domain.KindClient})

	require.NoError(t, err)
	bookings.AssertExpectations(t)
}

func TestDelete_StylistForbidden(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 7, StylistID: 2, Status: domain.BookingPending}, nil)

	err := svc.Delete(context.Background(), 1, &domain.Principal{ID: 2, Kind: domain.KindStylist})

	assert.ErrorIs(t, err, ErrForbidden)
	bookings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

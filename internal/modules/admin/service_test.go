package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"salonbooking/internal/domain"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStylistStore struct {
	mock.Mock
}

func (m *MockStylistStore) Create(ctx context.Context, s *domain.Stylist, serviceIDs []int64) error {
	args := m.Called(ctx, s, serviceIDs)
	if s != nil && args.Error(0) == nil {
		s.ID = 1
	}
	return args.Error(0)
}

func (m *MockStylistStore) GetByID(ctx context.Context, id int64) (*domain.Stylist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stylist), args.Error(1)
}

func (m *MockStylistStore) GetAll(ctx context.Context, publicOnly bool) ([]domain.Stylist, error) {
	args := m.Called(ctx, publicOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stylist), args.Error(1)
}

func (m *MockStylistStore) Update(ctx context.Context, s *domain.Stylist) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStylistStore) ReplaceServices(ctx context.Context, stylistID int64, serviceIDs []int64) error {
	args := m.Called(ctx, stylistID, serviceIDs)
	return args.Error(0)
}

func (m *MockStylistStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAdminStore struct {
	mock.Mock
}

func (m *MockAdminStore) Create(ctx context.Context, a *domain.Admin) error {
	args := m.Called(ctx, a)
	if a != nil && args.Error(0) == nil {
		a.ID = 1
	}
	return args.Error(0)
}

func (m *MockAdminStore) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService() (*Service, *MockUserStore, *MockStylistStore, *MockAdminStore) {
	users := new(MockUserStore)
	stylists := new(MockStylistStore)
	admins := new(MockAdminStore)
	return NewService(users, stylists, admins), users, stylists, admins
}

func TestCreateUser_HashesPassword(t *testing.T) {
	svc, users, _, _ := newTestService()

	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice" &&
			u.Role == domain.RoleClient &&
			u.Password != "supersecret" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("supersecret")) == nil
	})).Return(nil)

	u, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "alice", Email: "alice@example.com", Password: "supersecret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	users.AssertExpectations(t)
}

func TestCreateStylist_LinksServices(t *testing.T) {
	svc, _, stylists, _ := newTestService()

	stylists.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Stylist) bool {
		return s.Username == "jane" && s.Role == domain.RoleStylist
	}), []int64{3, 4}).Return(nil)

	st, err := svc.CreateStylist(context.Background(), CreateStylistRequest{
		Username: "jane", Email: "jane@example.com", Password: "supersecret",
		Specialization: "color", ServiceIDs: []int64{3, 4},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), st.ID)
	stylists.AssertExpectations(t)
}

func TestCreateStylist_UnknownServiceAborts(t *testing.T) {
	svc, _, stylists, _ := newTestService()

	stylists.On("Create", mock.Anything, mock.Anything, []int64{99}).Return(gorm.ErrRecordNotFound)

	_, err := svc.CreateStylist(context.Background(), CreateStylistRequest{
		Username: "jane", Email: "jane@example.com", Password: "supersecret",
		ServiceIDs: []int64{99},
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAdmin_RoleValidation(t *testing.T) {
	svc, _, _, admins := newTestService()

	_, err := svc.CreateAdmin(context.Background(), CreateAdminRequest{
		Username: "root", Email: "root@example.com", Password: "supersecret", Role: "client",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
	admins.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	admins.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Admin) bool {
		return a.Role == domain.RoleAdmin
	})).Return(nil).Once()
	a, err := svc.CreateAdmin(context.Background(), CreateAdminRequest{
		Username: "root", Email: "root@example.com", Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, a.Role)

	admins.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Admin) bool {
		return a.Role == domain.RoleSuperAdmin
	})).Return(nil).Once()
	a, err = svc.CreateAdmin(context.Background(), CreateAdminRequest{
		Username: "boss", Email: "boss@example.com", Password: "supersecret", Role: "superadmin",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, a.Role)
}

func TestUpdateStylist_ReplacesServiceSet(t *testing.T) {
	svc, _, stylists, _ := newTestService()

	stylists.On("GetByID", mock.Anything, int64(1)).Return(&domain.Stylist{ID: 1, Bio: "old"}, nil)
	stylists.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Stylist) bool {
		return s.Bio == "new bio"
	})).Return(nil)
	stylists.On("ReplaceServices", mock.Anything, int64(1), []int64{5}).Return(nil)

	bio := "new bio"
	ids := []int64{5}
	st, err := svc.UpdateStylist(context.Background(), 1, UpdateStylistRequest{Bio: &bio, ServiceIDs: &ids})

	require.NoError(t, err)
	assert.Equal(t, "new bio", st.Bio)
	stylists.AssertExpectations(t)
}

func TestUpdateStylist_NilServiceListLeavesAssociationsAlone(t *testing.T) {
	svc, _, stylists, _ := newTestService()

	stylists.On("GetByID", mock.Anything, int64(1)).Return(&domain.Stylist{ID: 1}, nil)
	stylists.On("Update", mock.Anything, mock.Anything).Return(nil)

	spec := "braids"
	_, err := svc.UpdateStylist(context.Background(), 1, UpdateStylistRequest{Specialization: &spec})

	require.NoError(t, err)
	stylists.AssertNotCalled(t, "ReplaceServices", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyAndSuspendStylist(t *testing.T) {
	svc, _, stylists, _ := newTestService()

	stylists.On("GetByID", mock.Anything, int64(1)).Return(&domain.Stylist{ID: 1, Verified: false, IsActive: true}, nil)
	stylists.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Stylist) bool {
		return s.Verified
	})).Return(nil).Once()

	st, err := svc.VerifyStylist(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, st.Verified)

	stylists.On("GetByID", mock.Anything, int64(2)).Return(&domain.Stylist{ID: 2, Verified: true, IsActive: true}, nil)
	stylists.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Stylist) bool {
		return !s.IsActive
	})).Return(nil).Once()

	st, err = svc.SuspendStylist(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, st.IsActive)
}

func TestDeleteStylist_Missing(t *testing.T) {
	svc, _, stylists, _ := newTestService()

	stylists.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteStylist(context.Background(), 9)

	assert.ErrorIs(t, err, ErrNotFound)
	stylists.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

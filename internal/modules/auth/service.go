package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"salonbooking/internal/domain"
	"salonbooking/internal/repository"
)

// Service authenticates principals and manages the client account
// lifecycle. Login checks the account tables in a fixed precedence
// order: admins, then stylists, then users. The role encoded in the
// token is the one stored on the matched row, so a superadmin keeps
// its role.
type Service struct {
	users    UserRepository
	stylists StylistDirectory
	admins   AdminDirectory
	jwt      TokenIssuer
}

func NewService(users UserRepository, stylists StylistDirectory, admins AdminDirectory, jwt TokenIssuer) *Service {
	return &Service{users: users, stylists: stylists, admins: admins, jwt: jwt}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	username := strings.TrimSpace(req.Username)

	var hash, role string

	if a, err := s.admins.GetByUsername(ctx, username); err == nil {
		hash, role = a.Password, a.Role
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	} else if st, err := s.stylists.GetByUsername(ctx, username); err == nil {
		hash, role = st.Password, st.Role
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	} else if u, err := s.users.GetByUsername(ctx, username); err == nil {
		hash, role = u.Password, u.Role
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	} else {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(username, role)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// SignupClient creates a client account. Uniqueness of username and
// email is enforced by the store; a duplicate insert maps to ErrConflict
// instead of a pre-check that could race.
func (s *Service) SignupClient(ctx context.Context, req SignupRequest) (*domain.User, error) {
	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username: strings.TrimSpace(req.Username),
		Email:    req.Email,
		Password: hashed,
		Role:     domain.RoleClient,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Username != nil {
		u.Username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		u.Email = *req.Email
	}

	if err := s.users.Update(ctx, u); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) DeleteProfile(ctx context.Context, userID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.users.Delete(ctx, userID)
}

func (s *Service) ChangePassword(ctx context.Context, userID int64, req PasswordChangeRequest) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.OldPassword)) != nil {
		return ErrWrongPassword
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	u.Password = hashed

	return s.users.Update(ctx, u)
}

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

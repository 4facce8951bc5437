package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	userRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/user"
	"github.com/m04kA/Mila-BookingService/internal/service/auth/models"
)

// Service вход по телефону, регистрация и профиль
type Service struct {
	userRepo UserRepository
	tokens   TokenIssuer
	logger   Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(userRepo UserRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// LoginByPhone входит по номеру телефона. Известный номер открывает сессию
// его владельца, неизвестный создаёт клиента "User <последние 4 цифры>"
func (s *Service) LoginByPhone(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	phone, ok := models.NormalizePhone(req.Phone)
	if !ok {
		s.logger.Warn("LoginByPhone: invalid phone")
		return nil, ErrInvalidPhone
	}

	user, err := s.userRepo.FindByPhone(ctx, phone)
	created := false
	switch {
	case errors.Is(err, userRepo.ErrUserNotFound):
		user, err = s.userRepo.Create(ctx, newClient("User "+phone[len(phone)-4:], phone, req.CountryCode))
		if errors.Is(err, userRepo.ErrPhoneTaken) {
			// параллельный вход с тем же номером успел создать пользователя
			user, err = s.userRepo.FindByPhone(ctx, phone)
		} else {
			created = err == nil
		}
		if err != nil {
			s.logger.Error("LoginByPhone: failed to create user: %v", err)
			return nil, fmt.Errorf("%w: LoginByPhone - create user: %v", ErrInternal, err)
		}
	case err != nil:
		s.logger.Error("LoginByPhone: failed to find user: %v", err)
		return nil, fmt.Errorf("%w: LoginByPhone - find user: %v", ErrInternal, err)
	}

	s.logger.Info("LoginByPhone: user id=%d role=%s created=%t", user.ID, user.Role, created)
	return s.issue(user, created)
}

// Register создает клиента с именем и телефоном
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	phone, ok := models.NormalizePhone(req.Phone)
	if !ok {
		s.logger.Warn("Register: invalid phone")
		return nil, ErrInvalidPhone
	}

	user, err := s.userRepo.Create(ctx, newClient(strings.TrimSpace(req.Name), phone, req.CountryCode))
	if err != nil {
		if errors.Is(err, userRepo.ErrPhoneTaken) {
			s.logger.Warn("Register: phone already registered")
			return nil, ErrPhoneTaken
		}
		s.logger.Error("Register: failed to create user: %v", err)
		return nil, fmt.Errorf("%w: Register - create user: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created user id=%d", user.ID)
	return s.issue(user, true)
}

// GetProfile возвращает профиль пользователя
func (s *Service) GetProfile(ctx context.Context, userID int64) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, "GetProfile", userID)
	if err != nil {
		return nil, err
	}
	resp := models.FromDomainUser(user)
	return &resp, nil
}

// UpdateProfile меняет имя, email, язык и тему
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req *models.UpdateProfileRequest) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, "UpdateProfile", userID)
	if err != nil {
		return nil, err
	}

	if err := req.Apply(user); err != nil {
		s.logger.Warn("UpdateProfile: validation failed for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateProfile: repository error for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: updated user id=%d", userID)
	resp := models.FromDomainUser(user)
	return &resp, nil
}

func (s *Service) getUser(ctx context.Context, method string, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user id=%d not found", method, userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: repository error for user id=%d: %v", method, userID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return user, nil
}

func (s *Service) issue(user *domain.User, created bool) (*models.AuthResponse, error) {
	token, err := s.tokens.Encode(user.ID, user.Role)
	if err != nil {
		s.logger.Error("issue: failed to encode session for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: issue session: %v", ErrInternal, err)
	}
	return &models.AuthResponse{
		Token:   token,
		User:    models.FromDomainUser(user),
		Created: created,
	}, nil
}

func newClient(name, phone, countryCode string) *domain.User {
	return &domain.User{
		Name:        name,
		Phone:       phone,
		CountryCode: models.NormalizeCountryCode(countryCode),
		Role:        domain.RoleClient,
		Language:    domain.LanguageEN,
		Theme:       domain.ThemeLight,
	}
}

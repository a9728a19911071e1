package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ev-storefront/internal/domain"
	"ev-storefront/internal/infrastructure/auth"
	"ev-storefront/internal/repo"
	"ev-storefront/pkg/logger"
)

const minPasswordLength = 6

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

type AuthResult struct {
	Token string
	User  domain.User
}

type AuthService interface {
	Register(ctx context.Context, cmd RegisterCommand) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type authService struct {
	userRepo repo.UserRepo
	issuer   auth.TokenIssuer
	log      logger.Logger
	cost     int
	now      func() time.Time
}

func NewAuthService(userRepo repo.UserRepo, issuer auth.TokenIssuer, log logger.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		issuer:   issuer,
		log:      log,
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	name := strings.TrimSpace(cmd.Name)
	email := normalizeEmail(cmd.Email)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidRegistration)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email is invalid", domain.ErrInvalidRegistration)
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidRegistration, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC().Truncate(time.Microsecond),
	}
	if err := s.userRepo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	s.log.WithContext(ctx).Info("user registered", logger.Any("user_id", user.ID))
	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidLogin
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, domain.ErrInvalidLogin
	}
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}

	return s.issue(*user)
}

func (s *authService) issue(user domain.User) (*AuthResult, error) {
	token, err := s.issuer.Issue(domain.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

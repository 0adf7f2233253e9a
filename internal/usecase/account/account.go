package account

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbershop-booking/internal/apperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/account"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

const minPasswordLen = 6

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type Service struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	// resolver != nil liga a checagem de domínio do email (MX/A).
	resolver validators.Resolver
	cost     int
}

func NewService(
	repo domain.Repository,
	audit *audit.Dispatcher,
	resolver validators.Resolver,
) *Service {
	return &Service{
		repo:     repo,
		audit:    audit,
		resolver: resolver,
		cost:     bcrypt.DefaultCost,
	}
}

// Register cria o usuário. Email repetido vira apperr.ErrDuplicateEmail
// e o registro existente fica intacto.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Missing("name")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, apperr.Missing("email")
	}
	if in.Password == "" {
		return nil, apperr.Missing("password")
	}

	email := validators.NormalizeEmail(in.Email)
	if email == "" {
		return nil, apperr.Invalid("email", "invalid_email")
	}
	if len(in.Password) < minPasswordLen {
		return nil, apperr.Invalid("password", "password_too_short")
	}

	if s.resolver != nil && !validators.IsEmailDomainValid(ctx, s.resolver, email) {
		return nil, apperr.Invalid("email", "invalid_email_domain")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         "barber",
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, apperr.ErrDuplicateEmail) {
			metrics.IncRegistration("duplicate_email")
			return nil, err
		}
		metrics.IncRegistration("error")
		return nil, apperr.Persistence("create_user", err)
	}

	metrics.IncRegistration("registered")

	id := user.ID
	s.audit.Dispatch(audit.Event{
		UserID:   &id,
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: &id,
	})

	return user, nil
}

// Authenticate devolve apperr.ErrInvalidCredentials tanto para email
// desconhecido quanto para senha errada.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperr.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Persistence("find_user", err)
	}
	if user == nil {
		return nil, apperr.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	return user, nil
}

func (s *Service) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, err
		}
		return nil, apperr.Persistence("find_user", err)
	}
	return user, nil
}

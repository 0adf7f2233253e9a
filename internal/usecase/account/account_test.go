package account

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/apperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/db/dbtest"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func newService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	gdb := dbtest.New(t)
	s := NewService(repository.NewUserGormRepository(gdb), nil, nil)
	s.cost = bcrypt.MinCost
	return s, gdb
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, RegisterInput{Name: "João", Email: " Joao@Barbearia.com ", Password: "segredo1"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "joao@barbearia.com", user.Email)
	assert.NotEqual(t, "segredo1", user.PasswordHash)

	got, err := s.Authenticate(ctx, "JOAO@barbearia.com", "segredo1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = s.Authenticate(ctx, "joao@barbearia.com", "errada")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = s.Authenticate(ctx, "ninguem@barbearia.com", "segredo1")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	byID, err := s.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "João", byID.Name)

	_, err = s.FindByID(ctx, 999)
	assert.True(t, apperr.IsNotFound(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, gdb := newService(t)
	ctx := context.Background()

	first, err := s.Register(ctx, RegisterInput{Name: "João", Email: "joao@barbearia.com", Password: "segredo1"})
	require.NoError(t, err)

	_, err = s.Register(ctx, RegisterInput{Name: "Outro", Email: "JOAO@barbearia.com", Password: "outrasenha"})
	assert.ErrorIs(t, err, apperr.ErrDuplicateEmail)

	var users []models.User
	require.NoError(t, gdb.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "João", users[0].Name)
	assert.Equal(t, first.PasswordHash, users[0].PasswordHash)

	// senha original continua valendo
	_, err = s.Authenticate(ctx, "joao@barbearia.com", "segredo1")
	assert.NoError(t, err)
}

func TestRegisterValidation(t *testing.T) {
	s, _ := newService(t)

	tests := []struct {
		name string
		in   RegisterInput
		code string
	}{
		{"MissingName", RegisterInput{Email: "a@b.com", Password: "123456"}, "missing_field"},
		{"MissingEmail", RegisterInput{Name: "A", Password: "123456"}, "missing_field"},
		{"MissingPassword", RegisterInput{Name: "A", Email: "a@b.com"}, "missing_field"},
		{"BadEmail", RegisterInput{Name: "A", Email: "a-b.com", Password: "123456"}, "invalid_email"},
		{"ShortPassword", RegisterInput{Name: "A", Email: "a@b.com", Password: "123"}, "password_too_short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tt.in)
			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.code, ve.Code)
		})
	}
}

type noDomainResolver struct{}

func (noDomainResolver) LookupMX(context.Context, string) ([]*net.MX, error) {
	return nil, errors.New("no such host")
}

func (noDomainResolver) LookupHost(context.Context, string) ([]string, error) {
	return nil, errors.New("no such host")
}

func TestRegisterEmailDomainCheck(t *testing.T) {
	s, _ := newService(t)
	s.resolver = noDomainResolver{}

	_, err := s.Register(context.Background(), RegisterInput{Name: "A", Email: "a@naoexiste.invalid", Password: "123456"})

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "invalid_email_domain", ve.Code)
}

package validators

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	mx    map[string][]*net.MX
	hosts map[string][]string
}

func (f fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if v, ok := f.mx[name]; ok {
		return v, nil
	}
	return nil, errors.New("no such host")
}

func (f fakeResolver) LookupHost(_ context.Context, host string) ([]string, error) {
	if v, ok := f.hosts[host]; ok {
		return v, nil
	}
	return nil, errors.New("no such host")
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "joao@barbearia.com", NormalizeEmail("  Joao@Barbearia.com "))
	assert.Equal(t, "", NormalizeEmail("joao"))
	assert.Equal(t, "", NormalizeEmail("Joao <joao@barbearia.com>"))
	assert.Equal(t, "", NormalizeEmail(""))
}

func TestIsEmailDomainValid(t *testing.T) {
	r := fakeResolver{
		mx:    map[string][]*net.MX{"mx.com": {{Host: "mail.mx.com."}}},
		hosts: map[string][]string{"a.com": {"10.0.0.1"}},
	}
	ctx := context.Background()

	assert.True(t, IsEmailDomainValid(ctx, r, "x@mx.com"))
	assert.True(t, IsEmailDomainValid(ctx, r, "x@a.com"))
	assert.False(t, IsEmailDomainValid(ctx, r, "x@nada.com"))
	assert.False(t, IsEmailDomainValid(ctx, r, "x@"))
	assert.False(t, IsEmailDomainValid(ctx, r, "semarroba"))
}

package validators

import (
	"context"
	"net"
	"net/mail"
	"strings"
)

// Resolver é o subconjunto de *net.Resolver usado na checagem de domínio.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// NormalizeEmail devolve o endereço em minúsculas, ou "" se não for um email.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ""
	}
	return email
}

func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

// IsEmailDomainValid aceita o domínio se houver registro MX ou A/AAAA.
func IsEmailDomainValid(ctx context.Context, r Resolver, email string) bool {
	domain := EmailDomain(email)
	if domain == "" {
		return false
	}

	if r == nil {
		r = net.DefaultResolver
	}

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if hosts, err := r.LookupHost(ctx, domain); err == nil && len(hosts) > 0 {
		return true
	}

	return false
}

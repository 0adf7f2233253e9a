package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Location devolve o fuso informado ou, se inválido, o fuso padrão da barbearia.
// Sem tzdata no sistema cai para UTC.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Clock fornece o "agora" no fuso da barbearia. Now pode ser trocado em testes.
type Clock struct {
	Loc *time.Location
	Now func() time.Time
}

func NewClock(tz string) Clock {
	return Clock{Loc: Location(tz), Now: time.Now}
}

func (c Clock) Today() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Loc
	if loc == nil {
		loc = Location("")
	}
	return now().In(loc).Format("2006-01-02")
}

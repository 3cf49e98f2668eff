package reservation

import (
	"net/netip"
	"regexp"
	"strings"
	"time"
)

const (
	MaxGuests     = 4
	MaxNameLength = 100
	MaxPhoneLen   = 32
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is stored lower-cased; comparisons are case-insensitive.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string { return e.value }

func (e Email) Matches(claimed string) bool {
	return e.value != "" && strings.EqualFold(e.value, strings.TrimSpace(claimed))
}

type Contact struct {
	name  string
	email Email
	phone string
}

func NewContact(name, email, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return Contact{}, ErrInvalidName
	}
	e, err := NewEmail(email)
	if err != nil {
		return Contact{}, err
	}
	phone = strings.TrimSpace(phone)
	if len(phone) > MaxPhoneLen {
		return Contact{}, ErrInvalidPhone
	}
	return Contact{name: name, email: e, phone: phone}, nil
}

// ReconstructContact rebuilds a stored contact without re-validating it.
func ReconstructContact(name, email, phone string) Contact {
	return Contact{name: name, email: Email{value: email}, phone: phone}
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() Email  { return c.email }
func (c Contact) Phone() string { return c.phone }

type Guests struct {
	names []string
}

func NewGuests(names []string) (Guests, error) {
	if len(names) > MaxGuests {
		return Guests{}, ErrTooManyGuests
	}
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || len(n) > MaxNameLength {
			return Guests{}, ErrInvalidGuestName
		}
		cleaned = append(cleaned, n)
	}
	return Guests{names: cleaned}, nil
}

func ReconstructGuests(names []string) Guests {
	return Guests{names: names}
}

func (g Guests) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

func (g Guests) Count() int { return len(g.names) }

// Waiver records the liability waiver acceptance for audit.
type Waiver struct {
	acceptedAt time.Time
	ip         string
}

func NewWaiver(accepted bool, at time.Time, ip string) (Waiver, error) {
	if !accepted {
		return Waiver{}, ErrWaiverNotAccepted
	}
	if addr, err := netip.ParseAddr(strings.TrimSpace(ip)); err == nil {
		ip = addr.String()
	} else {
		ip = ""
	}
	return Waiver{acceptedAt: at, ip: ip}, nil
}

func ReconstructWaiver(acceptedAt time.Time, ip string) Waiver {
	return Waiver{acceptedAt: acceptedAt, ip: ip}
}

func (w Waiver) AcceptedAt() time.Time { return w.acceptedAt }
func (w Waiver) IP() string            { return w.ip }

// PaymentRefs are the provider references attached to online reservations.
type PaymentRefs struct {
	SessionID       string
	PaymentIntentID string
	RefundID        string
}

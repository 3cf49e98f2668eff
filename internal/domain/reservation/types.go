package reservation

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentOnline PaymentMethod = "online"
	PaymentCash   PaymentMethod = "cash"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	return m == PaymentOnline || m == PaymentCash
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded, PaymentCancelled:
		return true
	default:
		return false
	}
}

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
)

// NewLanguage falls back to English for anything unsupported.
func NewLanguage(s string) Language {
	switch Language(s) {
	case LanguageSpanish:
		return LanguageSpanish
	default:
		return LanguageEnglish
	}
}

func (l Language) String() string {
	return string(l)
}

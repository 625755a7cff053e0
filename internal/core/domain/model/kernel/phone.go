package kernel

import (
	"fmt"
	"strings"
	"unicode"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

const (
	phoneMinDigits = 5
	phoneMaxDigits = 20
)

var (
	ErrPhoneIsRequired       = errs.NewValueIsRequiredError("phone")
	ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone")
)

// Phone is a contact number normalized to digits with an optional leading '+'.
// Spaces, dashes, dots and parentheses are stripped so "+7 (916) 111-11-11"
// and "+79161111111" are the same phone.
type Phone struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

func NewPhone(raw string) (Phone, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Phone{}, ErrPhoneIsRequired
	}

	var b strings.Builder
	for i, r := range raw {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("unexpected character %q", r))
		}
	}

	value := b.String()
	digits := len(strings.TrimPrefix(value, "+"))
	if digits < phoneMinDigits || digits > phoneMaxDigits {
		return Phone{}, errs.NewValueIsOutOfRangeError("phone digits", digits, phoneMinDigits, phoneMaxDigits)
	}

	return Phone{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

func (p Phone) String() string {
	return p.value
}

package kernel

import (
	"errors"
	"strings"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var (
	ErrFirstNameIsRequired        = errs.NewValueIsRequiredError("first name")
	ErrLastNameIsRequired         = errs.NewValueIsRequiredError("last name")
	ErrPersonNameIsNotConstructed = errs.NewValueIsRequiredError("person name must be created via NewPersonName")
)

// PersonName is the name of a client or a worker. First and last names are
// required, the patronymic is optional.
type PersonName struct { //nolint:recvcheck //using for validation
	first      string
	last       string
	patronymic string
	guard      guard.ConstructorGuard
}

// NewPersonName trims and validates the name parts.
func NewPersonName(first, last, patronymic string) (PersonName, error) {
	n := PersonName{
		first:      strings.TrimSpace(first),
		last:       strings.TrimSpace(last),
		patronymic: strings.TrimSpace(patronymic),
		guard:      guard.NewConstructorGuard(),
	}

	var firstErr, lastErr error
	if n.first == "" {
		firstErr = ErrFirstNameIsRequired
	}
	if n.last == "" {
		lastErr = ErrLastNameIsRequired
	}
	if err := errors.Join(firstErr, lastErr); err != nil {
		return PersonName{}, err
	}

	return n, nil
}

func (n PersonName) Validate() error {
	return n.guard.Validate(ErrPersonNameIsNotConstructed)
}

func (n PersonName) First() string      { return n.first }
func (n PersonName) Last() string       { return n.last }
func (n PersonName) Patronymic() string { return n.patronymic }

// Short returns "First Last", the form used in listings and notifications.
func (n PersonName) Short() string {
	return n.first + " " + n.last
}

// Full returns "Last First Patronymic" with the patronymic omitted when empty.
func (n PersonName) Full() string {
	parts := []string{n.last, n.first}
	if n.patronymic != "" {
		parts = append(parts, n.patronymic)
	}
	return strings.Join(parts, " ")
}

func (n PersonName) String() string {
	return n.Short()
}

// Package client provides the Client aggregate. A client is identified in
// the workshop by phone number: placing a second order with the same phone
// reuses the existing client.
package client

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var (
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
	ErrEmailIsInvalid         = errs.NewValueIsInvalidError("email")
)

type Client struct {
	id    kernel.ID
	name  kernel.PersonName
	phone kernel.Phone
	email string
	guard guard.ConstructorGuard
}

func NewClient(name kernel.PersonName, phone kernel.Phone, email string) (*Client, error) {
	c := &Client{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setName(name),
		c.setPhone(phone),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func RestoreClient(id kernel.ID, name kernel.PersonName, phone kernel.Phone, email string) (*Client, error) {
	c, err := NewClient(name, phone, email)
	if err != nil {
		return nil, err
	}
	if err := c.Identify(id); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// Identify stores the identifier assigned by the record store.
func (c *Client) Identify(id kernel.ID) error {
	if !c.id.IsZero() {
		return errs.NewValueIsInvalidError("client already has an id")
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) ID() kernel.ID           { return c.id }
func (c *Client) Name() kernel.PersonName { return c.name }
func (c *Client) Phone() kernel.Phone     { return c.phone }
func (c *Client) Email() string           { return c.email }

// Contact returns the address notifications are sent to: the email when
// known, the phone otherwise.
func (c *Client) Contact() string {
	if c.email != "" {
		return c.email
	}
	return c.phone.String()
}

func (c *Client) setName(name kernel.PersonName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Client) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Client) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}
	c.email = email
	return nil
}

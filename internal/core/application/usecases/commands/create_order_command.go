package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/product"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrProductTypeIsRequired = errs.NewValueIsRequiredError("productType")
	ErrPurityIsInvalid       = errs.NewValueIsInvalidError("purity must be greater than 0")
)

// CreateOrderCommand is a client placing an order for one item.
//
// The client is looked up by phone and created when unknown; the product is
// looked up by (type, material, purity) and created when unknown.
//
// Example:
//
//	name, _ := kernel.NewPersonName("Olga", "Smirnova", "")
//	phone, _ := kernel.NewPhone("+79001234567")
//	cmd, err := NewCreateOrderCommand(name, phone, "", "ring", product.Gold, 585, "size 17")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientName  kernel.PersonName
	clientPhone kernel.Phone
	clientEmail string
	productType string
	material    product.Material
	purity      int
	note        string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	clientName kernel.PersonName,
	clientPhone kernel.Phone,
	clientEmail string,
	productType string,
	material product.Material,
	purity int,
	note string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		clientEmail: strings.TrimSpace(clientEmail),
		note:        strings.TrimSpace(note),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientName(clientName),
		cmd.setClientPhone(clientPhone),
		cmd.setProductType(productType),
		cmd.setMaterial(material),
		cmd.setPurity(purity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ClientName() kernel.PersonName { return c.clientName }
func (c CreateOrderCommand) ClientPhone() kernel.Phone     { return c.clientPhone }
func (c CreateOrderCommand) ClientEmail() string           { return c.clientEmail }
func (c CreateOrderCommand) ProductType() string           { return c.productType }
func (c CreateOrderCommand) Material() product.Material    { return c.material }
func (c CreateOrderCommand) Purity() int                   { return c.purity }
func (c CreateOrderCommand) Note() string                  { return c.note }

func (c *CreateOrderCommand) setClientName(name kernel.PersonName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	c.clientName = name
	return nil
}

func (c *CreateOrderCommand) setClientPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.clientPhone = phone
	return nil
}

func (c *CreateOrderCommand) setProductType(productType string) error {
	productType = strings.TrimSpace(productType)
	if productType == "" {
		return ErrProductTypeIsRequired
	}
	c.productType = productType
	return nil
}

func (c *CreateOrderCommand) setMaterial(material product.Material) error {
	if err := material.Validate(); err != nil {
		return err
	}
	c.material = material
	return nil
}

func (c *CreateOrderCommand) setPurity(purity int) error {
	if purity <= 0 {
		return ErrPurityIsInvalid
	}
	c.purity = purity
	return nil
}

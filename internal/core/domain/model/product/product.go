package product

import (
	"errors"
	"fmt"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

const (
	minPurity = 1
	maxPurity = 999
)

var (
	ErrProductIsNotConstructed   = errors.New("Product must be created via NewProduct constructor")
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")
	ErrTypeIsRequired            = errs.NewValueIsRequiredError("type")
)

// Product is a catalog entry. Products are looked up by the (type, material,
// purity) triple and created on first use.
type Product struct {
	id       kernel.ID
	kind     string
	material Material
	purity   int
	guard    guard.ConstructorGuard
}

// NewProduct validates the triple. purity is the assay mark (585, 925...).
func NewProduct(kind string, material Material, purity int) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setKind(kind),
		material.Validate(),
		p.setPurity(purity),
	); err != nil {
		return nil, err
	}

	p.material = material
	return p, nil
}

func RestoreProduct(id kernel.ID, kind string, material Material, purity int) (*Product, error) {
	p, err := NewProduct(kind, material, purity)
	if err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) Identify(id kernel.ID) error {
	if !p.id.IsZero() {
		return errs.NewValueIsInvalidError("product already has an id")
	}
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) ID() kernel.ID      { return p.id }
func (p *Product) Type() string       { return p.kind }
func (p *Product) Material() Material { return p.material }
func (p *Product) Purity() int        { return p.purity }

// Describe returns the one-line summary shown in order views, e.g.
// "ring, gold 585".
func (p *Product) Describe() string {
	return fmt.Sprintf("%s, %s %d", p.kind, p.material, p.purity)
}

func (p *Product) setKind(kind string) error {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return ErrTypeIsRequired
	}
	p.kind = strings.ToLower(kind)
	return nil
}

func (p *Product) setPurity(purity int) error {
	if purity < minPurity || purity > maxPurity {
		return errs.NewValueIsOutOfRangeError("purity", purity, minPurity, maxPurity)
	}
	p.purity = purity
	return nil
}

// OrderItem attaches a product to an order with a free-text note from the
// client (size, engraving text and so on).
type OrderItem struct {
	id        kernel.ID
	orderID   kernel.ID
	productID kernel.ID
	note      string
	guard     guard.ConstructorGuard
}

func NewOrderItem(orderID, productID kernel.ID, note string) (*OrderItem, error) {
	if err := errors.Join(
		wrapRequired("orderId", orderID.Validate()),
		wrapRequired("productId", productID.Validate()),
	); err != nil {
		return nil, err
	}

	return &OrderItem{
		orderID:   orderID,
		productID: productID,
		note:      strings.TrimSpace(note),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func RestoreOrderItem(id, orderID, productID kernel.ID, note string) (*OrderItem, error) {
	item, err := NewOrderItem(orderID, productID, note)
	if err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	item.id = id
	return item, nil
}

func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

func (i *OrderItem) Identify(id kernel.ID) error {
	if !i.id.IsZero() {
		return errs.NewValueIsInvalidError("order item already has an id")
	}
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) ID() kernel.ID        { return i.id }
func (i *OrderItem) OrderID() kernel.ID   { return i.orderID }
func (i *OrderItem) ProductID() kernel.ID { return i.productID }
func (i *OrderItem) Note() string         { return i.note }

func wrapRequired(param string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsRequiredErrorWithCause(param, err)
}

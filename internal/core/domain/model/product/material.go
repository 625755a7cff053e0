package product

import (
	"fmt"
	"strings"

	"workshop/internal/pkg/errs"
)

// Material is the metal an item is made of.
type Material string

const (
	Gold     Material = "gold"
	Silver   Material = "silver"
	Platinum Material = "platinum"
)

// ParseMaterial accepts a material name in any case.
func ParseMaterial(s string) (Material, error) {
	m := Material(strings.ToLower(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m Material) Validate() error {
	switch m {
	case Gold, Silver, Platinum:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("material", fmt.Errorf("%q is not a known material", string(m)))
	}
}

func (m Material) String() string {
	return string(m)
}

// Enhancement is an add-on a client can request on top of the base item.
// A price request carries a flat list of them.
type Enhancement string

const (
	Engraving       Enhancement = "engraving"
	GemstoneSetting Enhancement = "gemstone_setting"
	Polishing       Enhancement = "polishing"
	GiftWrap        Enhancement = "gift_wrap"
)

func ParseEnhancement(s string) (Enhancement, error) {
	e := Enhancement(strings.ToLower(strings.TrimSpace(s)))
	if err := e.Validate(); err != nil {
		return "", err
	}
	return e, nil
}

func (e Enhancement) Validate() error {
	switch e {
	case Engraving, GemstoneSetting, Polishing, GiftWrap:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("enhancement", fmt.Errorf("%q is not a known enhancement", string(e)))
	}
}

func (e Enhancement) String() string {
	return string(e)
}

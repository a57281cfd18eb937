package domain

import "github.com/phrazzld/storefront-kit/internal/field"

// Product is an item in the storefront catalog.
type Product struct {
	productID   *int64
	productName string
	description string
	price       float64
}

// NewProduct creates a Product from raw values. productID is nil for a
// product that has not been stored yet.
func NewProduct(productID, productName, description, price any) (*Product, error) {
	p := &Product{}
	err := construct("Product",
		func() error { return p.SetProductID(productID) },
		func() error { return p.SetProductName(productName) },
		func() error { return p.SetDescription(description) },
		func() error { return p.SetPrice(price) },
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ProductID returns a copy of the product ID, or nil before persistence.
func (p *Product) ProductID() *int64 { return cloneInt64(p.productID) }

// SetProductID validates and sets the product ID.
func (p *Product) SetProductID(raw any) error {
	id, err := field.OptionalPositiveID("product id", raw)
	if err != nil {
		return err
	}
	p.productID = id
	return nil
}

// ProductName returns the display name.
func (p *Product) ProductName() string { return p.productName }

// SetProductName validates and sets the display name.
func (p *Product) SetProductName(raw any) error {
	return setText(&p.productName, "product name", raw)
}

// Description returns the product description.
func (p *Product) Description() string { return p.description }

// SetDescription validates and sets the product description.
func (p *Product) SetDescription(raw any) error {
	return setText(&p.description, "description", raw)
}

// Price returns the unit price; it is always positive.
func (p *Product) Price() float64 { return p.price }

// SetPrice validates and sets the unit price.
func (p *Product) SetPrice(raw any) error {
	price, err := field.PositiveMoney("price", raw)
	if err != nil {
		return err
	}
	p.price = price
	return nil
}

package domain

import "github.com/phrazzld/storefront-kit/internal/field"

// OrderLine is one Product within an OrderHeader. It has no surrogate key;
// the (order header id, product id) pair identifies it.
type OrderLine struct {
	orderHeaderID int64
	productID     int64
	quantity      int64
	discount      float64
}

// NewOrderLine creates an OrderLine from raw values. discount must be
// negative: it is the amount subtracted from the line total.
func NewOrderLine(orderHeaderID, productID, quantity, discount any) (*OrderLine, error) {
	l := &OrderLine{}
	err := construct("OrderLine",
		func() error { return l.SetOrderHeaderID(orderHeaderID) },
		func() error { return l.SetProductID(productID) },
		func() error { return l.SetQuantity(quantity) },
		func() error { return l.SetDiscount(discount) },
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// OrderHeaderID returns the owning order header's ID.
func (l *OrderLine) OrderHeaderID() int64 { return l.orderHeaderID }

// SetOrderHeaderID validates and sets the owning order header's ID.
func (l *OrderLine) SetOrderHeaderID(raw any) error {
	id, err := field.PositiveID("order header id", raw)
	if err != nil {
		return err
	}
	l.orderHeaderID = id
	return nil
}

// ProductID returns the ordered product's ID.
func (l *OrderLine) ProductID() int64 { return l.productID }

// SetProductID validates and sets the ordered product's ID.
func (l *OrderLine) SetProductID(raw any) error {
	id, err := field.PositiveID("product id", raw)
	if err != nil {
		return err
	}
	l.productID = id
	return nil
}

// Quantity returns the number of units ordered.
func (l *OrderLine) Quantity() int64 { return l.quantity }

// SetQuantity validates and sets the number of units ordered.
func (l *OrderLine) SetQuantity(raw any) error {
	n, err := field.PositiveInt("quantity", raw)
	if err != nil {
		return err
	}
	l.quantity = n
	return nil
}

// Discount returns the (negative) discount amount.
func (l *OrderLine) Discount() float64 { return l.discount }

// SetDiscount validates and sets the line discount.
func (l *OrderLine) SetDiscount(raw any) error {
	d, err := field.NegativeDiscount("discount", raw)
	if err != nil {
		return err
	}
	l.discount = d
	return nil
}

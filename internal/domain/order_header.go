package domain

import (
	"time"

	"github.com/phrazzld/storefront-kit/internal/field"
)

// OrderHeader is the parent record of an order placed by a Profile.
type OrderHeader struct {
	orderHeaderID *int64
	profileID     int64
	orderDate     time.Time
	shipDate      time.Time
}

// NewOrderHeader creates an OrderHeader from raw values.
//
// orderDate and shipDate accept either a "YYYY-MM-DD HH:MM:SS" string, as
// read from a DATETIME column, or an already-parsed time.Time.
func NewOrderHeader(orderHeaderID, profileID, orderDate, shipDate any) (*OrderHeader, error) {
	o := &OrderHeader{}
	err := construct("OrderHeader",
		func() error { return o.SetOrderHeaderID(orderHeaderID) },
		func() error { return o.SetProfileID(profileID) },
		func() error { return o.SetOrderDate(orderDate) },
		func() error { return o.SetShipDate(shipDate) },
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// OrderHeaderID returns the primary key, or nil for a new order.
func (o *OrderHeader) OrderHeaderID() *int64 { return cloneInt64(o.orderHeaderID) }

// SetOrderHeaderID validates and sets the primary key.
func (o *OrderHeader) SetOrderHeaderID(raw any) error {
	id, err := field.OptionalPositiveID("order header id", raw)
	if err != nil {
		return err
	}
	o.orderHeaderID = id
	return nil
}

// ProfileID returns the key of the Profile that placed the order.
func (o *OrderHeader) ProfileID() int64 { return o.profileID }

// SetProfileID validates and sets the ordering Profile's key.
func (o *OrderHeader) SetProfileID(raw any) error {
	id, err := field.PositiveID("profile id", raw)
	if err != nil {
		return err
	}
	o.profileID = id
	return nil
}

// OrderDate returns when the order was placed.
func (o *OrderHeader) OrderDate() time.Time { return o.orderDate }

// SetOrderDate validates and sets the order date.
func (o *OrderHeader) SetOrderDate(raw any) error {
	return setDateTime(&o.orderDate, "order date", raw)
}

// ShipDate returns when the order was shipped.
func (o *OrderHeader) ShipDate() time.Time { return o.shipDate }

// SetShipDate validates and sets the ship date.
func (o *OrderHeader) SetShipDate(raw any) error {
	return setDateTime(&o.shipDate, "ship date", raw)
}

func setDateTime(dst *time.Time, name string, raw any) error {
	t, err := field.DateTime(name, raw)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}

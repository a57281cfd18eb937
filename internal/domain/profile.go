package domain

import "github.com/phrazzld/storefront-kit/internal/field"

// Profile holds the ancillary postal and contact data for a User.
type Profile struct {
	profileID *int64
	userID    int64
	name      string
	address1  string
	address2  *string
	city      string
	state     string
	zipCode   string
	phone     string
}

// NewProfile creates a Profile from raw values. profileID is nil for a new
// profile and address2 is nil when the address has no second line.
func NewProfile(profileID, userID, name, address1, address2, city, state, zipCode, phone any) (*Profile, error) {
	p := &Profile{}
	err := construct("Profile",
		func() error { return p.SetProfileID(profileID) },
		func() error { return p.SetUserID(userID) },
		func() error { return p.SetName(name) },
		func() error { return p.SetAddress1(address1) },
		func() error { return p.SetAddress2(address2) },
		func() error { return p.SetCity(city) },
		func() error { return p.SetState(state) },
		func() error { return p.SetZipCode(zipCode) },
		func() error { return p.SetPhone(phone) },
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ProfileID returns the primary key, or nil for a new profile.
func (p *Profile) ProfileID() *int64 { return cloneInt64(p.profileID) }

// SetProfileID validates and sets the profile ID.
func (p *Profile) SetProfileID(raw any) error {
	id, err := field.OptionalPositiveID("profile id", raw)
	if err != nil {
		return err
	}
	p.profileID = id
	return nil
}

// UserID returns the owning User's key.
func (p *Profile) UserID() int64 { return p.userID }

// SetUserID validates and sets the owning user's ID.
func (p *Profile) SetUserID(raw any) error {
	id, err := field.PositiveID("user id", raw)
	if err != nil {
		return err
	}
	p.userID = id
	return nil
}

// Name returns the person's full name.
func (p *Profile) Name() string { return p.name }

// SetName validates and sets the full name.
func (p *Profile) SetName(raw any) error {
	return setText(&p.name, "name", raw)
}

// Address1 returns the first line of the postal address.
func (p *Profile) Address1() string { return p.address1 }

// SetAddress1 validates and sets the first address line.
func (p *Profile) SetAddress1(raw any) error {
	return setText(&p.address1, "address1", raw)
}

// Address2 returns the second line of the postal address, or nil.
func (p *Profile) Address2() *string { return cloneString(p.address2) }

// SetAddress2 validates and sets the optional second address line.
func (p *Profile) SetAddress2(raw any) error {
	s, err := field.OptionalText("address2", raw)
	if err != nil {
		return err
	}
	p.address2 = s
	return nil
}

// City returns the city.
func (p *Profile) City() string { return p.city }

// SetCity validates and sets the city.
func (p *Profile) SetCity(raw any) error {
	return setText(&p.city, "city", raw)
}

// State returns the USPS state abbreviation.
func (p *Profile) State() string { return p.state }

// SetState validates and sets the two-letter state code.
func (p *Profile) SetState(raw any) error {
	s, err := field.State("state", raw)
	if err != nil {
		return err
	}
	p.state = s
	return nil
}

// ZipCode returns the ZIP or ZIP+4 code.
func (p *Profile) ZipCode() string { return p.zipCode }

// SetZipCode validates and sets the ZIP code.
func (p *Profile) SetZipCode(raw any) error {
	s, err := field.ZipCode("zip", raw)
	if err != nil {
		return err
	}
	p.zipCode = s
	return nil
}

// Phone is stored as free text; no numbering plan is enforced.
func (p *Profile) Phone() string { return p.phone }

// SetPhone validates and sets the phone number.
func (p *Profile) SetPhone(raw any) error {
	return setText(&p.phone, "phone", raw)
}

// setText assigns dst only when raw passes field.Text.
func setText(dst *string, name string, raw any) error {
	s, err := field.Text(name, raw)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

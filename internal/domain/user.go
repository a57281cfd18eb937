package domain

import "github.com/phrazzld/storefront-kit/internal/field"

// User holds the authentication data for a storefront account.
type User struct {
	userID              *int64
	email               string
	password            string
	salt                string
	authenticationToken *string
}

// NewUser creates a User from raw values.
//
// userID is nil for an account that has not been stored yet. password is the
// hex PBKDF2-SHA512 hash, never the plaintext (see package password).
// authToken is nil for an active account and a 32 character hex token while
// an activation or password reset is pending.
func NewUser(userID, email, password, salt, authToken any) (*User, error) {
	u := &User{}
	err := construct("User",
		func() error { return u.SetUserID(userID) },
		func() error { return u.SetEmail(email) },
		func() error { return u.SetPassword(password) },
		func() error { return u.SetSalt(salt) },
		func() error { return u.SetAuthenticationToken(authToken) },
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// UserID returns the primary key, or nil for a new account.
func (u *User) UserID() *int64 { return cloneInt64(u.userID) }

// SetUserID validates and sets the primary key.
func (u *User) SetUserID(raw any) error {
	id, err := field.OptionalPositiveID("user id", raw)
	if err != nil {
		return err
	}
	u.userID = id
	return nil
}

// Email returns the account email, which is unique per user.
func (u *User) Email() string { return u.email }

// SetEmail validates and sets the email.
func (u *User) SetEmail(raw any) error {
	email, err := field.Email("email", raw)
	if err != nil {
		return err
	}
	u.email = email
	return nil
}

// Password returns the hex PBKDF2 hash of the password.
func (u *User) Password() string { return u.password }

// SetPassword validates and sets the password hash.
func (u *User) SetPassword(raw any) error {
	hash, err := field.PasswordHash("password", raw)
	if err != nil {
		return err
	}
	u.password = hash
	return nil
}

// Salt returns the hex salt used to derive the password hash.
func (u *User) Salt() string { return u.salt }

// SetSalt validates and sets the salt.
func (u *User) SetSalt(raw any) error {
	salt, err := field.Salt("salt", raw)
	if err != nil {
		return err
	}
	u.salt = salt
	return nil
}

// AuthenticationToken returns the pending activation or reset token, or nil.
func (u *User) AuthenticationToken() *string { return cloneString(u.authenticationToken) }

// SetAuthenticationToken validates and sets the authentication token.
func (u *User) SetAuthenticationToken(raw any) error {
	token, err := field.AuthToken("authentication token", raw)
	if err != nil {
		return err
	}
	u.authenticationToken = token
	return nil
}

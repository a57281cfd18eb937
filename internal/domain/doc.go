// Package domain contains the storefront value objects: User, Profile,
// Product, OrderHeader and OrderLine. Each maps to one row of the relational
// schema and is either fully valid or not constructed at all.
//
// Constructors accept raw values (strings from a form, integers from a
// driver, nil for NULL) and run them through the validators in package
// field. Fields are unexported; setters re-run the same validation and leave
// the entity untouched when they reject a value. Relationships are plain
// integer keys, never live references.
package domain

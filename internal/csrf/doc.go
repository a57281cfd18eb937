// Package csrf issues and verifies single-use anti-forgery tokens.
//
// A token lives in the user's session under a random, session-scoped name.
// The name and token travel in two hidden form fields; on submission the
// pair is checked against the session and, if it matches, deleted so the same
// pair can never be accepted twice. Any number of pairs may be outstanding in
// one session at a time.
package csrf

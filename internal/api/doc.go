// Package api handles incoming HTTP requests for the CSRF demo: it renders
// the form with fresh hidden token fields, verifies submissions, and maps
// internal errors to status codes and safe messages.
package api

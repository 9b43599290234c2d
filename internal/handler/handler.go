// Package handler is the HTTP layer.
//
// It binds and validates requests with the validation package, runs the
// route's gate checks, calls the service layer and writes the response.
package handler

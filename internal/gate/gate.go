// Package gate holds the ordered checks a route runs between request
// validation and its handler: existence and uniqueness lookups that may
// reject the request before any write happens.
package gate

import "context"

// Check inspects a bound and validated request. A non-nil error stops the
// chain and becomes the response.
type Check[Req any] func(ctx context.Context, req Req) error

// Run executes checks in order and returns the first error.
func Run[Req any](ctx context.Context, req Req, checks ...Check[Req]) error {
	for _, check := range checks {
		if err := check(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

// When runs check only for requests matching cond, e.g. a PATCH that
// supplies the guarded field.
func When[Req any](cond func(req Req) bool, check Check[Req]) Check[Req] {
	return func(ctx context.Context, req Req) error {
		if !cond(req) {
			return nil
		}
		return check(ctx, req)
	}
}

// Package utils provides general-purpose helper utilities used across
// different parts of the application: typed context keys, JSON response
// writing, the resty HTTP client wrapper, bearer token claim decoding and
// UUID helpers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// BusIDCtxKey is the key used to store the validated bus id of a kiosk
// request in the context.
//
//	ctx := context.WithValue(ctx, utils.BusIDCtxKey, busID)
var BusIDCtxKey = contextKey("busID")

// WithBusID returns a copy of ctx carrying busID.
func WithBusID(ctx context.Context, busID string) context.Context {
	return context.WithValue(ctx, BusIDCtxKey, busID)
}

// GetBusIDFromContext retrieves the bus id from the context.
//
// ok is false when the value is missing, has an unexpected type or is empty.
func GetBusIDFromContext(ctx context.Context) (string, bool) {
	busID, ok := ctx.Value(BusIDCtxKey).(string)
	return busID, ok && busID != ""
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Sentinel errors classifying calculation failures. Validation failures wrap
// one of these with field context, so callers can branch on errors.Is without
// parsing messages.
var (
	// ErrInvalidInput marks a structurally unusable stage input: a zero or
	// non-finite main power, a non-positive loss factor, or a malformed
	// simulation request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrParameterRange marks a parameter record value outside its documented
	// bounds, such as a negative price or operating hours beyond one year.
	ErrParameterRange = errors.New("parameter out of range")
)

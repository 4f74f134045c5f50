package store

import "errors"

// Domain-level store error sentinels.
var (
	// Swap request errors
	ErrRequestNotFound = errors.New("swap request not found")

	// Member errors
	ErrMemberNotFound = errors.New("member not found")

	// Skill listing errors
	ErrListingNotFound = errors.New("skill listing not found")
)

package repository

import "errors"

var (
	// ErrNotFound covers absent users and EAs alike; callers wrap it with
	// entity-specific sentinels.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when an insert hits the unique email index.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrAlreadyOwned is returned when a purchase insert hits the
	// (user_id, ea_id) unique index.
	ErrAlreadyOwned = errors.New("ea already purchased")
)

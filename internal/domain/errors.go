package domain

import "errors"

// Store-level sentinels. Repositories translate driver errors into these so
// use cases never depend on gorm or pgx.
var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate record")
	ErrSlotLocked = errors.New("slot is being booked")
)

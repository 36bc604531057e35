package constants

import "time"

// ReferenceSlot is the roster slot every head-to-head record is measured against.
const ReferenceSlot = 0

const (
	ShutdownTimeout = 5 * time.Second
)

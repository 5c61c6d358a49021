package utils

import (
	"strconv"
	"time"
)

// Normalizers for history snapshots: every card field is compared and
// recorded as text, so timestamps and ids need one canonical rendering.

func TimeString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func UintString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func UintPtrString(v *uint) *string {
	if v == nil {
		return nil
	}
	s := UintString(*v)
	return &s
}

func StringPtr(s string) *string {
	return &s
}

package handler

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// Helper functions for type conversions between API types and internal models

// stringPtr creates a pointer to a string
func stringPtr(s string) *string {
	return &s
}

// derefString returns the pointed-to string or "" for nil
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// derefInt returns the pointed-to int or 0 for nil
func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

// dateToTime converts types.Date to time.Time
func dateToTime(d types.Date) time.Time {
	return d.Time
}

// datePtrToTime converts *types.Date to *time.Time
func datePtrToTime(d *types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

package utils

import "strings"

func GetStringValue(ptr *string) string {
	if ptr != nil {
		return *ptr
	}
	return ""
}

// NilIfBlank turns empty or whitespace-only optional strings into nil.
func NilIfBlank(ptr *string) *string {
	if ptr == nil || strings.TrimSpace(*ptr) == "" {
		return nil
	}
	return ptr
}

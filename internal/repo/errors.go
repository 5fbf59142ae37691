package repo

import "strings"

// IsDuplicate sniffs unique-violation errors by message instead of driver
// error codes, so postgres, mysql and sqlite all translate the same way.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}

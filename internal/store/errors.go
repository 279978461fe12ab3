package store

import (
	"errors"
	"strings"

	mysqlDriver "github.com/go-sql-driver/mysql"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrIdentityNotFound = errors.New("identity record not found")
	ErrProfileExists    = errors.New("identity already has a profile")
	ErrSkillNotFound    = errors.New("skill not found")
)

// IsDuplicate reports whether err is a unique constraint violation raised by
// the database.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}

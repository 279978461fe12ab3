package store

import (
	"errors"
	"fmt"
	"testing"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicate(t *testing.T) {
	assert.False(t, IsDuplicate(nil))
	assert.True(t, IsDuplicate(&mysqlDriver.MySQLError{Number: 1062, Message: "Duplicate entry 'x'"}))
	assert.True(t, IsDuplicate(fmt.Errorf("wrap: %w", &mysqlDriver.MySQLError{Number: 1062})))
	assert.False(t, IsDuplicate(&mysqlDriver.MySQLError{Number: 1452, Message: "foreign key"}))
	assert.True(t, IsDuplicate(errors.New("UNIQUE constraint failed: users.username")))
	assert.True(t, IsDuplicate(errors.New(`duplicate key value violates unique constraint "idx_users_username"`)))
	assert.False(t, IsDuplicate(errors.New("connection refused")))
}

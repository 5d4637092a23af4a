package database

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const (
	ErrCodeDuplicateEntry       = 1062
	ErrCodeForeignKeyConstraint = 1452
)

var ErrNotFound = errors.New("not found")

func isViolationOfConstraint(err error, constraintName string) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		if mysqlErr.Number == ErrCodeDuplicateEntry || mysqlErr.Number == ErrCodeForeignKeyConstraint {
			// MySQL only names the violated key in the message text
			if strings.Contains(mysqlErr.Message, constraintName) {
				return true
			}
		}
	}

	return false
}

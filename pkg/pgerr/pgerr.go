package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// Коды SQLSTATE, которые обрабатываются репозиториями
const (
	UniqueViolation      = "23505"
	ExclusionViolation   = "23P01"
	SerializationFailure = "40001"
)

// HasCode проверяет, что err содержит ошибку PostgreSQL с указанным SQLSTATE
func HasCode(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}

package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, которые сервис обрабатывает отдельно
const (
	CodeUniqueViolation     pq.ErrorCode = "23505"
	CodeForeignKeyViolation pq.ErrorCode = "23503"
	CodeInvalidTextRep      pq.ErrorCode = "22P02"
)

// IsUniqueViolation проверяет нарушение уникального индекса
// Если constraint не пустой, дополнительно сверяет имя ограничения
func IsUniqueViolation(err error, constraint string) bool {
	return is(err, CodeUniqueViolation, constraint)
}

// IsForeignKeyViolation проверяет нарушение внешнего ключа
func IsForeignKeyViolation(err error) bool {
	return is(err, CodeForeignKeyViolation, "")
}

// IsInvalidTextRepresentation проверяет ошибку приведения типа (например, некорректный uuid)
func IsInvalidTextRepresentation(err error) bool {
	return is(err, CodeInvalidTextRep, "")
}

func is(err error, code pq.ErrorCode, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != code {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

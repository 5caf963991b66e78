package postgres

import (
	"strings"
)

// Postgres - Store implementation backed by the primary postgres
// database. All methods return net/http status codes alongside values.
type Postgres struct{}

// IsDuplicateRecordError - Unique constraint violations double as
// idempotency locks in the provisioning flow; callers fall back to
// reading the existing row instead of erroring.
func IsDuplicateRecordError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}

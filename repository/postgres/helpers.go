package postgres

import "time"

const maxPageSize = 100

// limitArg caps positive page sizes and maps a non-positive limit to NULL,
// which Postgres treats as LIMIT ALL. Internal readers such as the digest
// composer rely on the unbounded form to see every row.
func limitArg(limit int) interface{} {
	if limit <= 0 {
		return nil
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

func nullTime(t *time.Time) interface{} {
	if t == nil || t.IsZero() {
		return nil
	}
	return *t
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

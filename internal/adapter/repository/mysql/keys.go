package mysql

import "math"

// storableID reports whether id fits a signed BIGINT key. Larger ids cannot name a row,
// and go-sqlite3 rejects them outright instead of matching nothing.
func storableID(id uint64) bool { return id <= math.MaxInt64 }

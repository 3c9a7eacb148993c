package models

import (
	"fmt"
	"sync"
	"time"
)

var idMu sync.Mutex
var lastID int64

// NewID builds a record identifier of the form "{prefix}-{timestamp}". The
// timestamp is the current time in milliseconds, bumped when two calls land
// in the same millisecond so identifiers stay unique and monotonic within a
// process.
func NewID(prefix string) string {
	idMu.Lock()
	defer idMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now

	return fmt.Sprintf("%s-%d", prefix, now)
}

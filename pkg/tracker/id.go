package tracker

import (
	"fmt"
	"math/rand"
	"time"
)

// NewID returns an id unique enough for a single-user collection: the
// current unix-millisecond timestamp plus a three digit random suffix so
// that ids minted within the same millisecond still differ.
func NewID() string {
	return fmt.Sprintf("%d%03d", time.Now().UnixMilli(), rand.Intn(1000))
}

package rename

import (
	"path/filepath"
	"sync"
)

// claims tracks the paths a run has taken or vacated so far. Dry runs never
// touch the disk, so the executor consults claims before the filesystem to
// report the conflicts a real run would hit. All methods are goroutine-safe.
type claims struct {
	mu     sync.Mutex
	owners map[string]string // destination → source that took it
	freed  map[string]bool   // sources moved away earlier in the run
}

func newClaims() *claims {
	return &claims{
		owners: make(map[string]string),
		freed:  make(map[string]bool),
	}
}

// owner returns the source that already claimed path, if any.
func (c *claims) owner(path string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	src, ok := c.owners[filepath.Clean(path)]
	return src, ok
}

// vacated reports whether an earlier rename in this run moved path away.
func (c *claims) vacated(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.freed[filepath.Clean(path)]
}

// record marks dst as taken by src and src as free.
func (c *claims) record(src, dst string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	src, dst = filepath.Clean(src), filepath.Clean(dst)
	c.owners[dst] = src
	delete(c.owners, src)
	c.freed[src] = true
	delete(c.freed, dst)
}

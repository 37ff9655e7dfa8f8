package report

import (
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// reportCache memoizes generated text by prompt fingerprint. A nil cache
// is valid and never hits.
type reportCache struct {
	entries *lru.Cache[uint64, string]
}

func newReportCache(size int) (*reportCache, error) {
	if size <= 0 {
		return nil, nil
	}
	entries, err := lru.New[uint64, string](size)
	if err != nil {
		return nil, err
	}
	return &reportCache{entries: entries}, nil
}

func (c *reportCache) get(key uint64) (string, bool) {
	if c == nil {
		return "", false
	}
	return c.entries.Get(key)
}

func (c *reportCache) add(key uint64, text string) {
	if c == nil {
		return
	}
	c.entries.Add(key, text)
}

// cacheKey fingerprints the parts that determine a generation.
func cacheKey(parts ...string) uint64 {
	d := xxhash.New()
	for _, p := range parts {
		d.WriteString(p)
		d.Write([]byte{0})
	}
	return d.Sum64()
}

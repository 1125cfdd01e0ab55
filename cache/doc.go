// Package cache provides an in-memory result cache for expensive
// extraction work, keyed on document identity, operation name and
// extraction parameters.
//
// The cache is bounded two ways: a maximum entry count enforced by
// least-recently-used eviction, and a maximum entry age enforced lazily
// at lookup time. Payloads are opaque strings, stored and returned
// byte-for-byte:
//
//	c, err := cache.New(cache.DefaultConfig())
//	if err != nil {
//	    // handle error
//	}
//	c.Set(path, "text_extract", params, payload)
//	if payload, ok := c.Get(path, "text_extract", params); ok {
//	    // cache hit
//	}
//
// All methods are safe for concurrent use. The cache does not deduplicate
// concurrent computations for the same key: two simultaneous misses may
// both compute, and whichever Set lands last wins.
package cache

package domain

import "strings"

// CacheMode is the per-lookup decision on how the route cache is used.
type CacheMode string

const (
	// CacheModeLivemode reads from and writes to the cache, serving cached routes.
	CacheModeLivemode CacheMode = "livemode"
	// CacheModeDarkmode disables the cache entirely for the lookup.
	CacheModeDarkmode CacheMode = "darkmode"
	// CacheModeTapcompare reads and writes like Livemode while the caller
	// still computes fresh routes and compares them against the cache.
	CacheModeTapcompare CacheMode = "tapcompare"
)

// ParseCacheMode parses a cache mode, ignoring case.
func ParseCacheMode(cacheModeStr string) (CacheMode, error) {
	switch CacheMode(strings.ToLower(strings.TrimSpace(cacheModeStr))) {
	case CacheModeLivemode:
		return CacheModeLivemode, nil
	case CacheModeDarkmode:
		return CacheModeDarkmode, nil
	case CacheModeTapcompare:
		return CacheModeTapcompare, nil
	default:
		return "", InvalidCacheModeError{CacheMode: cacheModeStr}
	}
}

// IsDark returns true if the cache must not be touched.
func (m CacheMode) IsDark() bool {
	return m == CacheModeDarkmode
}

// String implements fmt.Stringer.
func (m CacheMode) String() string {
	return string(m)
}

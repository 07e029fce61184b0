package offline

import (
	"regexp"
	"strings"
)

// apiCachePatterns lists the read endpoints whose responses are worth
// serving while offline
var apiCachePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^/api/dashboard/stats$`),
	regexp.MustCompile(`^/api/tables$`),
	regexp.MustCompile(`^/api/categories$`),
	regexp.MustCompile(`^/api/menu-items`),
	regexp.MustCompile(`^/api/inventory`),
	regexp.MustCompile(`^/api/staff`),
}

// Cacheable reports whether a GET against path should use the cache-first
// strategy
func Cacheable(path string) bool {
	for _, p := range apiCachePatterns {
		if p.MatchString(path) {
			return true
		}
	}
	return false
}

// InvalidationRule maps a mutated endpoint prefix to the cached paths the
// mutation makes stale. The mapping is data, not logic.
type InvalidationRule struct {
	Prefix      string
	Invalidates []*regexp.Regexp
}

var invalidationRules = []InvalidationRule{
	{"/api/orders", []*regexp.Regexp{
		regexp.MustCompile(`^/api/orders`),
		regexp.MustCompile(`^/api/dashboard/stats$`),
		regexp.MustCompile(`^/api/tables$`),
	}},
	{"/api/tables", []*regexp.Regexp{
		regexp.MustCompile(`^/api/tables$`),
	}},
	{"/api/inventory", []*regexp.Regexp{
		regexp.MustCompile(`^/api/inventory`),
		regexp.MustCompile(`^/api/dashboard/stats$`),
	}},
	{"/api/staff", []*regexp.Regexp{
		regexp.MustCompile(`^/api/staff`),
	}},
	{"/api/menu-items", []*regexp.Regexp{
		regexp.MustCompile(`^/api/menu-items`),
	}},
	{"/api/categories", []*regexp.Regexp{
		regexp.MustCompile(`^/api/categories$`),
	}},
}

// invalidationPatterns returns the union of the pattern sets of every rule
// whose prefix matches the mutated path. All matching rules apply, so an
// endpoint matching multiple prefixes misses no invalidation.
func invalidationPatterns(path string) []*regexp.Regexp {
	var patterns []*regexp.Regexp
	for _, rule := range invalidationRules {
		if strings.HasPrefix(path, rule.Prefix) {
			patterns = append(patterns, rule.Invalidates...)
		}
	}
	return patterns
}

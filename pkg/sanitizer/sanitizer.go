package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy *bluemonday.Policy
	initOnce  sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// UGCPolicy keeps the formatting goldmark produces and drops anything active
		ugcPolicy = bluemonday.UGCPolicy()
		ugcPolicy.RequireNoFollowOnLinks(true)
	})
}

// SafeHTML drops scripts, event handlers and javascript: URLs from rendered HTML.
func SafeHTML(s string) string {
	initPolicies()
	return ugcPolicy.Sanitize(s)
}

package query

import (
	"strings"

	"golang.org/x/text/cases"
)

// folder applies Unicode case folding. The Caser keeps state between
// calls, so a folder must not be shared between goroutines; each query
// pass creates its own.
type folder struct {
	caser cases.Caser
}

func newFolder() *folder {
	return &folder{caser: cases.Fold()}
}

func (f *folder) fold(s string) string {
	f.caser.Reset()
	return f.caser.String(s)
}

// containsAny reports whether the folded form of haystack contains any of
// the already folded needles.
func (f *folder) containsAny(haystack string, foldedNeedles []string) bool {
	text := f.fold(haystack)
	for _, n := range foldedNeedles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

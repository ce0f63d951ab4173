package common

import (
	"github.com/gertd/go-pluralize"
)

// Plural renders a count with a correctly pluralized noun ("1 file",
// "3 files").
func Plural(count int, word string) string {
	pc := pluralize.NewClient()
	return pc.Pluralize(word, count, true)
}

// Package readtime estimates how long a piece of content takes to read.
package readtime

import "strings"

// wordsPerMinute is the assumed adult reading speed.
const wordsPerMinute = 200

// Estimate returns the reading time in whole minutes, rounded up.
// Word count is the number of whitespace-delimited tokens.
func Estimate(content string) int {
	words := len(strings.Fields(content))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

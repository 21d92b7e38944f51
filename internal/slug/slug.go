// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
// A Generator can be configured with an extra alphabet range so that titles
// written in non-Latin scripts still produce usable slugs.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// maxLen is the maximum slug length in runes.
const maxLen = 100

// DefaultExtraAlphabet keeps the Arabic/Persian Unicode block, so
// Farsi titles survive sanitization.
const DefaultExtraAlphabet = `\x{0600}-\x{06FF}`

var (
	// whitespace matches runs of whitespace to be collapsed into one hyphen.
	whitespace = regexp.MustCompile(`\s+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generator produces slugs. The zero value is not usable; construct one with
// New or Default.
type Generator struct {
	strip *regexp.Regexp
}

// New creates a Generator whose slugs may additionally contain characters
// from the given regexp character-class fragment (e.g. `\x{0600}-\x{06FF}`).
// An empty fragment yields plain [a-z0-9-] slugs.
func New(extraAlphabet string) (*Generator, error) {
	strip, err := regexp.Compile(`[^a-z0-9` + extraAlphabet + ` -]`)
	if err != nil {
		return nil, fmt.Errorf("compile slug alphabet: %w", err)
	}
	return &Generator{strip: strip}, nil
}

// Default returns a Generator with the default extra alphabet.
func Default() *Generator {
	g, err := New(DefaultExtraAlphabet)
	if err != nil {
		// The default alphabet is a compile-time constant; this cannot fail.
		panic(err)
	}
	return g
}

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
//
// The result is lowercase, stripped of characters outside the configured
// alphabet, hyphen-separated, free of leading/trailing/doubled hyphens, and
// at most 100 runes long. It may be empty; see WithFallback.
func (g *Generator) Generate(s string) string {
	result := strings.ToLower(s)
	result = g.strip.ReplaceAllString(result, "")
	result = whitespace.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	if r := []rune(result); len(r) > maxLen {
		result = strings.Trim(string(r[:maxLen]), "-")
	}
	return result
}

// WithFallback generates a slug from s, substituting "<kind>-<epoch millis>"
// when sanitization empties the string, so the result is never empty.
func (g *Generator) WithFallback(kind, s string) string {
	if slug := g.Generate(s); slug != "" {
		return slug
	}
	return fmt.Sprintf("%s-%d", kind, time.Now().UnixMilli())
}

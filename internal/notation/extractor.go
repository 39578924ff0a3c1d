// In file: internal/notation/extractor.go

// Package notation extracts tool invocations written in the fixed
// `TOOL: name(arg1, arg2, ...)` notation from free-form model output.
//
// Extraction is a single regular-expression scan over the whole text. The
// notation forbids nested calls, so an argument list never contains ')' and
// arguments split on plain commas.
package notation

import (
	"regexp"
	"strings"
)

// toolPattern matches one invocation. Group 1 is the tool name, group 2 the raw
// argument list.
var toolPattern = regexp.MustCompile(`TOOL:\s*(\w+)\(([^)]*)\)`)

// Invocation is one parsed TOOL: request.
type Invocation struct {
	// Name is the tool identifier.
	Name string
	// RawArgs holds the trimmed, unquoted argument tokens in order.
	RawArgs []string
	// Start and End are the byte offsets of the match in the source text.
	Start, End int
}

// Extract returns every invocation in text, left to right and non-overlapping.
// It returns nil when the text holds no tool notation.
func Extract(text string) []Invocation {
	matches := toolPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	invocations := make([]Invocation, 0, len(matches))
	for _, m := range matches {
		invocations = append(invocations, Invocation{
			Name:    text[m[2]:m[3]],
			RawArgs: SplitArgs(text[m[4]:m[5]]),
			Start:   m[0],
			End:     m[1],
		})
	}
	return invocations
}

// SplitArgs splits a raw argument list on commas. Each token loses surrounding
// whitespace and then one layer of quote characters; blank tokens are dropped,
// so a trailing comma is harmless.
func SplitArgs(raw string) []string {
	var args []string
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		args = append(args, unquote(strings.TrimSpace(part)))
	}
	return args
}

func unquote(token string) string {
	if token != "" && isQuote(token[0]) {
		token = token[1:]
	}
	if token != "" && isQuote(token[len(token)-1]) {
		token = token[:len(token)-1]
	}
	return token
}

func isQuote(c byte) bool {
	return c == '\'' || c == '"'
}

// LastEnd returns the byte offset just past the final invocation, or 0 when
// there is none.
func LastEnd(invocations []Invocation) int {
	if len(invocations) == 0 {
		return 0
	}
	return invocations[len(invocations)-1].End
}

// Trailing returns the trimmed text after the last invocation. Models usually
// put their concluding sentence there.
func Trailing(text string, invocations []Invocation) string {
	return strings.TrimSpace(text[LastEnd(invocations):])
}

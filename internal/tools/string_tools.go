// In file: internal/tools/string_tools.go
package tools

import (
	"strings"
	"unicode"
)

const vowels = "aeiouAEIOU"

// text extracts the single string operand. The reasoner always passes the raw
// token as a string, so count_letters(add_result) counts "add_result"; other
// values from direct callers are counted in their rendered form.
func text(arg Value) string {
	if arg.Kind == KindString {
		return arg.Str
	}
	return arg.String()
}

// NewCountVowelsTool returns count_vowels(s).
func NewCountVowelsTool() Tool {
	return Tool{
		Name:        "count_vowels",
		Signature:   "count_vowels(s)",
		Description: "Count vowels in a string",
		Class:       ClassStringSingle,
		Arity:       1,
		Func: func(args []Value) (Value, error) {
			count := 0
			for _, r := range text(args[0]) {
				if strings.ContainsRune(vowels, r) {
					count++
				}
			}
			return Integer(count), nil
		},
	}
}

// NewCountLettersTool returns count_letters(s).
func NewCountLettersTool() Tool {
	return Tool{
		Name:        "count_letters",
		Signature:   "count_letters(s)",
		Description: "Count letters in a string",
		Class:       ClassStringSingle,
		Arity:       1,
		Func: func(args []Value) (Value, error) {
			count := 0
			for _, r := range text(args[0]) {
				if unicode.IsLetter(r) {
					count++
				}
			}
			return Integer(count), nil
		},
	}
}

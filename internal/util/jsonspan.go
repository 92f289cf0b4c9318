package util

import (
	"regexp"

	"github.com/tidwall/gjson"
)

var (
	objectSpan = regexp.MustCompile(`(?s)\{.*\}`)
	arraySpan  = regexp.MustCompile(`(?s)\[.*\]`)
)

// ExtractJSONObject returns the greedy first-"{" to last-"}" span of text when
// that span is valid JSON.
func ExtractJSONObject(text string) (string, bool) {
	return validSpan(objectSpan, text)
}

// ExtractJSONArray is ExtractJSONObject for "[" ... "]" spans.
func ExtractJSONArray(text string) (string, bool) {
	return validSpan(arraySpan, text)
}

func validSpan(re *regexp.Regexp, text string) (string, bool) {
	span := re.FindString(text)
	if span == "" || !gjson.Valid(span) {
		return "", false
	}
	return span, true
}

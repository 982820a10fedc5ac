package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	reSeparators      = regexp.MustCompile(`[\s\-]+`)
	reTrimUnderscores = regexp.MustCompile(`_+`)
	reLettersOnly     = regexp.MustCompile(`^\p{L}+$`)
)

func trimAndLower(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return s
}

func trimAndUpper(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	return s
}

func collapseUnderscores(s string) string {
	s = reTrimUnderscores.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

func NormalizeStepName(input string) string {
	p := Pipeline{
		trimAndLower,
		func(s string) string { return reSeparators.ReplaceAllString(s, "_") },
		collapseUnderscores,
	}
	return p.Apply(input)
}

func NormalizeElement(input string) string {
	s := strings.TrimSpace(input)
	if !reLettersOnly.MatchString(s) {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func NormalizeTag(input string) string {
	return trimAndUpper(input)
}

// NormalizeStereo upper-cases E/Z and lower-cases the word forms.
func NormalizeStereo(input string) string {
	s := strings.TrimSpace(input)
	switch up := strings.ToUpper(s); up {
	case "E", "Z":
		return up
	case "CIS", "TRANS", "ANY":
		return strings.ToLower(s)
	default:
		return s
	}
}

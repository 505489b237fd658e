package wc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Contents is the text of a file, already loaded in memory.
type Contents string

// Metric computes one measurement of the contents. The returned Report has
// exactly one count set.
type Metric func(Contents) Report

func Bytes(fc Contents) Report {
	return Report{
		Bytes: intPtr(len(fc)),
	}
}

// Lines counts the segments separated by a newline. The last segment is
// counted even when empty, so an empty file has one line. Carriage returns
// are part of the segments.
func Lines(fc Contents) Report {
	return Report{
		Lines: intPtr(strings.Count(string(fc), "\n") + 1),
	}
}

func Words(fc Contents) Report {
	var (
		str   = string(fc)
		count int
		word  bool
	)
	for len(str) > 0 {
		r, z := utf8.DecodeRuneInString(str)
		str = str[z:]
		if isBlank(r) {
			word = false
			continue
		}
		if !word {
			count++
		}
		word = true
	}
	return Report{
		Words: intPtr(count),
	}
}

func isBlank(r rune) bool {
	return unicode.IsSpace(r)
}

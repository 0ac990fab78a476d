package utils

import (
	"strings"
	"unicode/utf8"
)

type Number interface {
	int | int64 | int32 | uint32 | uint64 | float64
}

func Max[N Number](a, b N) N {
	if a > b {
		return a
	} else {
		return b
	}
}

func Min[N Number](a, b N) N {
	if a < b {
		return a
	} else {
		return b
	}
}

// Capitalize 首字母大写，species -> Species
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return strings.ToUpper(string(r)) + s[size:]
}

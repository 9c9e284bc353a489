// Package isbn validates ISBN-13 identifiers.
package isbn

import "strings"

const (
	// Length is the number of digits in an ISBN-13.
	Length = 13

	prefixBookland  = "978"
	prefixMusicland = "979"
)

// CheckWellFormed reports whether s is a well formed ISBN-13: thirteen
// digits, a Bookland prefix (978 or 979) and a weighted digit sum that is
// divisible by ten. Digits at odd positions (zero based) carry weight 3.
// The empty string is never well formed.
func CheckWellFormed(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < Length; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	if !strings.HasPrefix(s, prefixBookland) && !strings.HasPrefix(s, prefixMusicland) {
		return false
	}
	sum := 0
	for i := 0; i < Length; i++ {
		v := int(s[i] - '0')
		if i%2 == 1 {
			v *= 3
		}
		sum += v
	}
	return sum%10 == 0
}

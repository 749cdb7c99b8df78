// Package stringutil provides small string helpers shared by the reporter.
package stringutil

// Truncate returns the first n characters of s. Characters are counted as
// Unicode code points, so multi-byte text is never cut mid-rune.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

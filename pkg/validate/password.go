package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SpecialChars is the set of characters accepted as "special" by the
// password rules below.
const SpecialChars = "!@#$%^&*(),.?\":{}|<>"

var predictablePattern = regexp.MustCompile(`^[A-Z][a-z]+\d+[!@#$%^&*(),.?":{}|<>]?$`)

// ValidatePassword checks a candidate password against every rule and returns
// the full ordered list of violations. An empty slice means the password is
// acceptable. Rules are evaluated independently so the caller can report all
// problems at once instead of the first one.
func ValidatePassword(password string) []string {
	var errs []string

	if password == "" {
		return []string{"Password is required"}
	}

	// Length is counted in characters, not bytes, so multibyte runes weigh one.
	if n := utf8.RuneCountInString(password); n < 8 {
		errs = append(errs, fmt.Sprintf("Password must be at least 8 characters long (currently %d characters)", n))
	}
	if !containsFunc(password, unicode.IsUpper) {
		errs = append(errs, "Password must contain at least one uppercase letter (A-Z)")
	}
	if !containsFunc(password, unicode.IsLower) {
		errs = append(errs, "Password must contain at least one lowercase letter (a-z)")
	}
	if !containsFunc(password, unicode.IsDigit) {
		errs = append(errs, "Password must contain at least one number (0-9)")
	}
	if !strings.ContainsAny(password, SpecialChars) {
		errs = append(errs, "Password must contain at least one special character from: "+SpecialChars)
	}
	if strings.Contains(strings.ToLower(password), "password") {
		errs = append(errs, `Password cannot contain the word "password" (try using a unique phrase instead)`)
	}
	if hasRepeatedRun(password, 3) {
		errs = append(errs, `Password cannot contain repeated characters (e.g., "aaa" - try mixing different characters)`)
	}
	if predictablePattern.MatchString(password) {
		errs = append(errs, `Password is too predictable (avoid patterns like "Password123!")`)
	}
	if containsOnlyDigits(password) {
		errs = append(errs, "Password cannot consist of only numbers - mix in letters and special characters")
	}

	return errs
}

func containsFunc(s string, f func(rune) bool) bool {
	for _, r := range s {
		if f(r) {
			return true
		}
	}
	return false
}

// hasRepeatedRun reports whether any character appears n or more times in a
// row. Backreferences are not available in RE2, hence the manual scan.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	count := 0
	for _, r := range s {
		if r == prev {
			count++
		} else {
			prev = r
			count = 1
		}
		if count >= n {
			return true
		}
	}
	return false
}

func containsOnlyDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

package validation

import (
	"regexp"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.domain.org"}
	for _, v := range valid {
		assert.True(t, IsValidEmail(v), v)
	}

	invalid := []string{"", "plainaddress", "@missinglocal.com", "user@", "user@nodot"}
	for _, v := range invalid {
		assert.False(t, IsValidEmail(v), v)
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abc", "user.name", "user_name-42", "a1b2c3"}
	for _, v := range valid {
		assert.True(t, IsValidUsername(v), v)
	}

	invalid := []string{"", "ab", "has space", "way-too-long-username-exceeding-thirty-chars", "emoji😀"}
	for _, v := range invalid {
		assert.False(t, IsValidUsername(v), v)
	}
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("eightch8"))
	assert.False(t, IsValidPassword("short"))
	assert.False(t, IsValidPassword(""))
}

func TestStringValidation(t *testing.T) {
	assert.False(t, NewStringValidation("").Validate())
	assert.True(t, NewStringValidation("").WithRequired(false).Validate())

	assert.False(t, NewStringValidation("ab").WithMinLength(3).Validate())
	assert.True(t, NewStringValidation("abc").WithMinLength(3).Validate())

	assert.False(t, NewStringValidation("abcd").WithMaxLength(3).Validate())

	digits := regexp.MustCompile(`^\d+$`)
	assert.True(t, NewStringValidation("12345").WithPattern(digits).Validate())
	assert.False(t, NewStringValidation("12a45").WithPattern(digits).Validate())
}

func TestIsValidUsernameProperty(t *testing.T) {
	allowed := func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return true
		case r == '.' || r == '_' || r == '-':
			return true
		}
		return false
	}

	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringOfN(rapid.RuneFrom(nil, unicode.PrintRanges...), 0, 40, -1).Draw(t, "username")

		want := len(s) >= 3 && len(s) <= 30
		for _, r := range s {
			if !allowed(r) {
				want = false
			}
		}

		if got := IsValidUsername(s); got != want {
			t.Fatalf("IsValidUsername(%q) = %v, want %v", s, got, want)
		}
	})
}

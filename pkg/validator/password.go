package validator

import (
	"strings"
	"unicode"
)

const MinPasswordLength = 8

// commonPasswords is a short deny-list of the most frequently leaked passwords.
var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "12345678": {}, "123456789": {},
	"1234567890": {}, "qwerty123": {}, "qwertyuiop": {}, "iloveyou": {}, "admin123": {},
	"welcome1": {}, "letmein1": {}, "abc12345": {}, "11111111": {}, "00000000": {},
	"sunshine": {}, "football": {}, "baseball": {}, "princess": {}, "trustno1": {},
}

// ValidatePassword applies the password strength policy and returns every
// violated rule. attrs are user attributes (username, email, names) the
// password must not resemble.
func ValidatePassword(password string, attrs ...string) []string {
	var messages []string

	if err := validate.Var(password, "min=8"); err != nil {
		messages = append(messages, "This password is too short. It must contain at least 8 characters.")
	}

	lower := strings.ToLower(password)
	if _, ok := commonPasswords[lower]; ok {
		messages = append(messages, "This password is too common.")
	}

	if password != "" && strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) == -1 {
		messages = append(messages, "This password is entirely numeric.")
	}

	for _, attr := range attrs {
		if similar(lower, attr) {
			messages = append(messages, "The password is too similar to your personal information.")
			break
		}
	}

	return messages
}

func similar(password, attr string) bool {
	attr = strings.ToLower(strings.TrimSpace(attr))
	if at := strings.IndexByte(attr, '@'); at > 0 {
		attr = attr[:at]
	}
	if len(attr) < 3 || password == "" {
		return false
	}
	return strings.Contains(password, attr) || strings.Contains(attr, password)
}

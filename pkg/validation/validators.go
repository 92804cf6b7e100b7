package validation

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("single_line", SingleLine)
	_ = v.RegisterValidation("no_control", NoControl)
}

// SingleLine rejects values containing CR or LF. Sender name and email end up in
// mail headers, so a line break there would let a visitor inject headers.
func SingleLine(fl validator.FieldLevel) bool {
	return IsSingleLine(fl.Field().String())
}

// IsSingleLine is SingleLine for values checked outside struct tags.
func IsSingleLine(s string) bool {
	return !strings.ContainsAny(s, "\r\n")
}

// NoControl rejects control characters other than tab, CR and LF.
func NoControl(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsControl(r) && r != '\t' && r != '\r' && r != '\n' {
			return false
		}
	}
	return true
}

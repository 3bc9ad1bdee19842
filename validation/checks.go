package validation

import (
	"context"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/caporal-go/caporal/errs"
	"github.com/caporal-go/caporal/internal/util"
)

// ValidatorFunc validates the string form of a value and returns an error if invalid
type ValidatorFunc func(value string) error

// Check adapts a ValidatorFunc to a Func validator. The value is passed
// through unchanged when the check succeeds.
func Check(fn ValidatorFunc) Func {
	return Func{
		Predicate: func(_ context.Context, value any) (any, error) {
			if err := fn(util.FormatValue(value)); err != nil {
				return nil, err
			}
			return value, nil
		},
	}
}

// All combines multiple validators - all must pass
func All(validators ...ValidatorFunc) ValidatorFunc {
	return func(value string) error {
		for _, validator := range validators {
			if err := validator(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// Any combines multiple validators - at least one must pass
func Any(validators ...ValidatorFunc) ValidatorFunc {
	return func(value string) error {
		var failures []string
		for _, validator := range validators {
			err := validator(value)
			if err == nil {
				return nil
			}
			failures = append(failures, err.Error())
		}
		return errs.ErrValidationCombined.WithArgs(strings.Join(failures, "; "))
	}
}

// Email validates email format
func Email() ValidatorFunc {
	return func(value string) error {
		if _, err := mail.ParseAddress(value); err != nil {
			return errs.ErrInvalidEmailFormat.WithArgs(value).Wrap(err)
		}
		return nil
	}
}

// URL validates URL format, optionally restricting the scheme
func URL(schemes ...string) ValidatorFunc {
	return func(value string) error {
		u, err := url.Parse(value)
		if err != nil {
			return errs.ErrInvalidURL.WithArgs(err)
		}

		if len(schemes) > 0 {
			valid := false
			for _, scheme := range schemes {
				if u.Scheme == scheme {
					valid = true
					break
				}
			}
			if !valid {
				return errs.ErrURLSchemeMustBeOneOf.WithArgs(strings.Join(schemes, ", "))
			}
		}

		if u.Host == "" {
			return errs.ErrURLMustHaveHost
		}

		return nil
	}
}

// MinLength validates minimum string length in Unicode characters (not bytes)
func MinLength(min int) ValidatorFunc {
	return func(value string) error {
		if utf8.RuneCountInString(value) < min {
			return errs.ErrMinLength.WithArgs(min, value)
		}
		return nil
	}
}

// MaxLength validates maximum string length in Unicode characters (not bytes)
func MaxLength(max int) ValidatorFunc {
	return func(value string) error {
		if utf8.RuneCountInString(value) > max {
			return errs.ErrMaxLength.WithArgs(max, value)
		}
		return nil
	}
}

// Range validates that a number lies within [min, max]
func Range(min, max float64) ValidatorFunc {
	return func(value string) error {
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errs.ErrNotANumber.WithArgs(value)
		}
		if num < min || num > max {
			return errs.ErrValueBetween.WithArgs(min, max, value)
		}
		return nil
	}
}

// IntRange validates that an integer lies within [min, max]
func IntRange(min, max int) ValidatorFunc {
	return func(value string) error {
		num, err := strconv.Atoi(value)
		if err != nil {
			return errs.ErrValueMustBeInteger.WithArgs(value)
		}
		if num < min || num > max {
			return errs.ErrValueBetween.WithArgs(min, max, value)
		}
		return nil
	}
}

// Min validates a minimum numeric value
func Min(min float64) ValidatorFunc {
	return func(value string) error {
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errs.ErrNotANumber.WithArgs(value)
		}
		if num < min {
			return errs.ErrValueAtLeast.WithArgs(min, value)
		}
		return nil
	}
}

// Max validates a maximum numeric value
func Max(max float64) ValidatorFunc {
	return func(value string) error {
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errs.ErrNotANumber.WithArgs(value)
		}
		if num > max {
			return errs.ErrValueAtMost.WithArgs(max, value)
		}
		return nil
	}
}

// Integer validates that the value is an integer
func Integer() ValidatorFunc {
	return func(value string) error {
		if _, err := strconv.Atoi(value); err != nil {
			return errs.ErrValueMustBeInteger.WithArgs(value)
		}
		return nil
	}
}

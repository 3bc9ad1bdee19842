package errs

import (
	"errors"
	"strings"

	"github.com/caporal-go/caporal/i18n"
)

// Formatter is implemented by errors able to render themselves with a
// specific message provider.
type Formatter interface {
	Format(provider i18n.MessageProvider) string
}

// FormatError renders err with provider when err supports it.
func FormatError(err error, provider i18n.MessageProvider) string {
	if err == nil {
		return ""
	}
	if provider != nil {
		if f, ok := err.(Formatter); ok {
			return f.Format(provider)
		}
	}

	return err.Error()
}

// FieldKind tells whether a FieldError concerns an argument or an option.
type FieldKind int

const (
	ArgumentField FieldKind = iota
	OptionField
)

// Key returns the translation key naming the field kind.
func (k FieldKind) Key() string {
	if k == OptionField {
		return MsgOptionKey
	}

	return MsgArgumentKey
}

// FieldError ties a call-time failure to the argument or option it concerns.
type FieldError struct {
	Kind  FieldKind
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Err.Error()
}

func (e *FieldError) Format(provider i18n.MessageProvider) string {
	return FormatError(e.Err, provider)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// SuggestionError is an unknown command or option error carrying the closest
// known names.
type SuggestionError struct {
	Err         i18n.TranslatableError
	Name        string
	Suggestions []string
}

// NewSuggestionError builds a SuggestionError from a sentinel and the unknown name.
func NewSuggestionError(sentinel i18n.TranslatableError, name string, suggestions []string) *SuggestionError {
	return &SuggestionError{
		Err:         sentinel.WithArgs(name),
		Name:        name,
		Suggestions: suggestions,
	}
}

func (e *SuggestionError) Error() string {
	return e.Format(nil)
}

func (e *SuggestionError) Format(provider i18n.MessageProvider) string {
	msg := e.Err.Format(provider)
	if len(e.Suggestions) == 0 {
		return msg
	}

	quoted := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		quoted[i] = "'" + s + "'"
	}
	hint := i18n.NewError(MsgDidYouMeanKey).WithArgs(strings.Join(quoted, ", "))

	return msg + ". " + hint.Format(provider)
}

func (e *SuggestionError) Unwrap() error {
	return e.Err
}

// SummaryError aggregates every failure collected during one invocation.
type SummaryError struct {
	Command  string
	Synopsis string
	Errors   []error
}

// NewSummaryError creates the aggregated error of a failed invocation.
func NewSummaryError(command, synopsis string, errs []error) *SummaryError {
	return &SummaryError{
		Command:  command,
		Synopsis: synopsis,
		Errors:   errs,
	}
}

func (e *SummaryError) Error() string {
	return e.Format(nil)
}

// Format lists one bullet per failure followed by the command synopsis.
func (e *SummaryError) Format(provider i18n.MessageProvider) string {
	var sb strings.Builder
	sb.WriteString(ErrValidationSummary.Format(provider))
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(FormatError(err, provider))
	}
	if e.Synopsis != "" {
		sb.WriteString("\n\n")
		sb.WriteString(i18n.NewError(MsgSynopsisKey).WithArgs(e.Synopsis).Format(provider))
	}

	return sb.String()
}

func (e *SummaryError) Unwrap() []error {
	return e.Errors
}

func (e *SummaryError) Is(target error) bool {
	return ErrValidationSummary.Is(target)
}

// ActionError is returned when a command action fails or panics.
type ActionError struct {
	Command string
	Cause   error
}

func (e *ActionError) Error() string {
	return e.Format(nil)
}

func (e *ActionError) Format(provider i18n.MessageProvider) string {
	return ErrActionFailed.WithArgs(e.Command).Wrap(e.Cause).Format(provider)
}

func (e *ActionError) Unwrap() error {
	return e.Cause
}

func (e *ActionError) Is(target error) bool {
	return ErrActionFailed.Is(target)
}

// ErrWithProvider renders a TranslatableError with a specific MessageProvider
type ErrWithProvider struct {
	err      error
	provider i18n.MessageProvider
}

// WithProvider binds err to provider so Error() uses that provider's language.
func WithProvider(err error, provider i18n.MessageProvider) error {
	if err == nil {
		return nil
	}

	return &ErrWithProvider{err: err, provider: provider}
}

func (e *ErrWithProvider) Error() string {
	return FormatError(e.err, e.provider)
}

func (e *ErrWithProvider) Unwrap() error {
	return e.err
}

func (e *ErrWithProvider) Is(target error) bool {
	return errors.Is(e.err, target)
}

func (e *ErrWithProvider) As(target interface{}) bool {
	return errors.As(e.err, target)
}

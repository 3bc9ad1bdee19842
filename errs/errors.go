package errs

import (
	"sync"

	"github.com/caporal-go/caporal/i18n"
)

// Setup-time errors: returned while a program is being declared.
var (
	ErrOptionSynopsisSyntax   = i18n.NewError(ErrOptionSynopsisSyntaxKey)
	ErrArgumentSynopsisSyntax = i18n.NewError(ErrArgumentSynopsisSyntaxKey)
	ErrInvalidValidator       = i18n.NewError(ErrInvalidValidatorKey)
	ErrInvalidFlagMask        = i18n.NewError(ErrInvalidFlagMaskKey)
	ErrInvalidPattern         = i18n.NewError(ErrInvalidPatternKey)
	ErrVariadicArgument       = i18n.NewError(ErrVariadicArgumentKey)
	ErrVariadicShortOption    = i18n.NewError(ErrVariadicShortOptionKey)
	ErrDuplicateOption        = i18n.NewError(ErrDuplicateOptionKey)
	ErrDuplicateCommand       = i18n.NewError(ErrDuplicateCommandKey)
	ErrRequiredArgument       = i18n.NewError(ErrRequiredArgumentKey)
	ErrEmptyCommandName       = i18n.NewError(ErrEmptyCommandNameKey)
	ErrCommandNotFound        = i18n.NewError(ErrCommandNotFoundKey)
)

// Call-time errors: collected while an invocation is validated and dispatched.
var (
	ErrUnknownCommand     = i18n.NewError(ErrUnknownCommandKey)
	ErrUnspecifiedCommand = i18n.NewError(ErrUnspecifiedCommandKey)
	ErrUnknownOption      = i18n.NewError(ErrUnknownOptionKey)
	ErrMissingArgument    = i18n.NewError(ErrMissingArgumentKey)
	ErrMissingOption      = i18n.NewError(ErrMissingOptionKey)
	ErrOptionExpectsValue = i18n.NewError(ErrOptionExpectsValueKey)
	ErrTooManyArguments   = i18n.NewError(ErrTooManyArgumentsKey)
	ErrValidationFailed   = i18n.NewError(ErrValidationFailedKey)
	ErrValidationSummary  = i18n.NewError(ErrValidationSummaryKey)
	ErrNoAction           = i18n.NewError(ErrNoActionKey)
	ErrActionFailed       = i18n.NewError(ErrActionFailedKey)
	ErrPanic              = i18n.NewError(ErrPanicKey)
	ErrDiscoveryFailed    = i18n.NewError(ErrDiscoveryFailedKey)
)

// Validator causes, wrapped by ErrValidationFailed.
var (
	ErrNotANumber           = i18n.NewError(ErrNotANumberKey)
	ErrNotABoolean          = i18n.NewError(ErrNotABooleanKey)
	ErrArrayNotAllowed      = i18n.NewError(ErrArrayNotAllowedKey)
	ErrPatternMismatch      = i18n.NewError(ErrPatternMismatchKey)
	ErrNotInChoices         = i18n.NewError(ErrNotInChoicesKey)
	ErrPredicateFailed      = i18n.NewError(ErrPredicateFailedKey)
	ErrInvalidEmailFormat   = i18n.NewError(ErrInvalidEmailFormatKey)
	ErrInvalidURL           = i18n.NewError(ErrInvalidURLKey)
	ErrURLSchemeMustBeOneOf = i18n.NewError(ErrURLSchemeMustBeOneOfKey)
	ErrURLMustHaveHost      = i18n.NewError(ErrURLMustHaveHostKey)
	ErrMinLength            = i18n.NewError(ErrMinLengthKey)
	ErrMaxLength            = i18n.NewError(ErrMaxLengthKey)
	ErrValueBetween         = i18n.NewError(ErrValueBetweenKey)
	ErrValueAtLeast         = i18n.NewError(ErrValueAtLeastKey)
	ErrValueAtMost          = i18n.NewError(ErrValueAtMostKey)
	ErrValueMustBeInteger   = i18n.NewError(ErrValueMustBeIntegerKey)
	ErrValidationCombined   = i18n.NewError(ErrValidationCombinedKey)
)

type builtInErrors struct {
	mu  sync.Mutex
	All []*i18n.TrError
}

var sysErrors = &builtInErrors{
	All: []*i18n.TrError{
		ErrOptionSynopsisSyntax,
		ErrArgumentSynopsisSyntax,
		ErrInvalidValidator,
		ErrInvalidFlagMask,
		ErrInvalidPattern,
		ErrVariadicArgument,
		ErrVariadicShortOption,
		ErrDuplicateOption,
		ErrDuplicateCommand,
		ErrRequiredArgument,
		ErrEmptyCommandName,
		ErrCommandNotFound,
		ErrUnknownCommand,
		ErrUnspecifiedCommand,
		ErrUnknownOption,
		ErrMissingArgument,
		ErrMissingOption,
		ErrOptionExpectsValue,
		ErrTooManyArguments,
		ErrValidationFailed,
		ErrValidationSummary,
		ErrNoAction,
		ErrActionFailed,
		ErrPanic,
		ErrDiscoveryFailed,
		ErrNotANumber,
		ErrNotABoolean,
		ErrArrayNotAllowed,
		ErrPatternMismatch,
		ErrNotInChoices,
		ErrPredicateFailed,
		ErrInvalidEmailFormat,
		ErrInvalidURL,
		ErrURLSchemeMustBeOneOf,
		ErrURLMustHaveHost,
		ErrMinLength,
		ErrMaxLength,
		ErrValueBetween,
		ErrValueAtLeast,
		ErrValueAtMost,
		ErrValueMustBeInteger,
		ErrValidationCombined,
	},
}

// UpdateMessageProvider updates the message provider of every built-in error.
//
// Example:
//
//	bundle := i18n.Default()
//	errs.UpdateMessageProvider(i18n.NewLanguageMessageProvider(bundle, language.German))
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
	sysErrors.mu.Lock()
	for _, e := range sysErrors.All {
		e.SetProvider(provider)
	}
	sysErrors.mu.Unlock()
}

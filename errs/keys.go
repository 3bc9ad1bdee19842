// Package errs holds the translation keys and sentinel errors of caporal.
package errs

const (
	prefixKey = "caporal"
)

const (
	ErrorPrefixKey   = prefixKey + ".error"
	MessagePrefixKey = prefixKey + ".msg"
)

// Setup-time errors
const (
	ErrOptionSynopsisSyntaxKey   = ErrorPrefixKey + ".option_synopsis_syntax"
	ErrArgumentSynopsisSyntaxKey = ErrorPrefixKey + ".argument_synopsis_syntax"
	ErrInvalidValidatorKey       = ErrorPrefixKey + ".invalid_validator"
	ErrInvalidFlagMaskKey        = ErrorPrefixKey + ".invalid_flag_mask"
	ErrInvalidPatternKey         = ErrorPrefixKey + ".invalid_pattern"
	ErrVariadicArgumentKey       = ErrorPrefixKey + ".variadic_argument_not_last"
	ErrVariadicShortOptionKey    = ErrorPrefixKey + ".variadic_short_option"
	ErrDuplicateOptionKey        = ErrorPrefixKey + ".duplicate_option"
	ErrDuplicateCommandKey       = ErrorPrefixKey + ".duplicate_command"
	ErrRequiredArgumentKey       = ErrorPrefixKey + ".required_is_syntactic"
	ErrEmptyCommandNameKey       = ErrorPrefixKey + ".empty_command_name"
	ErrCommandNotFoundKey        = ErrorPrefixKey + ".command_not_found"
)

// Call-time errors
const (
	ErrUnknownCommandKey     = ErrorPrefixKey + ".unknown_command"
	ErrUnspecifiedCommandKey = ErrorPrefixKey + ".unspecified_command"
	ErrUnknownOptionKey      = ErrorPrefixKey + ".unknown_option"
	ErrMissingArgumentKey    = ErrorPrefixKey + ".missing_argument"
	ErrMissingOptionKey      = ErrorPrefixKey + ".missing_option"
	ErrOptionExpectsValueKey = ErrorPrefixKey + ".option_expects_value"
	ErrTooManyArgumentsKey   = ErrorPrefixKey + ".too_many_arguments"
	ErrValidationFailedKey   = ErrorPrefixKey + ".validation_failed"
	ErrValidationSummaryKey  = ErrorPrefixKey + ".validation_summary"
	ErrNoActionKey           = ErrorPrefixKey + ".no_action"
	ErrActionFailedKey       = ErrorPrefixKey + ".action_failed"
	ErrPanicKey              = ErrorPrefixKey + ".panic"
	ErrDiscoveryFailedKey    = ErrorPrefixKey + ".discovery_failed"
)

// Validator failure causes
const (
	ErrNotANumberKey           = ErrorPrefixKey + ".not_a_number"
	ErrNotABooleanKey          = ErrorPrefixKey + ".not_a_boolean"
	ErrArrayNotAllowedKey      = ErrorPrefixKey + ".array_not_allowed"
	ErrPatternMismatchKey      = ErrorPrefixKey + ".pattern_mismatch"
	ErrNotInChoicesKey         = ErrorPrefixKey + ".not_in_choices"
	ErrPredicateFailedKey      = ErrorPrefixKey + ".predicate_failed"
	ErrInvalidEmailFormatKey   = ErrorPrefixKey + ".invalid_email"
	ErrInvalidURLKey           = ErrorPrefixKey + ".invalid_url"
	ErrURLSchemeMustBeOneOfKey = ErrorPrefixKey + ".url_scheme"
	ErrURLMustHaveHostKey      = ErrorPrefixKey + ".url_host"
	ErrMinLengthKey            = ErrorPrefixKey + ".min_length"
	ErrMaxLengthKey            = ErrorPrefixKey + ".max_length"
	ErrValueBetweenKey         = ErrorPrefixKey + ".value_between"
	ErrValueAtLeastKey         = ErrorPrefixKey + ".value_at_least"
	ErrValueAtMostKey          = ErrorPrefixKey + ".value_at_most"
	ErrValueMustBeIntegerKey   = ErrorPrefixKey + ".must_be_integer"
	ErrValidationCombinedKey   = ErrorPrefixKey + ".combined_failed"
)

// Messages used by renderers and error formatting
const (
	MsgArgumentKey      = MessagePrefixKey + ".argument"
	MsgOptionKey        = MessagePrefixKey + ".option"
	MsgDidYouMeanKey    = MessagePrefixKey + ".did_you_mean"
	MsgSynopsisKey      = MessagePrefixKey + ".synopsis"
	MsgUsageKey         = MessagePrefixKey + ".usage"
	MsgCommandsKey      = MessagePrefixKey + ".commands"
	MsgArgumentsKey     = MessagePrefixKey + ".arguments"
	MsgOptionsKey       = MessagePrefixKey + ".options"
	MsgGlobalOptionsKey = MessagePrefixKey + ".global_options"
	MsgRequiredKey      = MessagePrefixKey + ".required"
	MsgOptionalKey      = MessagePrefixKey + ".optional"
	MsgDefaultKey       = MessagePrefixKey + ".default"
	MsgExpectNumberKey  = MessagePrefixKey + ".expect_number"
	MsgExpectStringKey  = MessagePrefixKey + ".expect_string"
	MsgExpectBoolKey    = MessagePrefixKey + ".expect_boolean"
	MsgExpectArrayKey   = MessagePrefixKey + ".expect_array"
	MsgExpectPatternKey = MessagePrefixKey + ".expect_pattern"
	MsgExpectChoiceKey  = MessagePrefixKey + ".expect_choice"
	MsgExpectFuncKey    = MessagePrefixKey + ".expect_function"
	MsgHelpKey          = MessagePrefixKey + ".help"
	MsgVersionKey       = MessagePrefixKey + ".version"
	MsgNoColorKey       = MessagePrefixKey + ".no_color"
	MsgVerboseKey       = MessagePrefixKey + ".verbose"
	MsgQuietKey         = MessagePrefixKey + ".quiet"
	MsgSilentKey        = MessagePrefixKey + ".silent"
)

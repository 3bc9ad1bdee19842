package caporal

import (
	"io"

	"github.com/caporal-go/caporal/i18n"
	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
)

// WithName sets the program name shown in usage output. It defaults to the
// base name of the executable.
func WithName(name string) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.name = name
	}
}

// WithVersion sets the version printed by --version
func WithVersion(version string) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.version = version
	}
}

// WithProgramDescription sets the program description shown in help output
func WithProgramDescription(description string) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.description = description
	}
}

// WithStrictArgsCount sets whether extra positional arguments are an error.
// Commands inherit it unless they override it. Defaults to true.
func WithStrictArgsCount(strict bool) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.strictArgsCount = strict
	}
}

// WithStrictOptions sets whether unknown options are an error. Defaults to true.
func WithStrictOptions(strict bool) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.strictOptions = strict
	}
}

// WithAutoCast sets whether raw values are cast to booleans and numbers.
// Defaults to true.
func WithAutoCast(autoCast bool) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.autoCast = autoCast
	}
}

// WithDDash sets whether tokens after "--" are kept apart in
// ActionParams.DDash instead of being treated as arguments. Defaults to false.
func WithDDash(ddash bool) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.ddash = ddash
	}
}

// WithLogger replaces the program logger
func WithLogger(logger *log.Logger) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.logger = logger
	}
}

// WithStdout sets where help and version are printed
func WithStdout(w io.Writer) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.stdout = w
	}
}

// WithStderr sets where the default logger writes
func WithStderr(w io.Writer) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.stderr = w
	}
}

// WithDiscovery sets the function materializing commands which are not
// registered statically
func WithDiscovery(discover DiscoverFunc) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.discover = discover
	}
}

// WithHelper replaces the help renderer
func WithHelper(helper Helper) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.helper = helper
	}
}

// WithRegistry makes the program use an existing registry, e.g. one shared
// between tests
func WithRegistry(registry *Registry) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.registry = registry
	}
}

// WithBundle replaces the message bundle
func WithBundle(bundle *i18n.Bundle) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.bundle = bundle
	}
}

// WithLanguage sets the language of messages and errors. The closest
// language of the bundle is used; an unsupported language is an error.
func WithLanguage(lang language.Tag) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		if !program.bundle.HasLanguage(lang) {
			matched := program.bundle.Match(lang)
			want, _ := lang.Base()
			got, _ := matched.Base()
			if want != got {
				*err = i18n.ErrLanguageNotFound
				return
			}
			lang = matched
		}
		program.lang = lang
	}
}

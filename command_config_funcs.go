package caporal

// WithAliases sets alternative names for the command
func WithAliases(aliases ...string) ConfigureCommandFunc {
	return func(command *Command) {
		command.aliases = append(command.aliases, aliases...)
	}
}

// WithAction sets the handler run when the command is invoked
func WithAction(action Action) ConfigureCommandFunc {
	return func(command *Command) {
		command.action = action
	}
}

// WithCommandDescription sets the description for the command. This description helps users to understand what the command does.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.description = description
	}
}

// SetStrictArgsCount overrides the program setting: when true, extra
// positional arguments are reported as an error.
func SetStrictArgsCount(strict bool) ConfigureCommandFunc {
	return func(command *Command) {
		command.strictArgsCount = &strict
	}
}

// SetStrictOptions overrides the program setting: when true, unknown options
// are reported as an error.
func SetStrictOptions(strict bool) ConfigureCommandFunc {
	return func(command *Command) {
		command.strictOptions = &strict
	}
}

// SetAutoCast overrides the program setting for casting raw values
func SetAutoCast(autoCast bool) ConfigureCommandFunc {
	return func(command *Command) {
		command.autoCast = &autoCast
	}
}

// SetDDash overrides the program setting for "--" handling
func SetDDash(ddash bool) ConfigureCommandFunc {
	return func(command *Command) {
		command.ddash = &ddash
	}
}

// SetCommandVisible hides the command from help output when false
func SetCommandVisible(visible bool) ConfigureCommandFunc {
	return func(command *Command) {
		command.visible = visible
	}
}

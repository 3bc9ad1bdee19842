package parse

import "github.com/google/shlex"

// Split breaks a command line into tokens using shell quoting rules. It
// does not expand globs, variables or redirections.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	if args == nil {
		args = []string{}
	}

	return args, nil
}

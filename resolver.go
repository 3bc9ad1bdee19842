package caporal

import (
	"context"
	"strings"

	"github.com/caporal-go/caporal/errs"
	"github.com/caporal-go/caporal/parse"
)

// Resolve finds the command named by the leading tokens. Words are joined
// one at a time until the first option-like token; the longest name or
// alias matching exactly wins, so "config set x" prefers "config set" over
// "config". When a prefix has no static match and discover is not nil, the
// discovered command is registered and used.
//
// It returns the command and the number of tokens forming its name, or a
// nil command when nothing matches; the caller then falls back to
// Registry.Fallback.
func Resolve(ctx context.Context, reg *Registry, tokens []string, discover DiscoverFunc) (*Command, int, error) {
	var (
		found    *Command
		consumed int
		words    []string
	)

	for i, tok := range tokens {
		if parse.IsOptionLike(tok) || parse.IsDDash(tok) {
			break
		}
		words = append(words, tok)
		name := strings.Join(words, " ")

		if cmd, ok := reg.Lookup(name); ok {
			found, consumed = cmd, i+1
			continue
		}
		if discover == nil {
			continue
		}

		cmd, err := discover(ctx, name)
		if err != nil {
			return nil, 0, errs.ErrDiscoveryFailed.WithArgs(name).Wrap(err)
		}
		if cmd == nil {
			continue
		}
		if cmd.name == "" {
			cmd.name = name
		}
		if err := reg.Add(cmd); err != nil {
			return nil, 0, err
		}
		if cmd.name != name {
			if err := reg.AddAlias(cmd, name); err != nil {
				return nil, 0, err
			}
		}
		found, consumed = cmd, i+1
	}

	return found, consumed, nil
}

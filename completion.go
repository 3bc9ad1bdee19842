package caporal

import (
	"github.com/caporal-go/caporal/completion"
	"github.com/caporal-go/caporal/internal/util"
	"github.com/caporal-go/caporal/validation"
)

// CompletionData collects the visible commands and options of the program
// for the shell completion generators. Choices declared on an option become
// its suggested values.
func (p *Program) CompletionData() completion.Data {
	data := completion.Data{
		Flags:        completionFlags(p.registry.GlobalOptions()),
		ProgramFlags: completionFlags(p.ProgramCommand().Options()),
	}

	for _, cmd := range p.registry.Commands() {
		if !cmd.visible {
			continue
		}
		data.Commands = append(data.Commands, completion.Command{
			Name:        cmd.name,
			Aliases:     cmd.aliases,
			Description: cmd.description,
			Flags:       completionFlags(cmd.Options()),
		})
	}

	return data
}

// Completion renders the completion script of shell ("bash", "zsh", "fish"
// or "powershell").
func (p *Program) Completion(shell string) string {
	return completion.GetGenerator(shell).Generate(p.name, p.CompletionData())
}

func completionFlags(opts []*Option) []completion.Flag {
	var flags []completion.Flag
	for _, opt := range visibleOptions(opts) {
		flag := completion.Flag{
			Short:       opt.Short,
			Long:        opt.Long,
			Negated:     opt.Negated,
			TakesValue:  !opt.Boolean,
			Description: opt.Description,
		}
		if choice, ok := opt.Validator.(validation.Choice); ok {
			for _, v := range choice.Values {
				flag.Values = append(flag.Values, completion.Value{Value: util.FormatValue(v)})
			}
		}
		flags = append(flags, flag)
	}

	return flags
}

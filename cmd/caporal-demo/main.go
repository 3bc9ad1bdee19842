package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/caporal-go/caporal"
	"github.com/caporal-go/caporal/completion"
	"github.com/caporal-go/caporal/validation"
)

func main() {
	prog, err := caporal.New(
		caporal.WithName("caporal-demo"),
		caporal.WithVersion("0.1.0"),
		caporal.WithProgramDescription("Order pizzas from the command line"),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	prog.Command("order", "Order a pizza", caporal.WithAliases("o")).
		Argument("<type>", "Type of pizza", caporal.WithChoices("margherita", "hawaiian", "fungi")).
		Argument("[extras...]", "Extra toppings").
		Option("-n, --number <num>", "Number of pizzas", caporal.WithKind(validation.Number), caporal.WithDefault(1)).
		Option("--email <address>", "Receipt address", caporal.WithCheck(validation.Email())).
		Option("--no-delivery", "Pick the order up instead").
		Action(func(ctx context.Context, p caporal.ActionParams) (any, error) {
			p.Logger.Debug("placing order", "args", p.Args, "options", p.Options)
			fmt.Printf("Ordered %v %v pizza(s)", p.Options["number"], p.Args["type"])
			if extras, ok := p.Args["extras"].([]any); ok && len(extras) > 0 {
				fmt.Printf(" with %v", extras)
			}
			if p.Options["delivery"] == false {
				fmt.Print(", to pick up")
			}
			fmt.Println()
			return 0, nil
		})

	prog.Command("completion", "Print the shell completion script").
		Argument("<shell>", "Target shell", caporal.WithChoices(completion.Shells()...)).
		Action(func(ctx context.Context, p caporal.ActionParams) (any, error) {
			fmt.Println(p.Program.Completion(strings.ToLower(fmt.Sprint(p.Args["shell"]))))
			return 0, nil
		})

	result, err := prog.Run(context.Background(), os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(caporal.ExitCode(result, err))
}

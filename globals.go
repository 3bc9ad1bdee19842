package caporal

import (
	"context"
	"fmt"
	"io"

	"github.com/caporal-go/caporal/errs"
	"github.com/caporal-go/caporal/parse"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

type builtinGlobal struct {
	synopsis string
	descKey  string
	action   GlobalAction
}

var builtinGlobals = []builtinGlobal{
	{"-h, --help", errs.MsgHelpKey, helpAction},
	{"-V, --version", errs.MsgVersionKey, versionAction},
	{"--no-color", errs.MsgNoColorKey, colorAction},
	{"-v, --verbose", errs.MsgVerboseKey, verboseAction},
	{"--quiet", errs.MsgQuietKey, quietAction},
	{"--silent", errs.MsgSilentKey, silentAction},
}

func (p *Program) addBuiltinGlobals() error {
	for _, g := range builtinGlobals {
		opt, err := NewOption(g.synopsis, p.msg(g.descKey))
		if err != nil {
			return err
		}
		if existing, _, ok := p.registry.FindGlobalOption(opt.Name); ok && existing.Synopsis == opt.Synopsis {
			continue
		}
		if err := p.registry.AddGlobalOption(opt, g.action); err != nil {
			return err
		}
	}

	return nil
}

func helpAction(_ context.Context, p *Program, cmd *Command, value any) error {
	if !parse.ToBoolean(value) {
		return nil
	}
	if cmd != nil && cmd.IsProgramCommand() && !cmd.HasAction() && len(cmd.args) == 0 {
		cmd = nil
	}
	fmt.Fprintln(p.stdout, p.Help(cmd))

	return ErrHalt
}

func versionAction(_ context.Context, p *Program, _ *Command, value any) error {
	if !parse.ToBoolean(value) {
		return nil
	}
	fmt.Fprintln(p.stdout, p.version)

	return ErrHalt
}

func colorAction(_ context.Context, p *Program, _ *Command, value any) error {
	if parse.ToBoolean(value) {
		return nil
	}
	p.logger.SetColorProfile(termenv.Ascii)

	return nil
}

func verboseAction(_ context.Context, p *Program, _ *Command, value any) error {
	if parse.ToBoolean(value) {
		p.logger.SetLevel(log.DebugLevel)
	}

	return nil
}

func quietAction(_ context.Context, p *Program, _ *Command, value any) error {
	if parse.ToBoolean(value) {
		p.logger.SetLevel(log.WarnLevel)
	}

	return nil
}

func silentAction(_ context.Context, p *Program, _ *Command, value any) error {
	if parse.ToBoolean(value) {
		p.logger.SetOutput(io.Discard)
	}

	return nil
}

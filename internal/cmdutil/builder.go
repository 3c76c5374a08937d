package cmdutil

import (
	"github.com/spf13/cobra"
)

// CommandBuilder provides a fluent interface for building commands
type CommandBuilder struct {
	cmd *cobra.Command
}

// NewCommand creates a new command builder with the given use, short, and long descriptions
func NewCommand(use, short, long string) *CommandBuilder {
	return &CommandBuilder{
		cmd: &cobra.Command{
			Use:   use,
			Short: short,
			Long:  long,
		},
	}
}

// WithRunE sets the RunE function for the command
func (b *CommandBuilder) WithRunE(runE func(*cobra.Command, []string) error) *CommandBuilder {
	b.cmd.RunE = runE
	return b
}

// WithExample sets the example for the command
func (b *CommandBuilder) WithExample(example string) *CommandBuilder {
	b.cmd.Example = example
	return b
}

// WithArgs sets the positional argument validator for the command
func (b *CommandBuilder) WithArgs(args cobra.PositionalArgs) *CommandBuilder {
	b.cmd.Args = args
	return b
}

// WithStringFlag adds a string flag to the command
func (b *CommandBuilder) WithStringFlag(name, value, usage string, variable *string) *CommandBuilder {
	b.cmd.Flags().StringVar(variable, name, value, usage)
	return b
}

// WithBoolFlag adds a boolean flag to the command
func (b *CommandBuilder) WithBoolFlag(name string, value bool, usage string, variable *bool) *CommandBuilder {
	b.cmd.Flags().BoolVar(variable, name, value, usage)
	return b
}

// WithIntFlag adds an integer flag to the command
func (b *CommandBuilder) WithIntFlag(name string, value int, usage string, variable *int) *CommandBuilder {
	b.cmd.Flags().IntVar(variable, name, value, usage)
	return b
}

// WithSubCommand adds a subcommand to the command
func (b *CommandBuilder) WithSubCommand(subCmd *cobra.Command) *CommandBuilder {
	b.cmd.AddCommand(subCmd)
	return b
}

// Build returns the built cobra.Command
func (b *CommandBuilder) Build() *cobra.Command {
	return b.cmd
}

package terminal

import (
	"io"
	"os"

	"github.com/quant-tools/return-atlas/pkg/runtime/terminal/commands"
	"github.com/quant-tools/return-atlas/pkg/runtime/terminal/export"

	"github.com/quant-tools/return-atlas/pkg/services/engine"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	engine   *engine.Engine
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Engine *engine.Engine
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		engine:   opts.Engine,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "returns",
		Short: "Return volatility analysis tool",
	}

	cmd.AddCommand(commands.NewOutcomesCmd(cli.engine, cli.reporter))
	cmd.AddCommand(commands.NewScenariosCmd(cli.engine, cli.reporter))
	cmd.AddCommand(commands.NewSimulateCmd(cli.engine, cli.reporter))

	return cmd
}

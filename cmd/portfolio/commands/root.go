package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/linoteia/portfolio/pkg/config"
)

// NewRootCommand builds the portfolio command tree.
func NewRootCommand() *cobra.Command {
	var envFiles []string
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Portfolio page host with live language and theme switching",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if len(envFiles) == 0 {
				return nil
			}
			return config.LoadEnv(envFiles...)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "extra .env files to load before reading configuration")

	root.AddCommand(serveCmd(), renderCmd())
	return root
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

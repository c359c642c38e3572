// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modelinspector/ctxlog"
	"github.com/katalvlaran/modelinspector/model"
	"github.com/katalvlaran/modelinspector/provider"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	logLevel string
	logJSON  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "modelinspect",
		Short:         "Inspect the Jacobian of a model instance",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := ctxlog.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logger := ctxlog.New(cmd.ErrOrStderr(), level, opts.logJSON)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(ctxlog.WithLogger(ctx, logger))

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	cmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON")

	cmd.AddCommand(newViewsCmd(), newShowCmd(), newSymbolsCmd())

	return cmd
}

// openModel loads the fixture at path and returns a handler for it.
func openModel(ctx context.Context, path string) (*model.Memory, *provider.Handler, error) {
	log := ctxlog.FromContext(ctx)
	m, err := model.LoadYAML(path)
	if err != nil {
		return nil, nil, err
	}
	log.Info("model loaded", "path", path, "name", m.Name(),
		"rows", m.EquationCount(), "cols", m.VariableCount())

	h, err := provider.NewHandler(m, provider.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}

	return m, h, nil
}


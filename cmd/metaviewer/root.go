package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-metaviewer/internal/config"
	"github.com/goliatone/go-metaviewer/internal/logging"
)

type deps struct {
	getenv func(string) string
	picker picker
}

func defaultDeps() deps {
	return deps{
		getenv: os.Getenv,
		picker: surveyPicker{},
	}
}

type globalFlags struct {
	configPath string
	verbose    bool
}

// loadRuntime reads the config and builds the logger shared by subcommands.
func (g *globalFlags) loadRuntime(d deps) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(g.configPath, d.getenv)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Logging, g.verbose)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newRootCmd(d deps) *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:   "metaviewer",
		Short: "Render the stored metadata of posts, orders and subscriptions",
		Long: `metaviewer renders the read-only "Meta Viewer" admin panel for a record.

Records come from a YAML fixture. Meta is read from the fixture or, when a
database is configured, straight from the host's meta tables.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "config file (defaults apply when empty)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRenderCmd(d, flags))
	root.AddCommand(newTypesCmd(d, flags))
	return root
}

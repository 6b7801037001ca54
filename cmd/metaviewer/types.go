package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-metaviewer/pkg/record"
)

func newTypesCmd(d deps, global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the screens the panel is offered on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := global.loadRuntime(d)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			out := cmd.OutOrStdout()
			for _, objectType := range cfg.Metabox.ObjectTypes {
				kind := record.KindPost
				if record.IsOrderType(objectType) {
					kind = record.KindOrder
				}
				if _, err := fmt.Fprintf(out, "%s\t%s\n", objectType, kind); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

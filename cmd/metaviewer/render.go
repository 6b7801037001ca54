package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-metaviewer/internal/config"
	"github.com/goliatone/go-metaviewer/internal/fixture"
	"github.com/goliatone/go-metaviewer/pkg/metabox"
	"github.com/goliatone/go-metaviewer/pkg/metasource"
	"github.com/goliatone/go-metaviewer/pkg/record"
	"github.com/goliatone/go-metaviewer/pkg/render"
	"github.com/goliatone/go-metaviewer/pkg/renderers/table"
	"github.com/goliatone/go-metaviewer/pkg/viewer"
)

type renderFlags struct {
	fixturePath string
	objectType  string
	id          int64
	pick        bool
	output      string
	omitStyles  bool
	templates   string
}

func newRenderCmd(d deps, global *globalFlags) *cobra.Command {
	flags := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the meta table for one fixture record",
		Example: `  metaviewer render --fixture records.yaml --type shop_order --id 7
  metaviewer render --fixture records.yaml --pick --output panel.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := global.loadRuntime(d)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return runRender(cmd.Context(), cmd.OutOrStdout(), d, cfg, logger, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.fixturePath, "fixture", "f", "", "YAML fixture with posts and orders")
	cmd.Flags().StringVarP(&flags.objectType, "type", "t", "post", "screen object type")
	cmd.Flags().Int64Var(&flags.id, "id", 0, "record id")
	cmd.Flags().BoolVar(&flags.pick, "pick", false, "choose the record interactively")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&flags.omitStyles, "omit-styles", false, "skip the embedded style block")
	cmd.Flags().StringVar(&flags.templates, "templates", "", "directory holding a templates/table.tmpl override")
	_ = cmd.MarkFlagRequired("fixture")
	return cmd
}

// captureHost records the box the metabox registers.
type captureHost struct {
	box *metabox.Box
}

func (h *captureHost) AddMetaBox(box metabox.Box) error {
	h.box = &box
	return nil
}

func runRender(ctx context.Context, stdout io.Writer, d deps, cfg *config.Config, logger *zap.Logger, flags *renderFlags) error {
	fx, err := fixture.Load(flags.fixturePath)
	if err != nil {
		return err
	}

	var store metasource.Store = fx.Store()
	if cfg.Database.Enabled() {
		sqlStore, err := metasource.OpenSQLStore(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.StoreOptions()...)
		if err != nil {
			return err
		}
		defer sqlStore.Close()
		logger.Debug("reading meta from database",
			zap.String("driver", cfg.Database.Driver),
			zap.String("order_meta_table", sqlStore.OrderMetaTable()),
			zap.String("post_meta_table", sqlStore.PostMetaTable()),
		)
		store = sqlStore
	}

	objectType, rec, err := selectRecord(ctx, d.picker, fx, flags)
	if err != nil {
		return err
	}
	if !rec.Present() {
		logger.Warn("record not found, rendering empty sections",
			zap.String("object_type", objectType),
			zap.Int64("id", flags.id),
		)
	}

	viewerOptions := []viewer.Option{viewer.WithStore(store), viewer.WithLogger(logger)}
	if flags.templates != "" {
		renderer, err := table.New(table.WithTemplatesDir(flags.templates))
		if err != nil {
			return err
		}
		viewerOptions = append(viewerOptions, viewer.WithRenderer(renderer))
	}
	v, err := viewer.New(viewerOptions...)
	if err != nil {
		return err
	}
	box, err := metabox.New(cfg.Metabox, v,
		metabox.WithLogger(logger),
		metabox.WithRenderOptions(render.RenderOptions{
			Theme:      cfg.Theme.RendererConfig(),
			OmitStyles: flags.omitStyles,
		}),
	)
	if err != nil {
		return err
	}

	host := &captureHost{}
	ok, err := box.Register(ctx, host, objectType, rec)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("metaviewer: panel is not shown on %q screens", objectType)
	}

	out := stdout
	if flags.output != "" {
		file, err := os.Create(flags.output)
		if err != nil {
			return fmt.Errorf("metaviewer: create output: %w", err)
		}
		defer file.Close()
		out = file
	}
	if err := host.box.Render(ctx, out); err != nil {
		return err
	}
	if flags.output != "" {
		logger.Info("panel written", zap.String("path", flags.output))
	}
	return nil
}

func selectRecord(ctx context.Context, p picker, fx *fixture.Fixture, flags *renderFlags) (string, record.Variant, error) {
	if !flags.pick {
		if flags.id <= 0 {
			return "", record.Variant{}, errors.New("metaviewer: --id or --pick is required")
		}
		rec, _ := fx.Find(flags.objectType, flags.id)
		return flags.objectType, rec, nil
	}

	entries := fx.Entries()
	if len(entries) == 0 {
		return "", record.Variant{}, errors.New("metaviewer: fixture has no records")
	}
	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.Label
	}
	idx, err := p.Select(ctx, "Record", labels)
	if err != nil {
		return "", record.Variant{}, err
	}
	if idx < 0 || idx >= len(entries) {
		return "", record.Variant{}, errors.New("metaviewer: no record selected")
	}
	chosen := entries[idx]
	rec, _ := fx.Find(chosen.ObjectType, chosen.ID)
	return chosen.ObjectType, rec, nil
}

package metabox

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-metaviewer/pkg/metasource"
	"github.com/goliatone/go-metaviewer/pkg/record"
	"github.com/goliatone/go-metaviewer/pkg/render"
	"github.com/goliatone/go-metaviewer/pkg/testsupport"
	"github.com/goliatone/go-metaviewer/pkg/viewer"
	"github.com/goliatone/go-metaviewer/pkg/visibility"
)

type fakeHost struct {
	boxes []Box
	err   error
}

func (h *fakeHost) AddMetaBox(box Box) error {
	if h.err != nil {
		return h.err
	}
	h.boxes = append(h.boxes, box)
	return nil
}

type stubRenderer struct {
	rec     record.Variant
	options render.RenderOptions
}

func (s *stubRenderer) RenderTo(_ context.Context, w io.Writer, rec record.Variant, options render.RenderOptions) error {
	s.rec = rec
	s.options = options
	_, err := io.WriteString(w, "<table></table>")
	return err
}

func TestRegister_DefaultScreens(t *testing.T) {
	for _, objectType := range DefaultObjectTypes() {
		t.Run(objectType, func(t *testing.T) {
			host := &fakeHost{}
			box, err := New(DefaultConfig(), &stubRenderer{})
			if err != nil {
				t.Fatalf("new metabox: %v", err)
			}

			ok, err := box.Register(context.Background(), host, objectType, record.Variant{})
			if err != nil {
				t.Fatalf("register: %v", err)
			}
			if !ok || len(host.boxes) != 1 {
				t.Fatalf("expected one registration, got %v / %d", ok, len(host.boxes))
			}

			want := Box{
				ID:       "meta_viewer",
				Title:    "Meta Viewer",
				Screen:   objectType,
				Context:  PlacementNormal,
				Priority: PriorityLow,
			}
			if diff := cmp.Diff(want, host.boxes[0], cmpopts.IgnoreFields(Box{}, "Render")); diff != "" {
				t.Fatalf("box mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegister_SkipsUnlistedScreen(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	host := &fakeHost{}
	box, err := New(DefaultConfig(), &stubRenderer{}, WithLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("new metabox: %v", err)
	}

	ok, err := box.Register(context.Background(), host, "attachment", record.Variant{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if ok || len(host.boxes) != 0 {
		t.Fatalf("expected no registration")
	}
	if logs.FilterMessageSnippet("not allowed").Len() != 1 {
		t.Fatalf("expected debug log for skipped screen, got %v", logs.All())
	}
}

func TestRegister_VisibilityPredicate(t *testing.T) {
	host := &fakeHost{}
	box, err := New(DefaultConfig(), &stubRenderer{}, WithVisibility(visibility.RequirePresent()))
	if err != nil {
		t.Fatalf("new metabox: %v", err)
	}

	ok, err := box.Register(context.Background(), host, "post", record.Variant{})
	if err != nil || ok {
		t.Fatalf("expected hidden panel, got %v / %v", ok, err)
	}

	ok, err = box.Register(context.Background(), host, "post", record.FromPost(&record.Post{ID: 3}))
	if err != nil || !ok {
		t.Fatalf("expected registration, got %v / %v", ok, err)
	}
}

func TestRegister_HostError(t *testing.T) {
	boom := errors.New("boom")
	box, err := New(DefaultConfig(), &stubRenderer{})
	if err != nil {
		t.Fatalf("new metabox: %v", err)
	}
	_, err = box.Register(context.Background(), &fakeHost{err: boom}, "post", record.Variant{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected host error, got %v", err)
	}
}

func TestRegister_RenderCallbackUsesPanelID(t *testing.T) {
	renderer := &stubRenderer{}
	cfg := DefaultConfig()
	cfg.ID = "custom_panel"
	box, err := New(cfg, renderer, WithRenderOptions(render.RenderOptions{PanelID: "ignored", OmitStyles: true}))
	if err != nil {
		t.Fatalf("new metabox: %v", err)
	}

	host := &fakeHost{}
	post := record.FromPost(&record.Post{ID: 11})
	if _, err := box.Register(context.Background(), host, "post", post); err != nil {
		t.Fatalf("register: %v", err)
	}

	var buf bytes.Buffer
	if err := host.boxes[0].Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "<table></table>" {
		t.Fatalf("unexpected body %q", buf.String())
	}
	if renderer.options.PanelID != "custom_panel" || !renderer.options.OmitStyles {
		t.Fatalf("unexpected options %+v", renderer.options)
	}
	if renderer.rec.ID() != 11 {
		t.Fatalf("expected record 11, got %d", renderer.rec.ID())
	}
}

func TestRegister_EndToEndWithViewer(t *testing.T) {
	store := metasource.NewMemoryStore()
	store.SetPostMeta(5, map[string][]string{"_edit_lock": {"123:1"}})

	v, err := viewer.New(viewer.WithStore(store))
	if err != nil {
		t.Fatalf("new viewer: %v", err)
	}
	box, err := New(DefaultConfig(), v)
	if err != nil {
		t.Fatalf("new metabox: %v", err)
	}

	host := &fakeHost{}
	if _, err := box.Register(context.Background(), host, "page", record.FromPost(&record.Post{ID: 5, Type: "page"})); err != nil {
		t.Fatalf("register: %v", err)
	}

	var buf bytes.Buffer
	if err := host.boxes[0].Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "#meta_viewer") {
		t.Fatalf("expected panel-scoped styles, got:\n%s", buf.String())
	}
	rows := testsupport.DataRows(testsupport.ParseTable(t, buf.String()), "Other Data")
	want := []testsupport.TableRow{{Section: "Other Data", Key: "_edit_lock", Value: "123:1"}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("other data mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "bad id", mutate: func(c *Config) { c.ID = "1 box" }, want: "invalid id"},
		{name: "markup only title", mutate: func(c *Config) { c.Title = "<script></script>" }, want: "title is required"},
		{name: "no screens", mutate: func(c *Config) { c.ObjectTypes = nil }, want: "at least one object type"},
		{name: "bad context", mutate: func(c *Config) { c.Context = "top" }, want: "unknown context"},
		{name: "bad priority", mutate: func(c *Config) { c.Priority = "urgent" }, want: "unknown priority"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			_, err := New(cfg, &stubRenderer{})
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestNew_TitleIsPlainText(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{raw: "<b>Raw</b> Meta", want: "Raw Meta"},
		{raw: `Orders & "Meta"`, want: `Orders & "Meta"`},
		{raw: "Tom &amp; Jerry's <i>meta</i>", want: "Tom & Jerry's meta"},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Title = tc.raw
			box, err := New(cfg, &stubRenderer{})
			if err != nil {
				t.Fatalf("new metabox: %v", err)
			}
			if got := box.Config().Title; got != tc.want {
				t.Fatalf("expected title %q, got %q", tc.want, got)
			}

			host := &fakeHost{}
			if _, err := box.Register(context.Background(), host, "post", record.Variant{}); err != nil {
				t.Fatalf("register: %v", err)
			}
			if host.boxes[0].Title != tc.want {
				t.Fatalf("box title: expected %q, got %q", tc.want, host.boxes[0].Title)
			}
		})
	}
}

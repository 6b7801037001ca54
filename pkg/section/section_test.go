package section

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-metaviewer/pkg/metasource"
	"github.com/goliatone/go-metaviewer/pkg/record"
)

func sectionNames(sections []Section) []string {
	names := make([]string, 0, len(sections))
	for _, s := range sections {
		names = append(names, s.Name)
	}
	return names
}

func TestBuild_SectionOrder(t *testing.T) {
	cases := []struct {
		name    string
		variant record.Variant
		want    []string
	}{
		{
			name:    "post",
			variant: record.FromPost(&record.Post{ID: 1}),
			want:    []string{RecordData, OtherData},
		},
		{
			name:    "order",
			variant: record.FromOrder(&record.Order{ID: 2}),
			want:    []string{RecordData, OperationalData, AddressData, OtherData},
		},
		{
			name:    "absent order",
			variant: record.Variant{Kind: record.KindOrder},
			want:    []string{RecordData, OperationalData, AddressData, OtherData},
		},
		{
			name:    "absent post",
			variant: record.Variant{Kind: record.KindPost},
			want:    []string{RecordData, OtherData},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Build(metasource.Snapshot{Variant: tc.variant})
			if diff := cmp.Diff(tc.want, sectionNames(got)); diff != "" {
				t.Fatalf("section order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_AbsentRecordYieldsEmptySections(t *testing.T) {
	for _, s := range Build(metasource.Snapshot{Variant: record.Variant{Kind: record.KindOrder}}) {
		if len(s.Fields) != 0 {
			t.Fatalf("section %q should be empty, got %v", s.Name, s.Fields)
		}
	}
}

func TestBuild_PostRecordData(t *testing.T) {
	post := &record.Post{
		ID:          42,
		AuthorID:    3,
		Date:        "2024-05-01 10:00:00",
		DateGMT:     "2024-05-01 08:00:00",
		Content:     "Body",
		Title:       "Hello",
		Status:      "publish",
		Type:        "post",
		Modified:    "2024-05-02 10:00:00",
		ModifiedGMT: "2024-05-02 08:00:00",
		ParentID:    0,
	}
	sections := Build(metasource.Snapshot{
		Variant:  record.FromPost(post),
		PostMeta: map[string][]string{"color": {"red", "blue"}, "size": {"M"}},
	})

	want := map[string]any{
		"ID":                int64(42),
		"post_author":       int64(3),
		"post_date":         "2024-05-01 10:00:00",
		"post_date_gmt":     "2024-05-01 08:00:00",
		"post_content":      "Body",
		"post_title":        "Hello",
		"post_status":       "publish",
		"post_type":         "post",
		"post_modified":     "2024-05-02 10:00:00",
		"post_modified_gmt": "2024-05-02 08:00:00",
		"post_parent":       int64(0),
	}
	if diff := cmp.Diff(want, sections[0].Fields); diff != "" {
		t.Fatalf("record data mismatch (-want +got):\n%s", diff)
	}

	wantOther := map[string]any{
		"color": []string{"red", "blue"},
		"size":  []string{"M"},
	}
	if diff := cmp.Diff(wantOther, sections[1].Fields); diff != "" {
		t.Fatalf("other data mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		"processing":    "wc-processing",
		"wc-completed":  "wc-completed",
		"":              "wc-",
		"custom-wc-foo": "custom-wc-foo",
	}
	for in, want := range cases {
		if got := NormalizeStatus(in); got != want {
			t.Fatalf("NormalizeStatus(%q): want %q, got %q", in, want, got)
		}
	}
}

func TestBuild_OrderRecordData(t *testing.T) {
	created := time.Date(2023, 11, 5, 14, 3, 9, 0, time.UTC)
	order := &record.Order{
		ID:          100,
		Status:      "processing",
		Type:        record.TypeShopOrder,
		CustomerID:  7,
		DateCreated: &created,
		ParentID:    99,
		Currency:    "USD",
	}
	sections := Build(metasource.Snapshot{Variant: record.FromOrder(order)})

	fields := sections[0].Fields
	if fields["status"] != "wc-processing" {
		t.Fatalf("status: got %v", fields["status"])
	}
	if fields["date_created"] != "2023-11-05 14:03:09" {
		t.Fatalf("date_created: got %v", fields["date_created"])
	}
	if fields["date_updated"] != "" {
		t.Fatalf("date_updated: want empty, got %v", fields["date_updated"])
	}
	if fields["parent_order_id"] != int64(99) {
		t.Fatalf("parent_order_id: got %v", fields["parent_order_id"])
	}
	if len(fields) != 11 {
		t.Fatalf("expected 11 record fields, got %d", len(fields))
	}
}

func TestBuild_OrderLegacyDates(t *testing.T) {
	paid := time.Date(2022, 1, 2, 3, 4, 5, 0, time.UTC)

	cases := []struct {
		name          string
		order         *record.Order
		meta          map[string]any
		wantPaid      string
		wantCompleted string
	}{
		{
			name:          "no structured and no legacy",
			order:         &record.Order{ID: 1},
			meta:          map[string]any{},
			wantPaid:      "",
			wantCompleted: "",
		},
		{
			name:          "legacy fallback",
			order:         &record.Order{ID: 1},
			meta:          map[string]any{"_paid_date": "2018-07-01 09:00:00", "_completed_date": "1530435600"},
			wantPaid:      "2018-07-01 09:00:00 (legacy)",
			wantCompleted: "1530435600 (legacy)",
		},
		{
			name:          "structured wins over legacy",
			order:         &record.Order{ID: 1, DatePaid: &paid},
			meta:          map[string]any{"_paid_date": "2018-07-01 09:00:00"},
			wantPaid:      "2022-01-02 03:04:05",
			wantCompleted: "",
		},
		{
			name:          "null legacy value is ignored",
			order:         &record.Order{ID: 1},
			meta:          map[string]any{"_paid_date": nil},
			wantPaid:      "",
			wantCompleted: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sections := Build(metasource.Snapshot{Variant: record.FromOrder(tc.order), OrderMeta: tc.meta})
			ops := sections[1]
			if ops.Name != OperationalData {
				t.Fatalf("expected operational data section, got %q", ops.Name)
			}
			if ops.Fields["date_paid"] != tc.wantPaid {
				t.Fatalf("date_paid: want %q, got %q", tc.wantPaid, ops.Fields["date_paid"])
			}
			if ops.Fields["date_completed"] != tc.wantCompleted {
				t.Fatalf("date_completed: want %q, got %q", tc.wantCompleted, ops.Fields["date_completed"])
			}
		})
	}
}

func TestBuild_OrderAddressAndOtherData(t *testing.T) {
	order := &record.Order{
		ID:       5,
		Billing:  record.Address{FirstName: "Ada", Country: "GB"},
		Shipping: record.Address{City: "Leeds", Phone: "555"},
	}
	meta := map[string]any{"_custom": "x", "_paid_date": "2001-01-01"}
	sections := Build(metasource.Snapshot{Variant: record.FromOrder(order), OrderMeta: meta})

	addr := sections[2].Fields
	if len(addr) != 20 {
		t.Fatalf("expected 20 address fields, got %d", len(addr))
	}
	if addr["billing_first_name"] != "Ada" || addr["billing_country"] != "GB" {
		t.Fatalf("billing fields mismatch: %v", addr)
	}
	if addr["shipping_city"] != "Leeds" || addr["shipping_phone"] != "555" {
		t.Fatalf("shipping fields mismatch: %v", addr)
	}

	if diff := cmp.Diff(meta, sections[3].Fields); diff != "" {
		t.Fatalf("other data mismatch (-want +got):\n%s", diff)
	}
	if len(sections[1].Fields) != 20 {
		t.Fatalf("expected 20 operational fields, got %d", len(sections[1].Fields))
	}
}

func TestBuild_OrderNullMetaMarked(t *testing.T) {
	meta := map[string]any{"_paid_date": nil, "_note": nil, "_empty": ""}
	sections := Build(metasource.Snapshot{Variant: record.FromOrder(&record.Order{ID: 9}), OrderMeta: meta})

	want := map[string]any{"_paid_date": NullValue, "_note": NullValue, "_empty": ""}
	if diff := cmp.Diff(want, sections[3].Fields); diff != "" {
		t.Fatalf("other data mismatch (-want +got):\n%s", diff)
	}
	if sections[1].Fields["date_paid"] != "" {
		t.Fatalf("null legacy date should stay unset, got %q", sections[1].Fields["date_paid"])
	}
	if meta["_note"] != nil {
		t.Fatalf("input meta must not be modified")
	}
}

func TestSection_SortedKeys(t *testing.T) {
	s := Section{Fields: map[string]any{"b": 1, "B": 2, "a": 3, "_z": 4}}
	want := []string{"B", "_z", "a", "b"}
	if diff := cmp.Diff(want, s.SortedKeys()); diff != "" {
		t.Fatalf("sorted keys mismatch (-want +got):\n%s", diff)
	}
}

package record

import "testing"

func TestResolve(t *testing.T) {
	post := &Post{ID: 7}
	order := &Order{ID: 9}

	cases := []struct {
		name       string
		objectType string
		post       *Post
		order      *Order
		wantKind   Kind
		wantID     int64
		present    bool
	}{
		{name: "post screen", objectType: "post", post: post, wantKind: KindPost, wantID: 7, present: true},
		{name: "order slot wins", objectType: "post", post: post, order: order, wantKind: KindOrder, wantID: 9, present: true},
		{name: "order screen without order", objectType: ScreenOrders, wantKind: KindOrder, present: false},
		{name: "subscription type without order", objectType: TypeShopSubscription, wantKind: KindOrder, present: false},
		{name: "page without post", objectType: "page", wantKind: KindPost, present: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.objectType, tc.post, tc.order)
			if got.Kind != tc.wantKind {
				t.Fatalf("kind: want %s, got %s", tc.wantKind, got.Kind)
			}
			if got.ID() != tc.wantID {
				t.Fatalf("id: want %d, got %d", tc.wantID, got.ID())
			}
			if got.Present() != tc.present {
				t.Fatalf("present: want %v, got %v", tc.present, got.Present())
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindPost.String() != "post" || KindOrder.String() != "order" {
		t.Fatalf("unexpected kind names: %s %s", KindPost, KindOrder)
	}
	if Kind(42).String() != "unknown" {
		t.Fatalf("expected unknown kind name")
	}
}

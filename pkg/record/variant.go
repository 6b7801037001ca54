package record

// Kind discriminates the capability set of a record.
type Kind int

const (
	// KindPost is a plain content record backed by the posts table.
	KindPost Kind = iota
	// KindOrder covers orders and subscriptions backed by the order tables.
	KindOrder
)

func (k Kind) String() string {
	switch k {
	case KindPost:
		return "post"
	case KindOrder:
		return "order"
	default:
		return "unknown"
	}
}

// Object type identifiers the host uses for order-like screens.
const (
	TypeShopOrder        = "shop_order"
	TypeShopSubscription = "shop_subscription"
	ScreenOrders         = "woocommerce_page_wc-orders"
	ScreenSubscriptions  = "woocommerce_page_wc-orders--shop_subscription"
)

// Variant carries a record together with its resolved kind. Exactly one of
// Post or Order is relevant for a given Kind; a nil payload means the host had
// no current record and every section renders empty.
type Variant struct {
	Kind  Kind
	Post  *Post
	Order *Order
}

// FromPost wraps a post.
func FromPost(post *Post) Variant {
	return Variant{Kind: KindPost, Post: post}
}

// FromOrder wraps an order or subscription.
func FromOrder(order *Order) Variant {
	return Variant{Kind: KindOrder, Order: order}
}

// Present reports whether the variant carries a record for its kind.
func (v Variant) Present() bool {
	switch v.Kind {
	case KindOrder:
		return v.Order != nil
	default:
		return v.Post != nil
	}
}

// ID returns the record identifier, or zero when absent.
func (v Variant) ID() int64 {
	switch {
	case v.Kind == KindOrder && v.Order != nil:
		return v.Order.ID
	case v.Kind == KindPost && v.Post != nil:
		return v.Post.ID
	default:
		return 0
	}
}

// Resolve picks the variant for a screen. A populated order slot always wins;
// otherwise order-like object types resolve to an empty order variant so the
// order layout still renders, and everything else is treated as a post.
func Resolve(objectType string, post *Post, order *Order) Variant {
	if order != nil {
		return FromOrder(order)
	}
	if IsOrderType(objectType) {
		return Variant{Kind: KindOrder}
	}
	return FromPost(post)
}

// IsOrderType reports whether objectType names an order or subscription
// screen.
func IsOrderType(objectType string) bool {
	switch objectType {
	case TypeShopOrder, TypeShopSubscription, ScreenOrders, ScreenSubscriptions:
		return true
	default:
		return false
	}
}

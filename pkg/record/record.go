package record

import "time"

// Post mirrors a row of the host posts table plus its raw meta collection.
// Date columns keep the host's stored "YYYY-MM-DD HH:MM:SS" text.
type Post struct {
	ID          int64  `json:"id" yaml:"id"`
	AuthorID    int64  `json:"author_id" yaml:"author_id"`
	Date        string `json:"date" yaml:"date"`
	DateGMT     string `json:"date_gmt" yaml:"date_gmt"`
	Content     string `json:"content" yaml:"content"`
	Title       string `json:"title" yaml:"title"`
	Status      string `json:"status" yaml:"status"`
	Type        string `json:"type" yaml:"type"`
	Modified    string `json:"modified" yaml:"modified"`
	ModifiedGMT string `json:"modified_gmt" yaml:"modified_gmt"`
	ParentID    int64  `json:"parent_id" yaml:"parent_id"`

	// Meta holds every stored value per key. It is only consulted when no
	// metasource.Store is configured.
	Meta map[string][]string `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Address groups the billing or shipping columns of an order.
type Address struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Company   string `json:"company" yaml:"company"`
	Address1  string `json:"address_1" yaml:"address_1"`
	Address2  string `json:"address_2" yaml:"address_2"`
	City      string `json:"city" yaml:"city"`
	State     string `json:"state" yaml:"state"`
	Postcode  string `json:"postcode" yaml:"postcode"`
	Country   string `json:"country" yaml:"country"`
	Phone     string `json:"phone" yaml:"phone"`
}

// Order is the accessor set of an order or subscription as exposed by the
// host's order tables. Monetary amounts keep the host's decimal strings.
// Timestamps are not YAML-mapped; fixtures decode them from free-form text.
type Order struct {
	ID                int64      `json:"id" yaml:"id"`
	Status            string     `json:"status" yaml:"status"`
	Type              string     `json:"type" yaml:"type"`
	CustomerID        int64      `json:"customer_id" yaml:"customer_id"`
	DateCreated       *time.Time `json:"date_created,omitempty" yaml:"-"`
	DateModified      *time.Time `json:"date_modified,omitempty" yaml:"-"`
	ParentID          int64      `json:"parent_id" yaml:"parent_id"`
	CustomerNote      string     `json:"customer_note" yaml:"customer_note"`
	Currency          string     `json:"currency" yaml:"currency"`
	CustomerIPAddress string     `json:"customer_ip_address" yaml:"customer_ip_address"`
	CustomerUserAgent string     `json:"customer_user_agent" yaml:"customer_user_agent"`

	BillingEmail       string     `json:"billing_email" yaml:"billing_email"`
	CreatedVia         string     `json:"created_via" yaml:"created_via"`
	Version            string     `json:"version" yaml:"version"`
	TotalTax           string     `json:"total_tax" yaml:"total_tax"`
	Total              string     `json:"total" yaml:"total"`
	ShippingTax        string     `json:"shipping_tax" yaml:"shipping_tax"`
	ShippingTotal      string     `json:"shipping_total" yaml:"shipping_total"`
	DiscountTax        string     `json:"discount_tax" yaml:"discount_tax"`
	DiscountTotal      string     `json:"discount_total" yaml:"discount_total"`
	DatePaid           *time.Time `json:"date_paid,omitempty" yaml:"-"`
	DateCompleted      *time.Time `json:"date_completed,omitempty" yaml:"-"`
	PaymentMethod      string     `json:"payment_method" yaml:"payment_method"`
	PaymentMethodTitle string     `json:"payment_method_title" yaml:"payment_method_title"`
	TransactionID      string     `json:"transaction_id" yaml:"transaction_id"`
	CartHash           string     `json:"cart_hash" yaml:"cart_hash"`
	OrderKey           string     `json:"order_key" yaml:"order_key"`

	NewOrderEmailSent         bool `json:"new_order_email_sent" yaml:"new_order_email_sent"`
	OrderStockReduced         bool `json:"order_stock_reduced" yaml:"order_stock_reduced"`
	RecordedSales             bool `json:"recorded_sales" yaml:"recorded_sales"`
	RecordedCouponUsageCounts bool `json:"recorded_coupon_usage_counts" yaml:"recorded_coupon_usage_counts"`

	Billing  Address `json:"billing" yaml:"billing"`
	Shipping Address `json:"shipping" yaml:"shipping"`
}

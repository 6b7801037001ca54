package section

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-metaviewer/pkg/record"
)

const (
	// StatusPrefix is the token order statuses are stored with.
	StatusPrefix = "wc-"
	// LegacySuffix marks values read from deprecated meta keys.
	LegacySuffix = " (legacy)"
	// DateLayout is the display layout for order timestamps.
	DateLayout = "2006-01-02 15:04:05"

	// NullValue marks an order meta entry stored as NULL.
	NullValue = "NULL"

	legacyPaidDateKey      = "_paid_date"
	legacyCompletedDateKey = "_completed_date"
)

// NormalizeStatus prefixes status with StatusPrefix unless it already
// contains it.
func NormalizeStatus(status string) string {
	if strings.Contains(status, StatusPrefix) {
		return status
	}
	return StatusPrefix + status
}

// FormatDate renders t with DateLayout, or "" when t is nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// legacyDate falls back to a deprecated meta entry when the structured value
// is empty. A key holding NULL does not count as set.
func legacyDate(value string, meta map[string]any, key string) string {
	if value != "" {
		return value
	}
	raw, ok := meta[key]
	if !ok || raw == nil {
		return value
	}
	return fmt.Sprint(raw) + LegacySuffix
}

func orderSections(order *record.Order, meta map[string]any) []Section {
	other := make(map[string]any, len(meta))
	for key, value := range meta {
		if value == nil {
			value = NullValue
		}
		other[key] = value
	}

	return []Section{
		{Name: RecordData, Fields: orderRecordFields(order)},
		{Name: OperationalData, Fields: orderOperationalFields(order, meta)},
		{Name: AddressData, Fields: orderAddressFields(order)},
		{Name: OtherData, Fields: other},
	}
}

func orderRecordFields(order *record.Order) map[string]any {
	return map[string]any{
		"ID":              order.ID,
		"status":          NormalizeStatus(order.Status),
		"type":            order.Type,
		"customer_id":     order.CustomerID,
		"date_created":    FormatDate(order.DateCreated),
		"date_updated":    FormatDate(order.DateModified),
		"parent_order_id": order.ParentID,
		"customer_note":   order.CustomerNote,
		"currency":        order.Currency,
		"ip_address":      order.CustomerIPAddress,
		"user_agent":      order.CustomerUserAgent,
	}
}

func orderOperationalFields(order *record.Order, meta map[string]any) map[string]any {
	return map[string]any{
		"billing_email":         order.BillingEmail,
		"created_via":           order.CreatedVia,
		"woocommerce_version":   order.Version,
		"tax_amount":            order.TotalTax,
		"total_amount":          order.Total,
		"shipping_tax_amount":   order.ShippingTax,
		"shipping_total_amount": order.ShippingTotal,
		"discount_tax_amount":   order.DiscountTax,
		"discount_total_amount": order.DiscountTotal,
		"date_paid":             legacyDate(FormatDate(order.DatePaid), meta, legacyPaidDateKey),
		"date_completed":        legacyDate(FormatDate(order.DateCompleted), meta, legacyCompletedDateKey),
		"payment_method":        order.PaymentMethod,
		"payment_method_title":  order.PaymentMethodTitle,
		"transaction_id":        order.TransactionID,
		"cart_hash":             order.CartHash,
		"new_order_email_sent":  order.NewOrderEmailSent,
		"order_key":             order.OrderKey,
		"order_stock_reduced":   order.OrderStockReduced,
		"recorded_sales":        order.RecordedSales,
		"coupon_usage_counts":   order.RecordedCouponUsageCounts,
	}
}

func orderAddressFields(order *record.Order) map[string]any {
	fields := make(map[string]any, 20)
	addAddress(fields, "billing", order.Billing)
	addAddress(fields, "shipping", order.Shipping)
	return fields
}

func addAddress(fields map[string]any, prefix string, addr record.Address) {
	fields[prefix+"_first_name"] = addr.FirstName
	fields[prefix+"_last_name"] = addr.LastName
	fields[prefix+"_company"] = addr.Company
	fields[prefix+"_address_1"] = addr.Address1
	fields[prefix+"_address_2"] = addr.Address2
	fields[prefix+"_city"] = addr.City
	fields[prefix+"_state"] = addr.State
	fields[prefix+"_postcode"] = addr.Postcode
	fields[prefix+"_country"] = addr.Country
	fields[prefix+"_phone"] = addr.Phone
}

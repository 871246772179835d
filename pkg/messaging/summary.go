// Package messaging 生成给客户手动发送的订单摘要，以及各聊天渠道的预填链接。
package messaging

import (
	"fmt"
	"storefront/models"
	"strings"
	"time"
)

// Manila 订单时间按菲律宾时间展示
var Manila = time.FixedZone("PHT", 8*3600)

type Summary struct {
	ShopName      string
	Order         *models.Order
	RegionName    string
	AccountNumber string
}

func (s Summary) Text() string {
	o := s.Order
	var b strings.Builder

	fmt.Fprintf(&b, "%s - NEW ORDER\n\n", strings.ToUpper(s.ShopName))

	b.WriteString("ORDER DATE & TIME\n")
	b.WriteString(o.CreatedAt.In(Manila).Format("Monday, January 2, 2006 03:04:05 PM"))
	b.WriteString("\n\n")

	b.WriteString("CUSTOMER INFORMATION\n")
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nPhone: %s\n\n", o.CustomerName, o.CustomerEmail, o.CustomerPhone)

	b.WriteString("SHIPPING ADDRESS\n")
	fmt.Fprintf(&b, "%s\n%s, %s %s\n%s\n", o.ShippingAddress, o.ShippingCity, o.ShippingState, o.ShippingZipCode, o.ShippingCountry)
	region := s.RegionName
	if region == "" {
		region = o.ShippingRegion
	}
	fmt.Fprintf(&b, "Region: %s\n\n", region)

	b.WriteString("ORDER DETAILS\n")
	lines := make([]string, 0, len(o.OrderItems))
	for _, item := range o.OrderItems {
		line := "• " + item.ProductName
		if item.VariationName != nil && *item.VariationName != "" {
			line += " (" + *item.VariationName + ")"
		}
		line += fmt.Sprintf(" x%d - %s", item.Quantity, Peso(item.Total))
		line += "\n  Purity: " + percent(item.PurityPercentage)
		lines = append(lines, line)
	}
	b.WriteString(strings.Join(lines, "\n\n"))
	b.WriteString("\n\n")

	b.WriteString("PRICING\n")
	fmt.Fprintf(&b, "Product Total: %s\n", Peso(o.Subtotal))
	if o.PromoCode != nil && o.DiscountAmount.IsPositive() {
		fmt.Fprintf(&b, "Promo (%s): -%s\n", *o.PromoCode, Peso(o.DiscountAmount))
	}
	fmt.Fprintf(&b, "Shipping Fee: %s\n", Peso(o.ShippingFee))
	fmt.Fprintf(&b, "Total: %s\n\n", Peso(o.Total))

	b.WriteString("PAYMENT METHOD\n")
	if o.PaymentMethodName != nil {
		b.WriteString(*o.PaymentMethodName)
		if s.AccountNumber != "" {
			fmt.Fprintf(&b, "\nAccount: %s", s.AccountNumber)
		}
	} else {
		b.WriteString("N/A")
	}
	b.WriteString("\n\n")

	if o.Notes != nil && *o.Notes != "" {
		fmt.Fprintf(&b, "NOTES\n%s\n\n", *o.Notes)
	}

	fmt.Fprintf(&b, "ORDER ID: %s\n\n", o.Ref)
	b.WriteString("Please confirm this order. Thank you!")

	return b.String()
}

package models

// All 需要迁移的全部表
func All() []any {
	return []any{
		&Category{},
		&Product{},
		&ProductVariation{},
		&PaymentMethod{},
		&COAReport{},
		&FAQItem{},
		&PromoCode{},
		&ShippingLocation{},
		&Order{},
	}
}

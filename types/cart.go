package types

import (
	"storefront/pkg/cart"

	"github.com/shopspring/decimal"
)

// AddCartItemRequest 加入购物车
type AddCartItemRequest struct {
	ProductID   string  `json:"product_id" binding:"required"`
	VariationID *string `json:"variation_id"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type CartLineView struct {
	cart.Line
	Index int             `json:"index"` // 修改/删除时使用的行号
	Total decimal.Decimal `json:"total"`
}

type CartView struct {
	CartID    string          `json:"cart_id"`
	Lines     []CartLineView  `json:"lines"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

// Package cart 购物车聚合。单价在加入时确定并随行保存，之后商品改价不影响已加入的行。
package cart

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrIndexOutOfRange = errors.New("cart line does not exist")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

type Line struct {
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	PurityPercentage float64         `json:"purity_percentage"`
	ImageURL         *string         `json:"image_url,omitempty"`
	VariationID      *string         `json:"variation_id,omitempty"`
	VariationName    *string         `json:"variation_name,omitempty"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
}

func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Matches 同一商品同一规格（都没有规格也算）
func (l Line) Matches(productID string, variationID *string) bool {
	if l.ProductID != productID {
		return false
	}
	if l.VariationID == nil || variationID == nil {
		return l.VariationID == nil && variationID == nil
	}
	return *l.VariationID == *variationID
}

type Cart struct {
	Lines []Line `json:"lines"`
}

func New() *Cart {
	return &Cart{Lines: make([]Line, 0)}
}

// Add 总是追加新行，不与已有的相同行合并
func (c *Cart) Add(l Line) error {
	if l.Quantity < 1 {
		return ErrInvalidQuantity
	}
	c.Lines = append(c.Lines, l)
	return nil
}

func (c *Cart) Line(index int) (Line, error) {
	if index < 0 || index >= len(c.Lines) {
		return Line{}, ErrIndexOutOfRange
	}
	return c.Lines[index], nil
}

// UpdateQuantity 库存校验由调用方完成
func (c *Cart) UpdateQuantity(index, quantity int) error {
	if index < 0 || index >= len(c.Lines) {
		return ErrIndexOutOfRange
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	c.Lines[index].Quantity = quantity
	return nil
}

func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.Lines) {
		return ErrIndexOutOfRange
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	return nil
}

func (c *Cart) Clear() {
	c.Lines = c.Lines[:0]
}

func (c *Cart) Len() int {
	return len(c.Lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Total sum(unit_price * quantity)
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Total())
	}
	return total
}

// Quantity 同一商品/规格在所有行中的数量之和
func (c *Cart) Quantity(productID string, variationID *string) int {
	n := 0
	for _, l := range c.Lines {
		if l.Matches(productID, variationID) {
			n += l.Quantity
		}
	}
	return n
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

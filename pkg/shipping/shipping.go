package shipping

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownRegion = errors.New("unknown shipping region")

// Table 区域标签 -> 固定运费
type Table map[string]decimal.Decimal

// Normalize 区域标签统一为大写
func Normalize(tag string) string {
	return strings.ToUpper(strings.TrimSpace(tag))
}

// Fee 未选择区域时为 0；未知区域报错
func (t Table) Fee(tag string) (decimal.Decimal, error) {
	tag = Normalize(tag)
	if tag == "" {
		return decimal.Zero, nil
	}
	fee, ok := t[tag]
	if !ok {
		return decimal.Zero, ErrUnknownRegion
	}
	return fee, nil
}

func (t Table) Has(tag string) bool {
	_, ok := t[Normalize(tag)]
	return ok
}

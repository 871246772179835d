package utils

import "strings"

// StrPtr 去除首尾空白，空串返回 nil
func StrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

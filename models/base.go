package models

import "github.com/google/uuid"

// newID 生成字符串主键，已赋值则保留
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

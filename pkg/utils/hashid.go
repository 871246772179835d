package utils

import (
	"errors"

	"github.com/speps/go-hashids/v2"
)

var ErrInvalidHashID = errors.New("invalid reference")

func newHashID(salt string) *hashids.HashID {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, _ := hashids.NewWithData(hd)
	return h
}

// GenHashID 订单对外编号，不暴露自增规律
func GenHashID(salt string, id int64) string {
	e, _ := newHashID(salt).EncodeInt64([]int64{id})
	return e
}

// DecodeHashID 解析对外编号
func DecodeHashID(salt string, ref string) (int64, error) {
	if ref == "" {
		return 0, ErrInvalidHashID
	}
	ids, err := newHashID(salt).DecodeInt64WithError(ref)
	if err != nil || len(ids) != 1 {
		return 0, ErrInvalidHashID
	}
	return ids[0], nil
}

package database

import (
	"errors"
	"strings"

	mysqlerr "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// 已知的 MySQL 错误码
const (
	erTableAccessDenied = 1142
	erNoSuchTable       = 1146
	erDupEntry          = 1062
)

// Remediation 把已知的存储故障翻译成给管理员的处理建议，未知错误返回空串
func Remediation(err error) string {
	if err == nil {
		return ""
	}
	var me *mysqlerr.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case erNoSuchTable:
			return "The table does not exist in the database. Run `api-server migrate` to create it."
		case erTableAccessDenied:
			return "The database user is not allowed to write this table. Check the grants of the configured MySQL account."
		}
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "no such table"), strings.Contains(msg, "doesn't exist"):
		return "The table does not exist in the database. Run `api-server migrate` to create it."
	case strings.Contains(msg, "permission denied"), strings.Contains(msg, "command denied"):
		return "The database user is not allowed to write this table. Check the grants of the configured MySQL account."
	}
	return ""
}

// IsDuplicate 唯一索引冲突
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysqlerr.MySQLError
	if errors.As(err, &me) && me.Number == erDupEntry {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}

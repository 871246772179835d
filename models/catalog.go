package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 分类，ID 为管理员填写的 slug
type Category struct {
	ID        string    `gorm:"primaryKey;size:64;column:id" json:"id"`
	Name      string    `gorm:"size:128;not null;column:name" json:"name"`
	Icon      string    `gorm:"size:32;column:icon" json:"icon"`
	SortOrder int       `gorm:"not null;default:0;column:sort_order" json:"sort_order"`
	Active    bool      `gorm:"not null;column:active" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

type PaymentMethod struct {
	ID            string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Name          string    `gorm:"size:128;not null;column:name" json:"name"`
	AccountNumber string    `gorm:"size:128;column:account_number" json:"account_number"`
	AccountName   string    `gorm:"size:128;column:account_name" json:"account_name"`
	QRCodeURL     *string   `gorm:"size:512;column:qr_code_url" json:"qr_code_url"`
	SortOrder     int       `gorm:"not null;default:0;column:sort_order" json:"sort_order"`
	Active        bool      `gorm:"not null;column:active" json:"active"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}

func (m *PaymentMethod) BeforeCreate(*gorm.DB) error {
	newID(&m.ID)
	return nil
}

// COAReport 第三方检测报告
type COAReport struct {
	ID               string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	ProductName      string    `gorm:"size:255;not null;column:product_name" json:"product_name"`
	Batch            string    `gorm:"size:64;column:batch" json:"batch"`
	TestDate         time.Time `gorm:"column:test_date;index:idx_test_date" json:"test_date"`
	PurityPercentage float64   `gorm:"column:purity_percentage" json:"purity_percentage"`
	Quantity         string    `gorm:"size:64;column:quantity" json:"quantity"`
	TaskNumber       string    `gorm:"size:64;column:task_number" json:"task_number"`
	VerificationKey  string    `gorm:"size:128;column:verification_key" json:"verification_key"`
	ImageURL         string    `gorm:"size:512;column:image_url" json:"image_url"`
	Featured         bool      `gorm:"not null;default:false;column:featured" json:"featured"`
	Laboratory       string    `gorm:"size:128;column:laboratory" json:"laboratory"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (COAReport) TableName() string {
	return "coa_reports"
}

func (r *COAReport) BeforeCreate(*gorm.DB) error {
	newID(&r.ID)
	return nil
}

var FAQCategories = []string{
	"PRODUCT & USAGE",
	"ORDERING & PACKAGING",
	"PAYMENT METHODS",
	"SHIPPING & DELIVERY",
}

func IsFAQCategory(s string) bool {
	for _, c := range FAQCategories {
		if c == s {
			return true
		}
	}
	return false
}

type FAQItem struct {
	ID         string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Question   string    `gorm:"type:text;not null;column:question" json:"question"`
	Answer     string    `gorm:"type:text;not null;column:answer" json:"answer"`
	Category   string    `gorm:"size:64;not null;column:category" json:"category"`
	OrderIndex int       `gorm:"not null;default:0;column:order_index" json:"order_index"`
	IsActive   bool      `gorm:"not null;column:is_active" json:"is_active"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FAQItem) TableName() string {
	return "faqs"
}

func (f *FAQItem) BeforeCreate(*gorm.DB) error {
	newID(&f.ID)
	return nil
}

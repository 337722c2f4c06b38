package model

import (
	"time"

	"gorm.io/gorm"
)

// PurchaseとProductの多対多（数量付き）
type PurchaseProduct struct {
	PurchaseID    string         `gorm:"type:uuid;primaryKey" json:"purchase_id"`
	ProductID     string         `gorm:"type:uuid;primaryKey" json:"product_id"`
	ProductAmount int64          `gorm:"not null" json:"product_amount"`
	CreatedAt     time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

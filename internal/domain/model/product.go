package model

import (
	"time"

	"gorm.io/gorm"
)

// Amountはnull許容（在庫を管理しない商品もある）
type Product struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null;index" json:"name"`
	Amount    *int64         `json:"amount"`
	Price     float64        `gorm:"type:numeric(12,2);not null" json:"price"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

package model

import (
	"time"

	"gorm.io/gorm"
)

type Purchase struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	SellerID  string         `gorm:"type:uuid;not null;index" json:"seller_id"`
	Status    PurchaseStatus `gorm:"type:smallint;not null" json:"purchase_status"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

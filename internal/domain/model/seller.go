package model

import (
	"time"

	"gorm.io/gorm"
)

type Seller struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	Cpf       string         `gorm:"type:varchar(14);not null;index" json:"cpf"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Email     string         `gorm:"type:varchar(255);not null;index" json:"email"`
	Telephone string         `gorm:"type:varchar(20);not null;index" json:"telephone"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

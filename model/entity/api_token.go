package entity

import "time"

// ApiToken backs the token auth mode (AUTH_TYPE=token).
type ApiToken struct {
	TokenID   uint      `gorm:"column:token_id;primaryKey;autoIncrement"`
	Token     string    `gorm:"column:token;type:varchar(64);not null;uniqueIndex"`
	UserID    uint      `gorm:"column:user_id;not null"`
	Type      string    `gorm:"column:type;type:varchar(16);not null;default:'access'"`
	Revoked   int16     `gorm:"column:revoked;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ApiToken) TableName() string {
	return "api_token"
}

package models

import "time"

// TokenBlacklist guarda los JTI de refresh tokens invalidados: los que se
// rotaron en /token/refresh/ y los entregados en logout.
type TokenBlacklist struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	JTI       string    `gorm:"type:char(36);uniqueIndex;not null" json:"jti"`
	UsuarioID uint      `gorm:"index" json:"usuario_id"`
	ExpiraEn  time.Time `json:"expira_en"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}

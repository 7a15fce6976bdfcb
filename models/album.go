package models

import "time"

type Album struct {
	AlbumID     uint      `gorm:"primaryKey;autoIncrement" json:"album_id"`
	Titulo      string    `gorm:"type:varchar(255);not null" json:"titulo"`
	Slug        string    `gorm:"type:varchar(255)" json:"slug"`
	Descripcion string    `gorm:"type:text" json:"descripcion"`
	ImagenURL   string    `gorm:"type:text" json:"imagen_url"`
	UsuarioID   uint      `gorm:"not null;index" json:"usuario_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Album) TableName() string {
	return "albums"
}

package models

import "time"

type Playlist struct {
	PlaylistID  uint      `gorm:"primaryKey;autoIncrement" json:"playlist_id"`
	Titulo      string    `gorm:"type:varchar(255);not null" json:"titulo"`
	Slug        string    `gorm:"type:varchar(255)" json:"slug"`
	Descripcion string    `gorm:"type:text" json:"descripcion"`
	ImagenURL   string    `gorm:"type:text" json:"imagen_url"`
	UsuarioID   uint      `gorm:"not null;index" json:"usuario_id"`
	// Sin default en la columna: GORM omite los bool en falso cuando la
	// columna tiene default y las playlists privadas se guardarían públicas
	EsPublica bool      `gorm:"not null" json:"es_publica"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Playlist) TableName() string {
	return "playlists"
}

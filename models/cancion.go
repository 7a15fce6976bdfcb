package models

import "time"

type Cancion struct {
	CancionID   uint   `gorm:"primaryKey;autoIncrement" json:"cancion_id"`
	Titulo      string `gorm:"type:varchar(255);not null" json:"titulo"`
	Descripcion string `gorm:"type:text" json:"descripcion"`
	ArchivoURL  string `gorm:"type:text;not null" json:"archivo_url"`
	ImagenURL   string `gorm:"type:text" json:"imagen_url"`
	// Duración en segundos, opcional
	Duracion  *int   `json:"duracion"`
	Genero    string `gorm:"type:varchar(100)" json:"genero"`
	UsuarioID uint   `gorm:"not null;index" json:"usuario_id"`
	AlbumID   *uint  `gorm:"index" json:"album_id"`

	// Contadores denormalizados, mantenidos por los handlers de interacciones
	Reproducciones int `gorm:"default:0" json:"reproducciones"`
	LikesCount     int `gorm:"default:0" json:"likes_count"`
	RepostsCount   int `gorm:"default:0" json:"reposts_count"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Album *Album `gorm:"foreignKey:AlbumID;constraint:OnDelete:SET NULL" json:"album,omitempty"`
}

func (Cancion) TableName() string {
	return "canciones"
}

package models

import "time"

// PlaylistCancion es la entidad de asociación playlist-canción.
// El par (playlist, cancion) es único; "orden" es solo para presentación,
// se permiten huecos y valores repetidos entre canciones distintas.
type PlaylistCancion struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PlaylistID uint      `gorm:"not null;uniqueIndex:uniq_playlist_cancion" json:"playlist_id"`
	CancionID  uint      `gorm:"not null;uniqueIndex:uniq_playlist_cancion" json:"cancion_id"`
	Orden      int       `gorm:"default:0" json:"orden"`
	AddedAt    time.Time `gorm:"autoCreateTime" json:"added_at"`

	Playlist Playlist `gorm:"foreignKey:PlaylistID;constraint:OnDelete:CASCADE" json:"-"`
	Cancion  Cancion  `gorm:"foreignKey:CancionID;constraint:OnDelete:CASCADE" json:"cancion,omitempty"`
}

func (PlaylistCancion) TableName() string {
	return "playlist_canciones"
}

package models

import (
	"errors"
	"time"
)

const (
	TipoLike   = "like"
	TipoRepost = "repost"
	TipoFollow = "follow"
)

// Interaccion codifica tres relaciones (like, repost, follow) como una unión
// etiquetada: "tipo" decide cuál de los tres objetivos debe estar presente,
// y Validar() exige exactamente uno. Cada combinación tiene su propio índice
// único, así que un usuario no puede repetir la misma interacción.
type Interaccion struct {
	InteraccionID     uint      `gorm:"primaryKey;autoIncrement" json:"interaccion_id"`
	UsuarioID         uint      `gorm:"not null;uniqueIndex:uniq_inter_cancion;uniqueIndex:uniq_inter_playlist;uniqueIndex:uniq_inter_seguir" json:"usuario_id"`
	CancionID         *uint     `gorm:"uniqueIndex:uniq_inter_cancion" json:"cancion_id"`
	PlaylistID        *uint     `gorm:"uniqueIndex:uniq_inter_playlist" json:"playlist_id"`
	UsuarioObjetivoID *uint     `gorm:"uniqueIndex:uniq_inter_seguir" json:"usuario_objetivo_id"`
	Tipo              string    `gorm:"type:varchar(10);not null;uniqueIndex:uniq_inter_cancion;uniqueIndex:uniq_inter_playlist;uniqueIndex:uniq_inter_seguir" json:"tipo"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`

	Cancion  *Cancion  `gorm:"foreignKey:CancionID;constraint:OnDelete:CASCADE" json:"-"`
	Playlist *Playlist `gorm:"foreignKey:PlaylistID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Interaccion) TableName() string {
	return "interacciones"
}

var (
	ErrTipoInvalido     = errors.New("tipo de interacción inválido (like, repost, follow)")
	ErrObjetivoInvalido = errors.New("la interacción debe tener exactamente un objetivo válido para su tipo")
	ErrAutoFollow       = errors.New("no puedes seguirte a ti mismo")
)

// Validar comprueba la exclusividad del objetivo según el tipo:
// like/repost apuntan a una canción XOR una playlist, follow a otro usuario.
func (i *Interaccion) Validar() error {
	switch i.Tipo {
	case TipoLike, TipoRepost:
		if i.UsuarioObjetivoID != nil {
			return ErrObjetivoInvalido
		}
		if (i.CancionID == nil) == (i.PlaylistID == nil) {
			return ErrObjetivoInvalido
		}
	case TipoFollow:
		if i.UsuarioObjetivoID == nil || i.CancionID != nil || i.PlaylistID != nil {
			return ErrObjetivoInvalido
		}
		if *i.UsuarioObjetivoID == i.UsuarioID {
			return ErrAutoFollow
		}
	default:
		return ErrTipoInvalido
	}
	return nil
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

type EstadisticasGenerales struct {
	ID                      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TotalUsuarios           int       `gorm:"default:0" json:"total_usuarios"`
	TotalCanciones          int       `gorm:"default:0" json:"total_canciones"`
	TotalPlaylists          int       `gorm:"default:0" json:"total_playlists"`
	TotalReproduccionesHoy  int       `gorm:"default:0" json:"total_reproducciones_hoy"`
	TotalReproduccionesMes  int       `gorm:"default:0" json:"total_reproducciones_mes"`
	UsuariosActivosHoy      int       `gorm:"default:0" json:"usuarios_activos_hoy"`
	UsuariosActivosMes      int       `gorm:"default:0" json:"usuarios_activos_mes"`
	FechaActualizacion      time.Time `gorm:"autoUpdateTime" json:"fecha_actualizacion"`
}

func (EstadisticasGenerales) TableName() string {
	return "estadisticas_generales"
}

// RegistroActividad es un log de auditoría escrito de forma optimista en cada
// operación relevante; ninguna ruta lo lee. El ID lo genera sonyflake.
type RegistroActividad struct {
	ID        uint64         `gorm:"primaryKey" json:"id"`
	UsuarioID *uint          `json:"usuario_id"`
	Accion    string         `gorm:"type:varchar(50)" json:"accion"` // login, logout, upload_song, create_playlist, delete_song, delete_playlist, follow_user, unfollow_user
	Detalles  datatypes.JSON `json:"detalles"`
	IPAddress string         `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent string         `gorm:"type:text" json:"user_agent"`
	Timestamp time.Time      `gorm:"autoCreateTime" json:"timestamp"`
}

func (RegistroActividad) TableName() string {
	return "registro_actividades"
}

type ConfiguracionSistema struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Clave                string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"clave"`
	Valor                string    `gorm:"type:text" json:"valor"`
	Descripcion          string    `gorm:"type:text" json:"descripcion"`
	TipoDato             string    `gorm:"type:varchar(20);default:'string'" json:"tipo_dato"`
	ModificablePorAdmin  bool      `gorm:"default:true" json:"modificable_por_admin"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ConfiguracionSistema) TableName() string {
	return "configuracion_sistema"
}

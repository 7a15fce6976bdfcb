package models

import (
	"time"

	"gorm.io/datatypes"
)

// IndicesBusqueda cachea términos ya buscados con los IDs de sus resultados
// y un contador de frecuencia para análisis de tendencias.
type IndicesBusqueda struct {
	ID                   uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	TerminoBusqueda      string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"termino_busqueda"`
	ResultadosCanciones  datatypes.JSON `json:"resultados_canciones"`
	ResultadosPlaylists  datatypes.JSON `json:"resultados_playlists"`
	ResultadosUsuarios   datatypes.JSON `json:"resultados_usuarios"`
	FrecuenciaBusqueda   int            `gorm:"default:1" json:"frecuencia_busqueda"`
	UltimaActualizacion  time.Time      `gorm:"autoUpdateTime" json:"ultima_actualizacion"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (IndicesBusqueda) TableName() string {
	return "indices_busqueda"
}

type HistorialBusqueda struct {
	ID                    uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioID             uint      `gorm:"not null;index" json:"usuario_id"`
	TerminoBusqueda       string    `gorm:"type:varchar(255);not null" json:"termino_busqueda"`
	ResultadosEncontrados int       `gorm:"default:0" json:"resultados_encontrados"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (HistorialBusqueda) TableName() string {
	return "historial_busqueda"
}

type SugerenciasBusqueda struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Termino     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"termino"`
	Categoria   string    `gorm:"type:varchar(50)" json:"categoria"` // cancion, playlist, usuario, genero, album
	Popularidad int       `gorm:"default:0" json:"popularidad"`
	Activo      bool      `gorm:"not null" json:"activo"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SugerenciasBusqueda) TableName() string {
	return "sugerencias_busqueda"
}

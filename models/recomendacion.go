package models

import (
	"time"

	"gorm.io/datatypes"
)

// Tablas de soporte para el futuro sistema de recomendaciones. Se migran con
// el resto del esquema pero ninguna ruta las consulta todavía: los endpoints
// de sugerencias actuales muestrean contenido al azar.

type PreferenciasUsuario struct {
	ID                   uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioID            uint           `gorm:"uniqueIndex;not null" json:"usuario_id"`
	GenerosFavoritos     datatypes.JSON `json:"generos_favoritos"`
	ArtistasSeguidos     datatypes.JSON `json:"artistas_seguidos"`
	TotalReproducciones  int            `gorm:"default:0" json:"total_reproducciones"`
	CancionesGustadas    int            `gorm:"default:0" json:"canciones_gustadas"`
	PlaylistsCreadas     int            `gorm:"default:0" json:"playlists_creadas"`
	UltimaActividad      time.Time      `gorm:"autoUpdateTime" json:"ultima_actividad"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (PreferenciasUsuario) TableName() string {
	return "preferencias_usuario"
}

type HistorialReproduccion struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioID            uint      `gorm:"not null;index" json:"usuario_id"`
	CancionID            uint      `gorm:"not null;index" json:"cancion_id"`
	DuracionReproducida  int       `json:"duracion_reproducida"` // segundos
	PorcentajeEscuchado  float64   `json:"porcentaje_escuchado"`
	Dispositivo          string    `gorm:"type:varchar(50)" json:"dispositivo"`
	Ubicacion            string    `gorm:"type:varchar(100)" json:"ubicacion"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (HistorialReproduccion) TableName() string {
	return "historial_reproducciones"
}

type SimilitudCanciones struct {
	ID                   uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CancionAID           uint           `gorm:"not null;uniqueIndex:uniq_sim_canciones" json:"cancion_a_id"`
	CancionBID           uint           `gorm:"not null;uniqueIndex:uniq_sim_canciones" json:"cancion_b_id"`
	PuntuacionSimilitud  float64        `json:"puntuacion_similitud"`
	FactoresSimilitud    datatypes.JSON `json:"factores_similitud"`
	CalculadaEn          time.Time      `gorm:"autoUpdateTime" json:"calculada_en"`
}

func (SimilitudCanciones) TableName() string {
	return "similitud_canciones"
}

type RecomendacionGenerada struct {
	ID                    uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioID             uint           `gorm:"not null;index" json:"usuario_id"`
	CancionesRecomendadas datatypes.JSON `json:"canciones_recomendadas"`
	AlgoritmoUsado        string         `gorm:"type:varchar(50)" json:"algoritmo_usado"`
	PuntuacionConfianza   float64        `json:"puntuacion_confianza"`
	ValidaHasta           time.Time      `json:"valida_hasta"`
	GeneradaEn            time.Time      `gorm:"autoCreateTime" json:"generada_en"`
}

func (RecomendacionGenerada) TableName() string {
	return "recomendaciones_generadas"
}

type FeedbackRecomendacion struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioID            uint      `gorm:"not null;uniqueIndex:uniq_feedback_recomendacion" json:"usuario_id"`
	CancionRecomendadaID uint      `gorm:"not null;uniqueIndex:uniq_feedback_recomendacion" json:"cancion_recomendada_id"`
	Accion               string    `gorm:"type:varchar(20)" json:"accion"` // reproducida, gustada, omitida, rechazada
	TiempoInteraccion    *int      `json:"tiempo_interaccion"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FeedbackRecomendacion) TableName() string {
	return "feedback_recomendaciones"
}

type PlaylistTendencia struct {
	ID                          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PlaylistID                  uint      `gorm:"uniqueIndex;not null" json:"playlist_id"`
	Titulo                      string    `gorm:"type:varchar(255)" json:"titulo"`
	UsuarioCreadorID            uint      `json:"usuario_creador_id"`
	ReproduccionesUltimaSemana  int       `gorm:"default:0" json:"reproducciones_ultima_semana"`
	NuevosSeguidores            int       `gorm:"default:0" json:"nuevos_seguidores"`
	PuntuacionTendencia         float64   `gorm:"default:0" json:"puntuacion_tendencia"`
	Categoria                   string    `gorm:"type:varchar(50)" json:"categoria"` // nueva, viral, genero, region, editorial
	ActivaEnTendencias          bool      `gorm:"default:true" json:"activa_en_tendencias"`
	FechaIngresoTendencia       time.Time `gorm:"autoCreateTime" json:"fecha_ingreso_tendencia"`
	UltimaActualizacion         time.Time `gorm:"autoUpdateTime" json:"ultima_actualizacion"`
}

func (PlaylistTendencia) TableName() string {
	return "playlist_tendencias"
}

type SimilitudPlaylists struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PlaylistAID        uint      `gorm:"not null;uniqueIndex:uniq_sim_playlists" json:"playlist_a_id"`
	PlaylistBID        uint      `gorm:"not null;uniqueIndex:uniq_sim_playlists" json:"playlist_b_id"`
	SimilitudContenido float64   `gorm:"default:0" json:"similitud_contenido"`
	SimilitudUsuarios  float64   `gorm:"default:0" json:"similitud_usuarios"`
	SimilitudTotal     float64   `gorm:"default:0" json:"similitud_total"`
	CancionesComunes   int       `gorm:"default:0" json:"canciones_comunes"`
	UsuariosComunes    int       `gorm:"default:0" json:"usuarios_comunes"`
	CalculadaEn        time.Time `gorm:"autoUpdateTime" json:"calculada_en"`
}

func (SimilitudPlaylists) TableName() string {
	return "similitud_playlists"
}

type RecomendacionPlaylist struct {
	ID                       uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioID                uint       `gorm:"not null;uniqueIndex:uniq_recomendacion_playlist" json:"usuario_id"`
	PlaylistRecomendadaID    uint       `gorm:"not null;uniqueIndex:uniq_recomendacion_playlist" json:"playlist_recomendada_id"`
	RazonRecomendacion       string     `gorm:"type:varchar(100)" json:"razon_recomendacion"`
	PuntuacionRecomendacion  float64    `json:"puntuacion_recomendacion"`
	MostradaAlUsuario        bool       `gorm:"default:false" json:"mostrada_al_usuario"`
	InteraccionUsuario       string     `gorm:"type:varchar(20)" json:"interaccion_usuario"`
	FechaRecomendacion       time.Time  `gorm:"autoCreateTime" json:"fecha_recomendacion"`
	FechaInteraccion         *time.Time `json:"fecha_interaccion"`
}

func (RecomendacionPlaylist) TableName() string {
	return "recomendaciones_playlists"
}

type CategoriasPlaylist struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre          string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"nombre"`
	Descripcion     string    `gorm:"type:text" json:"descripcion"`
	ColorHex        string    `gorm:"type:varchar(7);default:'#000000'" json:"color_hex"`
	Icono           string    `gorm:"type:varchar(50)" json:"icono"`
	EsGeneroMusical bool      `gorm:"default:false" json:"es_genero_musical"`
	EsEstadoAnimo   bool      `gorm:"default:false" json:"es_estado_animo"`
	EsActividad     bool      `gorm:"default:false" json:"es_actividad"`
	Activa          bool      `gorm:"default:true" json:"activa"`
	OrdenDisplay    int       `gorm:"default:0" json:"orden_display"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CategoriasPlaylist) TableName() string {
	return "categorias_playlist"
}

type PlaylistCategoria struct {
	ID                       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PlaylistID               uint      `gorm:"not null;uniqueIndex:uniq_playlist_categoria" json:"playlist_id"`
	CategoriaID              uint      `gorm:"not null;uniqueIndex:uniq_playlist_categoria" json:"categoria_id"`
	Relevancia               float64   `gorm:"default:1" json:"relevancia"`
	AsignadaAutomaticamente  bool      `gorm:"default:false" json:"asignada_automaticamente"`
	AsignadaEn               time.Time `gorm:"autoCreateTime" json:"asignada_en"`

	Categoria CategoriasPlaylist `gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PlaylistCategoria) TableName() string {
	return "playlist_categorias"
}

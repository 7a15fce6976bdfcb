package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Cristian7B/SoundCloudClone/config"
	"github.com/Cristian7B/SoundCloudClone/middleware"
	"github.com/Cristian7B/SoundCloudClone/models"
	"github.com/Cristian7B/SoundCloudClone/services"
)

const limiteBusqueda = 20

func idsJSON(ids []uint) datatypes.JSON {
	b, err := json.Marshal(ids)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

// ==================== BUSCAR ====================
// GET /api/buscar/?q=
// Lee el contenido a través del ContenidoStore, registra historial si hay
// sesión y mantiene el índice de términos con su frecuencia.
func Buscar(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Debes proporcionar un parámetro de búsqueda (?q=...)"})
		return
	}

	store := services.NewContenidoStore(config.DB)

	canciones, err := store.BuscarCanciones(query, limiteBusqueda)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar canciones"})
		return
	}
	playlists, err := store.BuscarPlaylistsPublicas(query, limiteBusqueda)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar playlists"})
		return
	}
	total := len(canciones) + len(playlists)

	if userID, ok := middleware.UsuarioActual(c); ok {
		config.DB.Create(&models.HistorialBusqueda{
			UsuarioID:             userID,
			TerminoBusqueda:       query,
			ResultadosEncontrados: total,
		})
	}

	actualizarIndice(query, canciones, playlists)

	c.JSON(http.StatusOK, gin.H{
		"query":            query,
		"canciones":        canciones,
		"playlists":        playlists,
		"total_resultados": total,
	})
}

func actualizarIndice(query string, canciones []models.Cancion, playlists []models.Playlist) {
	termino := strings.ToLower(query)

	var indice models.IndicesBusqueda
	err := config.DB.Where("termino_busqueda = ?", termino).First(&indice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cancionIDs := make([]uint, 0, len(canciones))
		for _, cn := range canciones {
			cancionIDs = append(cancionIDs, cn.CancionID)
		}
		playlistIDs := make([]uint, 0, len(playlists))
		for _, p := range playlists {
			playlistIDs = append(playlistIDs, p.PlaylistID)
		}
		config.DB.Create(&models.IndicesBusqueda{
			TerminoBusqueda:     termino,
			ResultadosCanciones: idsJSON(cancionIDs),
			ResultadosPlaylists: idsJSON(playlistIDs),
			ResultadosUsuarios:  datatypes.JSON("[]"),
		})
		return
	}
	if err == nil {
		config.DB.Model(&indice).UpdateColumn("frecuencia_busqueda", gorm.Expr("frecuencia_busqueda + ?", 1))
	}
}

// ==================== SUGERENCIAS DE BUSQUEDA ====================
// GET /api/buscar/sugerencias/
func SugerenciasBusqueda(c *gin.Context) {
	var sugerencias []models.SugerenciasBusqueda
	if err := config.DB.Where("activo = ?", true).
		Order("popularidad DESC").
		Limit(10).
		Find(&sugerencias).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener sugerencias"})
		return
	}

	resultado := make([]gin.H, 0, len(sugerencias))
	for _, s := range sugerencias {
		resultado = append(resultado, gin.H{"termino": s.Termino, "categoria": s.Categoria})
	}
	c.JSON(http.StatusOK, gin.H{"sugerencias": resultado})
}

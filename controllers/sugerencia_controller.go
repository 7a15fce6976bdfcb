package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cristian7B/SoundCloudClone/config"
	"github.com/Cristian7B/SoundCloudClone/services"
)

const tamanoMuestra = 5

// ==================== SUGERENCIA DE CANCIONES ====================
// GET /api/sugerencias-canciones/
// Muestreo aleatorio uniforme sobre todas las canciones.
func SugerenciaCanciones(c *gin.Context) {
	store := services.NewContenidoStore(config.DB)

	canciones, err := store.MuestraCanciones(tamanoMuestra)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener sugerencias"})
		return
	}
	if len(canciones) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "No hay canciones disponibles."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje":   fmt.Sprintf("Se encontraron %d canciones sugeridas", len(canciones)),
		"canciones": canciones,
	})
}

// ==================== SUGERENCIA DE PLAYLISTS ====================
// GET /api/sugerencias-playlists/
// Solo playlists públicas entran al pool.
func SugerenciaPlaylists(c *gin.Context) {
	store := services.NewContenidoStore(config.DB)

	playlists, err := store.MuestraPlaylistsPublicas(tamanoMuestra)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener sugerencias"})
		return
	}
	if len(playlists) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "No hay playlists disponibles."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje":   fmt.Sprintf("Se encontraron %d playlists sugeridas", len(playlists)),
		"playlists": playlists,
	})
}

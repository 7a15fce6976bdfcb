package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/Cristian7B/SoundCloudClone/config"
	"github.com/Cristian7B/SoundCloudClone/middleware"
	"github.com/Cristian7B/SoundCloudClone/models"
	"github.com/Cristian7B/SoundCloudClone/services"
)

type PlaylistInput struct {
	Titulo      string `json:"titulo" binding:"required,max=255"`
	Descripcion string `json:"descripcion"`
	ImagenURL   string `json:"imagen_url"`
	EsPublica   *bool  `json:"es_publica"`
}

// ==================== LISTAR PLAYLISTS ====================
// GET /api/contenido/playlists/
func GetPlaylists(c *gin.Context) {
	var playlists []models.Playlist
	if err := config.DB.Order("created_at DESC").Find(&playlists).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al listar playlists"})
		return
	}
	c.JSON(http.StatusOK, playlists)
}

// ==================== CREAR PLAYLIST ====================
// POST /api/contenido/playlists/
func CreatePlaylist(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)

	var input PlaylistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	esPublica := true
	if input.EsPublica != nil {
		esPublica = *input.EsPublica
	}

	playlist := models.Playlist{
		Titulo:      input.Titulo,
		Slug:        slug.Make(input.Titulo),
		Descripcion: input.Descripcion,
		ImagenURL:   input.ImagenURL,
		UsuarioID:   userID,
		EsPublica:   esPublica,
	}
	if err := config.DB.Create(&playlist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la playlist"})
		return
	}

	services.RegistrarActividad(config.DB, c, &userID, "create_playlist", map[string]interface{}{"playlist_id": playlist.PlaylistID})

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Playlist creada exitosamente",
		"playlist": playlist,
	})
}

// ==================== DETALLE PLAYLIST ====================
// GET /api/contenido/playlists/:id/
func GetPlaylistByID(c *gin.Context) {
	id := c.Param("id")

	var playlist models.Playlist
	if err := config.DB.First(&playlist, "playlist_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Playlist no encontrada"})
		return
	}
	c.JSON(http.StatusOK, playlist)
}

// ==================== ACTUALIZAR PLAYLIST ====================
// PUT /api/contenido/playlists/:id/
func UpdatePlaylist(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)
	id := c.Param("id")

	var playlist models.Playlist
	if err := config.DB.First(&playlist, "playlist_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Playlist no encontrada"})
		return
	}
	if playlist.UsuarioID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permisos para modificar esta playlist"})
		return
	}

	var input PlaylistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlist.Titulo = input.Titulo
	playlist.Slug = slug.Make(input.Titulo)
	playlist.Descripcion = input.Descripcion
	playlist.ImagenURL = input.ImagenURL
	if input.EsPublica != nil {
		playlist.EsPublica = *input.EsPublica
	}

	if err := config.DB.Save(&playlist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la playlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Playlist actualizada exitosamente",
		"playlist": playlist,
	})
}

// ==================== ELIMINAR PLAYLIST ====================
// DELETE /api/contenido/playlists/:id/
func DeletePlaylist(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)
	id := c.Param("id")

	var playlist models.Playlist
	if err := config.DB.First(&playlist, "playlist_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Playlist no encontrada"})
		return
	}
	if playlist.UsuarioID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permisos para eliminar esta playlist"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlist.PlaylistID).Delete(&models.PlaylistCancion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("playlist_id = ?", playlist.PlaylistID).Delete(&models.Interaccion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&playlist).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la playlist"})
		return
	}

	services.RegistrarActividad(config.DB, c, &userID, "delete_playlist", map[string]interface{}{"playlist_id": playlist.PlaylistID})

	c.JSON(http.StatusOK, gin.H{"message": "Playlist eliminada exitosamente"})
}

// ==================== CANCIONES DE UNA PLAYLIST ====================
// GET /api/contenido/playlists/:id/canciones/
// Las privadas solo las ve su dueño; el orden es (orden asc, added_at asc).
func GetCancionesDePlaylist(c *gin.Context) {
	id := c.Param("id")

	var playlist models.Playlist
	if err := config.DB.First(&playlist, "playlist_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Playlist no encontrada"})
		return
	}

	if !playlist.EsPublica {
		userID, ok := middleware.UsuarioActual(c)
		if !ok || userID != playlist.UsuarioID {
			c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permisos para ver esta playlist privada"})
			return
		}
	}

	var asociaciones []models.PlaylistCancion
	if err := config.DB.Preload("Cancion").
		Where("playlist_id = ?", playlist.PlaylistID).
		Order("orden ASC, added_at ASC").
		Find(&asociaciones).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al listar canciones de la playlist"})
		return
	}

	canciones := make([]gin.H, 0, len(asociaciones))
	for _, pc := range asociaciones {
		canciones = append(canciones, gin.H{
			"cancion":  pc.Cancion,
			"orden":    pc.Orden,
			"added_at": pc.AddedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"playlist": gin.H{
			"id":          playlist.PlaylistID,
			"titulo":      playlist.Titulo,
			"descripcion": playlist.Descripcion,
			"imagen_url":  playlist.ImagenURL,
			"es_publica":  playlist.EsPublica,
		},
		"total_canciones": len(canciones),
		"canciones":       canciones,
	})
}

type AgregarCancionInput struct {
	CancionID uint `json:"cancion_id" binding:"required"`
	Orden     *int `json:"orden"`
}

// ==================== AGREGAR CANCION ====================
// POST /api/contenido/playlists/:id/agregar-cancion/
// Sin orden explícito la canción se agrega al final (orden = total actual).
func AgregarCancionAPlaylist(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)
	id := c.Param("id")

	var input AgregarCancionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var playlist models.Playlist
	if err := config.DB.First(&playlist, "playlist_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Playlist no encontrada"})
		return
	}
	if playlist.UsuarioID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permisos para modificar esta playlist"})
		return
	}

	// La canción puede ser de cualquier usuario: el permiso es sobre la playlist
	var cancion models.Cancion
	if err := config.DB.First(&cancion, "cancion_id = ?", input.CancionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Canción no encontrada"})
		return
	}

	var existente models.PlaylistCancion
	if err := config.DB.Where("playlist_id = ? AND cancion_id = ?", playlist.PlaylistID, cancion.CancionID).
		First(&existente).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "La canción ya está en la playlist"})
		return
	}

	orden := 0
	if input.Orden != nil {
		orden = *input.Orden
	} else {
		var total int64
		config.DB.Model(&models.PlaylistCancion{}).Where("playlist_id = ?", playlist.PlaylistID).Count(&total)
		orden = int(total)
	}

	asociacion := models.PlaylistCancion{
		PlaylistID: playlist.PlaylistID,
		CancionID:  cancion.CancionID,
		Orden:      orden,
	}
	if err := config.DB.Create(&asociacion).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "La canción ya está en la playlist"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Canción agregada a la playlist exitosamente",
		"playlist_cancion": asociacion,
	})
}

// ==================== ELIMINAR CANCION DE PLAYLIST ====================
// DELETE /api/contenido/playlists/:id/canciones/:cancion_id/eliminar/
// No renumera los órdenes restantes: los huecos son esperados.
func EliminarCancionDePlaylist(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)
	playlistID := c.Param("id")
	cancionID := c.Param("cancion_id")

	var playlist models.Playlist
	if err := config.DB.First(&playlist, "playlist_id = ?", playlistID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Playlist no encontrada"})
		return
	}
	if playlist.UsuarioID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permisos para modificar esta playlist"})
		return
	}

	var asociacion models.PlaylistCancion
	if err := config.DB.Where("playlist_id = ? AND cancion_id = ?", playlistID, cancionID).
		First(&asociacion).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "La canción no está en la playlist"})
		return
	}

	if err := config.DB.Delete(&asociacion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la canción de la playlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Canción eliminada de la playlist exitosamente"})
}

type ReordenarInput struct {
	CancionesOrden []struct {
		CancionID *uint `json:"cancion_id"`
		Orden     *int  `json:"orden"`
	} `json:"canciones_orden"`
}

// ==================== REORDENAR PLAYLIST ====================
// PUT /api/contenido/playlists/:id/reordenar/
// Operación best-effort: actualiza lo que puede y reporta los errores por
// ítem, nunca aborta el lote completo.
func ReordenarCanciones(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)
	id := c.Param("id")

	var input ReordenarInput
	if err := c.ShouldBindJSON(&input); err != nil || len(input.CancionesOrden) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "canciones_orden es requerido",
			"formato": []gin.H{{"cancion_id": 1, "orden": 0}, {"cancion_id": 3, "orden": 1}},
		})
		return
	}

	var playlist models.Playlist
	if err := config.DB.First(&playlist, "playlist_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Playlist no encontrada"})
		return
	}
	if playlist.UsuarioID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permisos para modificar esta playlist"})
		return
	}

	actualizadas := 0
	var erroresItems []string
	for _, item := range input.CancionesOrden {
		if item.CancionID == nil || item.Orden == nil {
			erroresItems = append(erroresItems, "cancion_id y orden son requeridos para cada item")
			continue
		}

		var asociacion models.PlaylistCancion
		err := config.DB.Where("playlist_id = ? AND cancion_id = ?", playlist.PlaylistID, *item.CancionID).
			First(&asociacion).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			erroresItems = append(erroresItems, fmt.Sprintf("Canción %d no está en la playlist", *item.CancionID))
			continue
		}
		if err != nil {
			erroresItems = append(erroresItems, fmt.Sprintf("Error consultando la canción %d", *item.CancionID))
			continue
		}

		if err := config.DB.Model(&asociacion).Update("orden", *item.Orden).Error; err != nil {
			erroresItems = append(erroresItems, fmt.Sprintf("No se pudo actualizar la canción %d", *item.CancionID))
			continue
		}
		actualizadas++
	}

	respuesta := gin.H{
		"message":                fmt.Sprintf("%d canciones reordenadas exitosamente", actualizadas),
		"canciones_actualizadas": actualizadas,
	}
	if len(erroresItems) > 0 {
		respuesta["errores"] = erroresItems
	}
	c.JSON(http.StatusOK, respuesta)
}

// ==================== ASOCIACIONES ====================
// GET /api/contenido/playlist-canciones/
func GetPlaylistCanciones(c *gin.Context) {
	var asociaciones []models.PlaylistCancion
	if err := config.DB.Order("added_at DESC").Find(&asociaciones).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al listar asociaciones"})
		return
	}
	c.JSON(http.StatusOK, asociaciones)
}

// ==================== PLAYLISTS DE UN USUARIO ====================
// GET /api/contenido/usuarios/:id/playlists/
// Las privadas solo aparecen cuando el dueño consulta sus propias listas.
func GetPlaylistsDeUsuario(c *gin.Context) {
	usuarioID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de usuario inválido"})
		return
	}

	solicitante, autenticado := middleware.UsuarioActual(c)
	mostrarPrivadas := autenticado && solicitante == uint(usuarioID)

	var playlists []models.Playlist
	query := config.DB.Where("usuario_id = ?", usuarioID).Order("created_at DESC")
	if !mostrarPrivadas {
		query = query.Where("es_publica = ?", true)
	}
	if err := query.Find(&playlists).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al listar playlists del usuario"})
		return
	}

	var publicas, privadas []models.Playlist
	for _, p := range playlists {
		if p.EsPublica {
			publicas = append(publicas, p)
		} else {
			privadas = append(privadas, p)
		}
	}

	respuesta := gin.H{
		"usuario_id":      usuarioID,
		"total_playlists": len(playlists),
		"playlists_publicas": gin.H{
			"total":     len(publicas),
			"playlists": publicas,
		},
	}
	if mostrarPrivadas && len(privadas) > 0 {
		respuesta["playlists_privadas"] = gin.H{
			"total":     len(privadas),
			"playlists": privadas,
		}
	}
	c.JSON(http.StatusOK, respuesta)
}

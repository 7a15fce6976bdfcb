package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Cristian7B/SoundCloudClone/config"
	"github.com/Cristian7B/SoundCloudClone/middleware"
	"github.com/Cristian7B/SoundCloudClone/models"
	"github.com/Cristian7B/SoundCloudClone/services"
	"github.com/Cristian7B/SoundCloudClone/ws"
)

type CancionInput struct {
	Titulo      string `json:"titulo" binding:"required,max=255"`
	Descripcion string `json:"descripcion"`
	ArchivoURL  string `json:"archivo_url" binding:"required,url"`
	ImagenURL   string `json:"imagen_url"`
	Duracion    *int   `json:"duracion"`
	Genero      string `json:"genero"`
	AlbumID     *uint  `json:"album_id"`
}

// ==================== LISTAR CANCIONES ====================
// GET /api/contenido/canciones/
func GetCanciones(c *gin.Context) {
	var canciones []models.Cancion
	if err := config.DB.Order("created_at DESC").Find(&canciones).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al listar canciones"})
		return
	}
	c.JSON(http.StatusOK, canciones)
}

// ==================== CREAR CANCION ====================
// POST /api/contenido/canciones/
func CreateCancion(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)

	var input CancionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.AlbumID != nil {
		var album models.Album
		if err := config.DB.First(&album, "album_id = ?", *input.AlbumID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Álbum no encontrado"})
			return
		}
	}

	cancion := models.Cancion{
		Titulo:      input.Titulo,
		Descripcion: input.Descripcion,
		ArchivoURL:  input.ArchivoURL,
		ImagenURL:   input.ImagenURL,
		Duracion:    input.Duracion,
		Genero:      input.Genero,
		AlbumID:     input.AlbumID,
		UsuarioID:   userID,
	}
	if err := config.DB.Create(&cancion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la canción"})
		return
	}

	services.RegistrarActividad(config.DB, c, &userID, "upload_song", map[string]interface{}{"cancion_id": cancion.CancionID})
	ws.PublicarEvento("nueva_cancion", userID, map[string]interface{}{"cancion_id": cancion.CancionID, "titulo": cancion.Titulo})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Canción creada exitosamente",
		"cancion": cancion,
	})
}

// ==================== DETALLE CANCION ====================
// GET /api/contenido/canciones/:id/
func GetCancionByID(c *gin.Context) {
	id := c.Param("id")

	var cancion models.Cancion
	if err := config.DB.Preload("Album").First(&cancion, "cancion_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Canción no encontrada"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la canción"})
		}
		return
	}

	// Cada vista cuenta como reproducción
	config.DB.Model(&cancion).UpdateColumn("reproducciones", gorm.Expr("reproducciones + ?", 1))
	cancion.Reproducciones++

	c.JSON(http.StatusOK, cancion)
}

// ==================== ACTUALIZAR CANCION ====================
// PUT /api/contenido/canciones/:id/
func UpdateCancion(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)
	id := c.Param("id")

	var cancion models.Cancion
	if err := config.DB.First(&cancion, "cancion_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Canción no encontrada"})
		return
	}
	if cancion.UsuarioID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permisos para modificar esta canción"})
		return
	}

	var input CancionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cancion.Titulo = input.Titulo
	cancion.Descripcion = input.Descripcion
	cancion.ArchivoURL = input.ArchivoURL
	cancion.ImagenURL = input.ImagenURL
	cancion.Duracion = input.Duracion
	cancion.Genero = input.Genero
	cancion.AlbumID = input.AlbumID

	if err := config.DB.Save(&cancion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la canción"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Canción actualizada exitosamente",
		"cancion": cancion,
	})
}

// ==================== ELIMINAR CANCION ====================
// DELETE /api/contenido/canciones/:id/
// Borra en cascada sus asociaciones de playlist y sus interacciones.
func DeleteCancion(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)
	id := c.Param("id")

	var cancion models.Cancion
	if err := config.DB.First(&cancion, "cancion_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Canción no encontrada"})
		return
	}
	if cancion.UsuarioID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permisos para eliminar esta canción"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cancion_id = ?", cancion.CancionID).Delete(&models.PlaylistCancion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cancion_id = ?", cancion.CancionID).Delete(&models.Interaccion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cancion).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la canción"})
		return
	}

	services.RegistrarActividad(config.DB, c, &userID, "delete_song", map[string]interface{}{"cancion_id": cancion.CancionID})

	c.JSON(http.StatusOK, gin.H{"message": "Canción eliminada exitosamente"})
}

// ==================== BUSCAR CANCIONES ====================
// GET /api/contenido/canciones/buscar/?q=
func BuscarCanciones(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Parámetro de búsqueda \"q\" es requerido",
			"ejemplo": "/canciones/buscar/?q=rock",
		})
		return
	}
	if len(query) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "El término de búsqueda debe tener al menos 2 caracteres"})
		return
	}

	patron := services.PatronLike(query)
	var canciones []models.Cancion
	if err := config.DB.
		Where(`LOWER(titulo) LIKE ? ESCAPE '\' OR LOWER(descripcion) LIKE ? ESCAPE '\' OR LOWER(genero) LIKE ? ESCAPE '\'`, patron, patron, patron).
		Order("reproducciones DESC, created_at DESC").
		Find(&canciones).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar canciones"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"termino_busqueda": query,
		"total_resultados": len(canciones),
		"resultados":       canciones,
	})
}

// ==================== CANCIONES DE UN USUARIO ====================
// GET /api/contenido/usuarios/:id/canciones/
func GetCancionesDeUsuario(c *gin.Context) {
	usuarioID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de usuario inválido"})
		return
	}

	var canciones []models.Cancion
	if err := config.DB.Where("usuario_id = ?", usuarioID).Order("created_at DESC").Find(&canciones).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al listar canciones del usuario"})
		return
	}

	totalReproducciones := 0
	totalLikes := 0
	totalReposts := 0
	generosVistos := map[string]bool{}
	albumsVistos := map[uint]bool{}
	for _, cancion := range canciones {
		totalReproducciones += cancion.Reproducciones
		totalLikes += cancion.LikesCount
		totalReposts += cancion.RepostsCount
		if cancion.Genero != "" {
			generosVistos[cancion.Genero] = true
		}
		if cancion.AlbumID != nil {
			albumsVistos[*cancion.AlbumID] = true
		}
	}
	generos := make([]string, 0, len(generosVistos))
	for g := range generosVistos {
		generos = append(generos, g)
	}

	c.JSON(http.StatusOK, gin.H{
		"usuario_id":      usuarioID,
		"total_canciones": len(canciones),
		"estadisticas": gin.H{
			"total_reproducciones": totalReproducciones,
			"total_likes":          totalLikes,
			"total_reposts":        totalReposts,
			"generos_musicales":    generos,
			"total_albums":         len(albumsVistos),
		},
		"canciones": canciones,
	})
}

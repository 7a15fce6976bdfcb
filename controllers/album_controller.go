package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/Cristian7B/SoundCloudClone/config"
	"github.com/Cristian7B/SoundCloudClone/middleware"
	"github.com/Cristian7B/SoundCloudClone/models"
)

type AlbumInput struct {
	Titulo      string `json:"titulo" binding:"required,max=255"`
	Descripcion string `json:"descripcion"`
	ImagenURL   string `json:"imagen_url"`
}

// ==================== LISTAR ALBUMS ====================
// GET /api/contenido/albums/
func GetAlbums(c *gin.Context) {
	var albums []models.Album
	if err := config.DB.Order("created_at DESC").Find(&albums).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al listar álbumes"})
		return
	}
	c.JSON(http.StatusOK, albums)
}

// ==================== CREAR ALBUM ====================
// POST /api/contenido/albums/
func CreateAlbum(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)

	var input AlbumInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	album := models.Album{
		Titulo:      input.Titulo,
		Slug:        slug.Make(input.Titulo),
		Descripcion: input.Descripcion,
		ImagenURL:   input.ImagenURL,
		UsuarioID:   userID,
	}
	if err := config.DB.Create(&album).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el álbum"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Álbum creado exitosamente",
		"album":   album,
	})
}

// ==================== DETALLE ALBUM ====================
// GET /api/contenido/albums/:id/
func GetAlbumByID(c *gin.Context) {
	id := c.Param("id")

	var album models.Album
	if err := config.DB.First(&album, "album_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Álbum no encontrado"})
		return
	}
	c.JSON(http.StatusOK, album)
}

// ==================== ACTUALIZAR ALBUM ====================
// PUT /api/contenido/albums/:id/
func UpdateAlbum(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)
	id := c.Param("id")

	var album models.Album
	if err := config.DB.First(&album, "album_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Álbum no encontrado"})
		return
	}
	if album.UsuarioID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permisos para modificar este álbum"})
		return
	}

	var input AlbumInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	album.Titulo = input.Titulo
	album.Slug = slug.Make(input.Titulo)
	album.Descripcion = input.Descripcion
	album.ImagenURL = input.ImagenURL

	if err := config.DB.Save(&album).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el álbum"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Álbum actualizado exitosamente",
		"album":   album,
	})
}

// ==================== ELIMINAR ALBUM ====================
// DELETE /api/contenido/albums/:id/
// Las canciones del álbum quedan sin álbum, no se borran.
func DeleteAlbum(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)
	id := c.Param("id")

	var album models.Album
	if err := config.DB.First(&album, "album_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Álbum no encontrado"})
		return
	}
	if album.UsuarioID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permisos para eliminar este álbum"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Cancion{}).
			Where("album_id = ?", album.AlbumID).
			Update("album_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&album).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el álbum"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Álbum eliminado exitosamente"})
}

// ==================== CANCIONES DE UN ALBUM ====================
// GET /api/contenido/albums/:id/canciones/
func GetCancionesDeAlbum(c *gin.Context) {
	id := c.Param("id")

	var album models.Album
	if err := config.DB.First(&album, "album_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Álbum no encontrado"})
		return
	}

	var canciones []models.Cancion
	if err := config.DB.Where("album_id = ?", album.AlbumID).Order("created_at").Find(&canciones).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al listar canciones del álbum"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"album": gin.H{
			"id":          album.AlbumID,
			"titulo":      album.Titulo,
			"descripcion": album.Descripcion,
			"imagen_url":  album.ImagenURL,
		},
		"total_canciones": len(canciones),
		"canciones":       canciones,
	})
}

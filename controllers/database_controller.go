package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Cristian7B/SoundCloudClone/config"
	"github.com/Cristian7B/SoundCloudClone/middleware"
	"github.com/Cristian7B/SoundCloudClone/models"
	"github.com/Cristian7B/SoundCloudClone/utils"
)

// Rutas alternas de registro/consulta que usa el panel interno. Duplican a
// propósito parte de /api/auth y /api/contenido con payloads mínimos.

type RegistroCancionInput struct {
	Titulo     string `json:"titulo" binding:"required"`
	ArchivoURL string `json:"archivo_url" binding:"required,url"`
}

// ==================== REGISTRO RAPIDO DE CANCION ====================
// POST /api/database/register-song/
func RegistroCancion(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)

	var input RegistroCancionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "No se pudo registrar la canción",
			"details": err.Error(),
		})
		return
	}

	cancion := models.Cancion{
		Titulo:     input.Titulo,
		ArchivoURL: input.ArchivoURL,
		UsuarioID:  userID,
	}
	if err := config.DB.Create(&cancion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo registrar la canción"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "La canción se ha registrado exitosamente",
		"cancion": cancion,
	})
}

type RegistroPlaylistInput struct {
	Titulo string `json:"titulo" binding:"required"`
}

// ==================== REGISTRO RAPIDO DE PLAYLIST ====================
// POST /api/database/register-playlist/
func RegistroPlaylist(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)

	var input RegistroPlaylistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "No se pudo crear la playlist",
			"details": err.Error(),
		})
		return
	}

	playlist := models.Playlist{
		Titulo:    input.Titulo,
		UsuarioID: userID,
		EsPublica: true,
	}
	if err := config.DB.Create(&playlist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la playlist"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "La playlist se ha creado exitosamente",
		"playlist": playlist,
	})
}

// ==================== USER INFO ====================
// GET /api/database/user-info/
func GetUserInfo(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)

	var usuario models.Usuario
	if err := config.DB.First(&usuario, "user_id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Error obteniendo información del usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":    usuario.UserID,
		"email":      usuario.Email,
		"username":   usuario.Username,
		"nombre":     usuario.Nombre,
		"created_at": usuario.CreatedAt,
	})
}

// ==================== UPDATE USER ====================
// PATCH /api/database/update-user/
func UpdateUser(c *gin.Context) {
	UpdateInfo(c)
}

// ==================== LOGIN ALTERNO ====================
// POST /api/database/login/
func LoginAlterno(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var usuario models.Usuario
	if err := config.DB.Where("email = ?", input.Email).First(&usuario).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Usuario no encontrado"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Credenciales inválidas"})
		return
	}

	pair, err := utils.GenerateTokenPair(usuario.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access":  pair.Access,
		"refresh": pair.Refresh,
		"user": gin.H{
			"user_id":  usuario.UserID,
			"email":    usuario.Email,
			"username": usuario.Username,
			"nombre":   usuario.Nombre,
		},
	})
}

// ==================== CHECK USER ====================
// GET /api/database/check-user/?email=
func CheckUser(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email es requerido"})
		return
	}

	var usuario models.Usuario
	if err := config.DB.Where("email = ?", email).First(&usuario).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"exists": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exists": true,
		"user": gin.H{
			"user_id":  usuario.UserID,
			"email":    usuario.Email,
			"username": usuario.Username,
			"nombre":   usuario.Nombre,
		},
	})
}

// ==================== ESTADISTICAS ====================
// GET /api/database/estadisticas/
// Recalcula y persiste la fila de estadísticas generales. Solo admin.
func GetEstadisticas(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)

	var usuario models.Usuario
	if err := config.DB.First(&usuario, "user_id = ?", userID).Error; err != nil || !usuario.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Solo un administrador puede ver las estadísticas"})
		return
	}

	var totalUsuarios, totalCanciones, totalPlaylists int64
	config.DB.Model(&models.Usuario{}).Count(&totalUsuarios)
	config.DB.Model(&models.Cancion{}).Count(&totalCanciones)
	config.DB.Model(&models.Playlist{}).Count(&totalPlaylists)

	// "Hoy" corta en la medianoche local del servidor, no en el día UTC
	ahora := time.Now()
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	mes := ahora.AddDate(0, -1, 0)
	var activosHoy, activosMes int64
	config.DB.Model(&models.RegistroActividad{}).
		Where("accion = ? AND timestamp >= ?", "login", hoy).
		Distinct("usuario_id").Count(&activosHoy)
	config.DB.Model(&models.RegistroActividad{}).
		Where("accion = ? AND timestamp >= ?", "login", mes).
		Distinct("usuario_id").Count(&activosMes)

	stats := models.EstadisticasGenerales{
		TotalUsuarios:      int(totalUsuarios),
		TotalCanciones:     int(totalCanciones),
		TotalPlaylists:     int(totalPlaylists),
		UsuariosActivosHoy: int(activosHoy),
		UsuariosActivosMes: int(activosMes),
	}

	var existente models.EstadisticasGenerales
	if err := config.DB.First(&existente).Error; err == nil {
		stats.ID = existente.ID
	}
	config.DB.Save(&stats)

	c.JSON(http.StatusOK, stats)
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Cristian7B/SoundCloudClone/config"
	"github.com/Cristian7B/SoundCloudClone/middleware"
	"github.com/Cristian7B/SoundCloudClone/models"
	"github.com/Cristian7B/SoundCloudClone/services"
	"github.com/Cristian7B/SoundCloudClone/utils"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Nombre   string `json:"nombre"`
	Password string `json:"password" binding:"required,min=8"`
}

// ==================== REGISTER ====================
// POST /api/auth/register/
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existente models.Usuario
	if err := config.DB.Where("email = ?", input.Email).First(&existente).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El email ya está registrado"})
		return
	}
	if err := config.DB.Where("username = ?", input.Username).First(&existente).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El username ya está en uso"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo procesar la contraseña"})
		return
	}

	nombre := input.Nombre
	if nombre == "" {
		nombre = input.Username
	}

	usuario := models.Usuario{
		Username: input.Username,
		Email:    input.Email,
		Nombre:   nombre,
		Password: string(hash),
		IsActive: true,
	}
	if err := config.DB.Create(&usuario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el usuario"})
		return
	}

	pair, err := utils.GenerateTokenPair(usuario.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuario registrado exitosamente",
		"user":    usuario,
		"access":  pair.Access,
		"refresh": pair.Refresh,
	})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ==================== LOGIN ====================
// POST /api/auth/login/
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Mensaje genérico en todas las ramas para no filtrar qué campo falló
	var usuario models.Usuario
	if err := config.DB.Where("email = ?", input.Email).First(&usuario).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Credenciales inválidas"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Credenciales inválidas"})
		return
	}
	if !usuario.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuenta desactivada"})
		return
	}

	pair, err := utils.GenerateTokenPair(usuario.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el token"})
		return
	}

	services.RegistrarActividad(config.DB, c, &usuario.UserID, "login", nil)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login exitoso",
		"user":    usuario,
		"access":  pair.Access,
		"refresh": pair.Refresh,
	})
}

// ==================== PROFILE ====================
// GET /api/auth/profile/
func Profile(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)

	var usuario models.Usuario
	if err := config.DB.First(&usuario, "user_id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}
	c.JSON(http.StatusOK, usuario)
}

type UpdateInfoInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
}

// ==================== UPDATE INFO ====================
// PATCH /api/auth/update-info/
func UpdateInfo(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)

	var input UpdateInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var usuario models.Usuario
	if err := config.DB.First(&usuario, "user_id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	updates := map[string]interface{}{}
	if input.Email != "" && input.Email != usuario.Email {
		var otro models.Usuario
		if err := config.DB.Where("email = ? AND user_id != ?", input.Email, userID).First(&otro).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El email ya está registrado"})
			return
		}
		updates["email"] = input.Email
	}
	if input.Username != "" && input.Username != usuario.Username {
		var otro models.Usuario
		if err := config.DB.Where("username = ? AND user_id != ?", input.Username, userID).First(&otro).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El username ya está en uso"})
			return
		}
		updates["username"] = input.Username
	}
	if input.Nombre != "" {
		updates["nombre"] = input.Nombre
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&usuario).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el perfil"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Perfil actualizado exitosamente",
		"user":    usuario,
	})
}

type LogoutInput struct {
	Refresh string `json:"refresh"`
}

// ==================== LOGOUT ====================
// POST /api/auth/logout/
// Cualquier fallo colapsa en un 400 genérico, igual que el resto de la
// plataforma espera de esta ruta.
func Logout(c *gin.Context) {
	var input LogoutInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Refresh == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error en logout"})
		return
	}

	claims, err := utils.VerifyToken(input.Refresh, utils.TokenRefresh)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error en logout"})
		return
	}

	entrada := models.TokenBlacklist{
		JTI:       claims.ID,
		UsuarioID: claims.UserID,
		ExpiraEn:  claims.ExpiresAt.Time,
	}
	if err := config.DB.Create(&entrada).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error en logout"})
		return
	}

	services.RegistrarActividad(config.DB, c, &claims.UserID, "logout", nil)

	c.JSON(http.StatusOK, gin.H{"message": "Logout exitoso"})
}

type RefreshInput struct {
	Refresh string `json:"refresh" binding:"required"`
}

// ==================== TOKEN REFRESH ====================
// POST /api/auth/token/refresh/
// Rotación: el refresh entregado queda en blacklist y se emite un par nuevo.
func RefreshToken(c *gin.Context) {
	var input RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := utils.VerifyToken(input.Refresh, utils.TokenRefresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token inválido o expirado"})
		return
	}

	var bloqueado models.TokenBlacklist
	if err := config.DB.Where("jti = ?", claims.ID).First(&bloqueado).Error; err == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token inválido o expirado"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error validando el token"})
		return
	}

	entrada := models.TokenBlacklist{
		JTI:       claims.ID,
		UsuarioID: claims.UserID,
		ExpiraEn:  claims.ExpiresAt.Time,
	}
	if err := config.DB.Create(&entrada).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error rotando el token"})
		return
	}

	pair, err := utils.GenerateTokenPair(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access":  pair.Access,
		"refresh": pair.Refresh,
	})
}

// ==================== NOMBRE PUBLICO ====================
// GET /api/auth/usuarios/:id/nombre/
func UsuarioNombre(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de usuario inválido"})
		return
	}

	var usuario models.Usuario
	if err := config.DB.First(&usuario, "user_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":  usuario.UserID,
		"nombre":   usuario.Nombre,
		"username": usuario.Username,
	})
}

// LimpiarBlacklist borra entradas ya vencidas; pensado para llamarse desde
// un cron externo, no desde el ciclo de peticiones.
func LimpiarBlacklist() {
	config.DB.Where("expira_en < ?", time.Now()).Delete(&models.TokenBlacklist{})
}

package controllers

import (
	"errors"
	"fmt"
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

type InteraccionInput struct {
	Tipo              string `json:"tipo" binding:"required"`
	CancionID         *uint  `json:"cancion_id"`
	PlaylistID        *uint  `json:"playlist_id"`
	UsuarioObjetivoID *uint  `json:"usuario_objetivo_id"`
}

func (in *InteraccionInput) aModelo(usuarioID uint) models.Interaccion {
	return models.Interaccion{
		UsuarioID:         usuarioID,
		Tipo:              in.Tipo,
		CancionID:         in.CancionID,
		PlaylistID:        in.PlaylistID,
		UsuarioObjetivoID: in.UsuarioObjetivoID,
	}
}

// verificarObjetivo confirma que el objetivo de la interacción existe.
func verificarObjetivo(db *gorm.DB, i *models.Interaccion) error {
	switch {
	case i.CancionID != nil:
		var cancion models.Cancion
		if err := db.First(&cancion, "cancion_id = ?", *i.CancionID).Error; err != nil {
			return errors.New("Canción no encontrada")
		}
	case i.PlaylistID != nil:
		var playlist models.Playlist
		if err := db.First(&playlist, "playlist_id = ?", *i.PlaylistID).Error; err != nil {
			return errors.New("Playlist no encontrada")
		}
	case i.UsuarioObjetivoID != nil:
		var usuario models.Usuario
		if err := db.First(&usuario, "user_id = ?", *i.UsuarioObjetivoID).Error; err != nil {
			return errors.New("Usuario objetivo no encontrado")
		}
	}
	return nil
}

// filtroInteraccion arma el WHERE que identifica una interacción única
// (actor, objetivo, tipo).
func filtroInteraccion(db *gorm.DB, i *models.Interaccion) *gorm.DB {
	q := db.Where("usuario_id = ? AND tipo = ?", i.UsuarioID, i.Tipo)
	switch {
	case i.CancionID != nil:
		q = q.Where("cancion_id = ?", *i.CancionID)
	case i.PlaylistID != nil:
		q = q.Where("playlist_id = ?", *i.PlaylistID)
	case i.UsuarioObjetivoID != nil:
		q = q.Where("usuario_objetivo_id = ?", *i.UsuarioObjetivoID)
	}
	return q
}

func columnaContador(tipo string) string {
	if tipo == models.TipoLike {
		return "likes_count"
	}
	return "reposts_count"
}

// Los contadores se ajustan dentro de la misma transacción que escribe la
// interacción, nunca como paso separado.
func incrementarContador(tx *gorm.DB, i *models.Interaccion) error {
	if i.CancionID == nil || (i.Tipo != models.TipoLike && i.Tipo != models.TipoRepost) {
		return nil
	}
	col := columnaContador(i.Tipo)
	return tx.Model(&models.Cancion{}).
		Where("cancion_id = ?", *i.CancionID).
		UpdateColumn(col, gorm.Expr(col+" + ?", 1)).Error
}

func decrementarContador(tx *gorm.DB, i *models.Interaccion) error {
	if i.CancionID == nil || (i.Tipo != models.TipoLike && i.Tipo != models.TipoRepost) {
		return nil
	}
	// CASE WHEN para que el piso en cero sea portable entre motores
	col := columnaContador(i.Tipo)
	return tx.Model(&models.Cancion{}).
		Where("cancion_id = ?", *i.CancionID).
		UpdateColumn(col, gorm.Expr("CASE WHEN "+col+" > 0 THEN "+col+" - 1 ELSE 0 END")).Error
}

func capitalizar(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ==================== CREAR INTERACCION ====================
// POST /api/contenido/interacciones/
func CreateInteraccion(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)

	var input InteraccionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interaccion := input.aModelo(userID)
	if err := interaccion.Validar(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := verificarObjetivo(config.DB, &interaccion); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var existente models.Interaccion
	if err := filtroInteraccion(config.DB, &interaccion).First(&existente).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Ya has hecho %s a este elemento", interaccion.Tipo)})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&interaccion).Error; err != nil {
			return err
		}
		return incrementarContador(tx, &interaccion)
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Ya has hecho %s a este elemento", interaccion.Tipo)})
		return
	}

	if interaccion.Tipo == models.TipoFollow {
		services.RegistrarActividad(config.DB, c, &userID, "follow_user", map[string]interface{}{"usuario_objetivo_id": *interaccion.UsuarioObjetivoID})
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     fmt.Sprintf("%s registrado exitosamente", capitalizar(interaccion.Tipo)),
		"interaccion": interaccion,
	})
}

// ==================== ELIMINAR INTERACCION ====================
// DELETE /api/contenido/interacciones/:id/
func DeleteInteraccion(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)
	id := c.Param("id")

	var interaccion models.Interaccion
	if err := config.DB.First(&interaccion, "interaccion_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Interacción no encontrada"})
		return
	}
	if interaccion.UsuarioID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permisos para eliminar esta interacción"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&interaccion).Error; err != nil {
			return err
		}
		return decrementarContador(tx, &interaccion)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la interacción"})
		return
	}

	if interaccion.Tipo == models.TipoFollow {
		services.RegistrarActividad(config.DB, c, &userID, "unfollow_user", map[string]interface{}{"usuario_objetivo_id": *interaccion.UsuarioObjetivoID})
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s eliminado exitosamente", capitalizar(interaccion.Tipo))})
}

// ==================== TOGGLE ====================
// POST /api/contenido/interacciones/toggle/
// Borrar-si-existe y si no crear, todo dentro de una transacción: dos toggles
// concurrentes nunca dejan el contador desincronizado de la tabla.
func ToggleInteraccion(c *gin.Context) {
	userID, _ := middleware.UsuarioActual(c)

	var input InteraccionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interaccion := input.aModelo(userID)
	if err := interaccion.Validar(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := verificarObjetivo(config.DB, &interaccion); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	eliminado := false
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		res := filtroInteraccion(tx, &interaccion).Delete(&models.Interaccion{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			eliminado = true
			return decrementarContador(tx, &interaccion)
		}
		if err := tx.Create(&interaccion).Error; err != nil {
			return err
		}
		return incrementarContador(tx, &interaccion)
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "La interacción cambió mientras se procesaba, intenta de nuevo"})
		return
	}

	if interaccion.Tipo == models.TipoFollow {
		accion := "follow_user"
		if eliminado {
			accion = "unfollow_user"
		}
		services.RegistrarActividad(config.DB, c, &userID, accion, map[string]interface{}{"usuario_objetivo_id": *interaccion.UsuarioObjetivoID})
	}
	ws.PublicarEvento("interaccion", userID, map[string]interface{}{"tipo": interaccion.Tipo, "activo": !eliminado})

	if eliminado {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("%s eliminado", capitalizar(interaccion.Tipo)),
			"accion":  "eliminado",
			"activo":  false,
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     fmt.Sprintf("%s agregado", capitalizar(interaccion.Tipo)),
		"accion":      "creado",
		"activo":      true,
		"interaccion": interaccion,
	})
}

// ==================== INTERACCIONES DE UN USUARIO ====================
// GET /api/contenido/usuarios/:id/interacciones/?tipo=
func GetInteraccionesDeUsuario(c *gin.Context) {
	usuarioID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de usuario inválido"})
		return
	}

	query := config.DB.Where("usuario_id = ?", usuarioID)
	tipo := c.Query("tipo")
	if tipo == models.TipoLike || tipo == models.TipoRepost || tipo == models.TipoFollow {
		query = query.Where("tipo = ?", tipo)
	}

	var interacciones []models.Interaccion
	if err := query.Order("created_at DESC").Find(&interacciones).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al listar interacciones"})
		return
	}

	totales := map[string]int{}
	for _, i := range interacciones {
		totales[i.Tipo]++
	}

	c.JSON(http.StatusOK, gin.H{
		"usuario_id":          usuarioID,
		"total_interacciones": len(interacciones),
		"estadisticas": gin.H{
			"total_likes":   totales[models.TipoLike],
			"total_reposts": totales[models.TipoRepost],
			"total_follows": totales[models.TipoFollow],
		},
		"interacciones": interacciones,
	})
}

package services

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/sony/sonyflake"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Cristian7B/SoundCloudClone/models"
)

var flake = sonyflake.NewSonyflake(sonyflake.Settings{})

// RegistrarActividad escribe una fila de auditoría. Es fire-and-forget: si
// falla el ID o el insert, la petición original no se ve afectada.
func RegistrarActividad(db *gorm.DB, c *gin.Context, usuarioID *uint, accion string, detalles map[string]interface{}) {
	if flake == nil {
		return
	}
	id, err := flake.NextID()
	if err != nil {
		log.Debug("No se pudo generar ID de actividad", "err", err)
		return
	}

	var raw datatypes.JSON
	if detalles != nil {
		if b, err := json.Marshal(detalles); err == nil {
			raw = datatypes.JSON(b)
		}
	}

	registro := models.RegistroActividad{
		ID:        id,
		UsuarioID: usuarioID,
		Accion:    accion,
		Detalles:  raw,
	}
	if c != nil {
		registro.IPAddress = c.ClientIP()
		registro.UserAgent = c.Request.UserAgent()
	}

	if err := db.Create(&registro).Error; err != nil {
		log.Debug("No se pudo guardar el registro de actividad", "err", err)
	}
}

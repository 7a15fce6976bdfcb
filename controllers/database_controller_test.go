package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cristian7B/SoundCloudClone/config"
	"github.com/Cristian7B/SoundCloudClone/models"
)

func TestRegistroRapido(t *testing.T) {
	r := setupRouter(t)
	userID, access, _ := registrarUsuario(t, r, "ana")

	w := hacerPeticion(t, r, http.MethodPost, "/api/database/register-song/", gin.H{
		"titulo":      "Demo rápido",
		"archivo_url": "https://cdn.example.com/demo.mp3",
	}, access)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	cancion := cuerpoJSON(t, w)["cancion"].(map[string]interface{})
	assert.Equal(t, float64(userID), cancion["usuario_id"])

	w = hacerPeticion(t, r, http.MethodPost, "/api/database/register-playlist/", gin.H{
		"titulo": "Lista rápida",
	}, access)
	require.Equal(t, http.StatusCreated, w.Code)
	playlist := cuerpoJSON(t, w)["playlist"].(map[string]interface{})
	assert.Equal(t, true, playlist["es_publica"])
}

func TestLoginAlternoYCheckUser(t *testing.T) {
	r := setupRouter(t)
	registrarUsuario(t, r, "bruno")

	w := hacerPeticion(t, r, http.MethodPost, "/api/database/login/", gin.H{
		"email":    "bruno@example.com",
		"password": "superclave123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, cuerpoJSON(t, w)["access"])

	// A diferencia de /api/auth/login/, esta ruta sí distingue el error
	w = hacerPeticion(t, r, http.MethodPost, "/api/database/login/", gin.H{
		"email":    "nadie@example.com",
		"password": "superclave123",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Usuario no encontrado", cuerpoJSON(t, w)["error"])

	w = hacerPeticion(t, r, http.MethodGet, "/api/database/check-user/?email=bruno@example.com", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, cuerpoJSON(t, w)["exists"])

	w = hacerPeticion(t, r, http.MethodGet, "/api/database/check-user/?email=nadie@example.com", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, cuerpoJSON(t, w)["exists"])

	w = hacerPeticion(t, r, http.MethodGet, "/api/database/check-user/", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEstadisticasSoloAdmin(t *testing.T) {
	r := setupRouter(t)
	userID, access, _ := registrarUsuario(t, r, "carla")
	crearCancion(t, r, access, "Contable")
	crearPlaylist(t, r, access, "Contable lista", true)

	w := hacerPeticion(t, r, http.MethodGet, "/api/database/estadisticas/", nil, access)
	assert.Equal(t, http.StatusForbidden, w.Code)

	require.NoError(t, config.DB.Model(&models.Usuario{}).
		Where("user_id = ?", userID).
		Update("is_admin", true).Error)

	// El login de hoy cuenta como usuario activo del día y del mes
	w = hacerPeticion(t, r, http.MethodPost, "/api/auth/login/", gin.H{
		"email":    "carla@example.com",
		"password": "superclave123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = hacerPeticion(t, r, http.MethodGet, "/api/database/estadisticas/", nil, access)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := cuerpoJSON(t, w)
	assert.Equal(t, float64(1), resp["total_usuarios"])
	assert.Equal(t, float64(1), resp["total_canciones"])
	assert.Equal(t, float64(1), resp["total_playlists"])
	assert.Equal(t, float64(1), resp["usuarios_activos_hoy"])
	assert.Equal(t, float64(1), resp["usuarios_activos_mes"])

	// La fila persistida se reutiliza en la siguiente consulta
	w = hacerPeticion(t, r, http.MethodGet, "/api/database/estadisticas/", nil, access)
	require.Equal(t, http.StatusOK, w.Code)

	var total int64
	config.DB.Model(&models.EstadisticasGenerales{}).Count(&total)
	assert.Equal(t, int64(1), total)
}

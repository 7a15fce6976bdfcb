package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cristian7B/SoundCloudClone/config"
	"github.com/Cristian7B/SoundCloudClone/models"
)

func likesDeCancion(t *testing.T, cancionID uint) int {
	t.Helper()
	var cancion models.Cancion
	require.NoError(t, config.DB.First(&cancion, "cancion_id = ?", cancionID).Error)
	return cancion.LikesCount
}

func TestToggleLikeEsInvolutivo(t *testing.T) {
	r := setupRouter(t)
	_, accessA, _ := registrarUsuario(t, r, "ana")
	_, accessB, _ := registrarUsuario(t, r, "bruno")
	cancionID := crearCancion(t, r, accessA, "Canción querida")

	cuerpo := gin.H{"tipo": "like", "cancion_id": cancionID}

	w := hacerPeticion(t, r, http.MethodPost, "/api/contenido/interacciones/toggle/", cuerpo, accessB)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := cuerpoJSON(t, w)
	assert.Equal(t, "creado", resp["accion"])
	assert.Equal(t, true, resp["activo"])
	assert.Equal(t, 1, likesDeCancion(t, cancionID))

	w = hacerPeticion(t, r, http.MethodPost, "/api/contenido/interacciones/toggle/", cuerpo, accessB)
	require.Equal(t, http.StatusOK, w.Code)
	resp = cuerpoJSON(t, w)
	assert.Equal(t, "eliminado", resp["accion"])
	assert.Equal(t, false, resp["activo"])
	assert.Equal(t, 0, likesDeCancion(t, cancionID))

	// Dos toggles seguidos dejan la tabla como al principio
	var total int64
	config.DB.Model(&models.Interaccion{}).Count(&total)
	assert.Equal(t, int64(0), total)
}

func TestCrearInteraccionDuplicada(t *testing.T) {
	r := setupRouter(t)
	_, accessA, _ := registrarUsuario(t, r, "carla")
	_, accessB, _ := registrarUsuario(t, r, "diego")
	cancionID := crearCancion(t, r, accessA, "Repetida")

	cuerpo := gin.H{"tipo": "repost", "cancion_id": cancionID}

	w := hacerPeticion(t, r, http.MethodPost, "/api/contenido/interacciones/", cuerpo, accessB)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = hacerPeticion(t, r, http.MethodPost, "/api/contenido/interacciones/", cuerpo, accessB)
	assert.Equal(t, http.StatusConflict, w.Code)

	// El conflicto no tocó el contador
	var cancion models.Cancion
	require.NoError(t, config.DB.First(&cancion, "cancion_id = ?", cancionID).Error)
	assert.Equal(t, 1, cancion.RepostsCount)
}

func TestValidacionDeObjetivos(t *testing.T) {
	r := setupRouter(t)
	usuarioA, accessA, _ := registrarUsuario(t, r, "elena")
	_, accessB, _ := registrarUsuario(t, r, "fabio")
	cancionID := crearCancion(t, r, accessA, "Objetivo")
	playlistID := crearPlaylist(t, r, accessA, "Objetivo lista", true)

	casos := []gin.H{
		{"tipo": "like"},                                                            // sin objetivo
		{"tipo": "like", "cancion_id": cancionID, "playlist_id": playlistID},        // dos objetivos
		{"tipo": "like", "usuario_objetivo_id": usuarioA},                           // objetivo de otro tipo
		{"tipo": "follow", "cancion_id": cancionID},                                 // follow a canción
		{"tipo": "follow", "usuario_objetivo_id": usuarioA, "cancion_id": cancionID}, // follow con extra
		{"tipo": "megusta", "cancion_id": cancionID},                                // tipo desconocido
	}
	for _, cuerpo := range casos {
		w := hacerPeticion(t, r, http.MethodPost, "/api/contenido/interacciones/", cuerpo, accessB)
		assert.Equal(t, http.StatusBadRequest, w.Code, "cuerpo: %v", cuerpo)
	}

	// Objetivo bien formado pero inexistente
	w := hacerPeticion(t, r, http.MethodPost, "/api/contenido/interacciones/", gin.H{
		"tipo": "like", "cancion_id": 99999,
	}, accessB)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAutoFollowRechazado(t *testing.T) {
	r := setupRouter(t)
	usuarioA, accessA, _ := registrarUsuario(t, r, "gina")

	w := hacerPeticion(t, r, http.MethodPost, "/api/contenido/interacciones/", gin.H{
		"tipo":                "follow",
		"usuario_objetivo_id": usuarioA,
	}, accessA)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no puedes seguirte a ti mismo", cuerpoJSON(t, w)["error"])
}

func TestEliminarInteraccionPorID(t *testing.T) {
	r := setupRouter(t)
	usuarioA, _, _ := registrarUsuario(t, r, "hugo")
	_, accessB, _ := registrarUsuario(t, r, "ines")
	_, accessC, _ := registrarUsuario(t, r, "julia")

	w := hacerPeticion(t, r, http.MethodPost, "/api/contenido/interacciones/", gin.H{
		"tipo":                "follow",
		"usuario_objetivo_id": usuarioA,
	}, accessB)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	inter := cuerpoJSON(t, w)["interaccion"].(map[string]interface{})
	interID := uint(inter["interaccion_id"].(float64))

	ruta := fmt.Sprintf("/api/contenido/interacciones/%d/", interID)

	// Solo su autor puede eliminarla
	w = hacerPeticion(t, r, http.MethodDelete, ruta, nil, accessC)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = hacerPeticion(t, r, http.MethodDelete, ruta, nil, accessB)
	assert.Equal(t, http.StatusOK, w.Code)

	w = hacerPeticion(t, r, http.MethodDelete, ruta, nil, accessB)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContadorNuncaNegativo(t *testing.T) {
	r := setupRouter(t)
	_, accessA, _ := registrarUsuario(t, r, "kevin")
	_, accessB, _ := registrarUsuario(t, r, "laura")
	cancionID := crearCancion(t, r, accessA, "Sin deuda")

	cuerpo := gin.H{"tipo": "like", "cancion_id": cancionID}
	w := hacerPeticion(t, r, http.MethodPost, "/api/contenido/interacciones/toggle/", cuerpo, accessB)
	require.Equal(t, http.StatusCreated, w.Code)

	// Contador corrupto por fuera del flujo normal
	require.NoError(t, config.DB.Model(&models.Cancion{}).
		Where("cancion_id = ?", cancionID).
		UpdateColumn("likes_count", 0).Error)

	w = hacerPeticion(t, r, http.MethodPost, "/api/contenido/interacciones/toggle/", cuerpo, accessB)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, likesDeCancion(t, cancionID))
}

func TestInteraccionesDeUsuario(t *testing.T) {
	r := setupRouter(t)
	usuarioA, accessA, _ := registrarUsuario(t, r, "mario")
	usuarioB, accessB, _ := registrarUsuario(t, r, "nora")
	cancionID := crearCancion(t, r, accessA, "Popular")

	w := hacerPeticion(t, r, http.MethodPost, "/api/contenido/interacciones/", gin.H{
		"tipo": "like", "cancion_id": cancionID,
	}, accessB)
	require.Equal(t, http.StatusCreated, w.Code)
	w = hacerPeticion(t, r, http.MethodPost, "/api/contenido/interacciones/", gin.H{
		"tipo": "follow", "usuario_objetivo_id": usuarioA,
	}, accessB)
	require.Equal(t, http.StatusCreated, w.Code)

	ruta := fmt.Sprintf("/api/contenido/usuarios/%d/interacciones/", usuarioB)
	w = hacerPeticion(t, r, http.MethodGet, ruta, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := cuerpoJSON(t, w)
	assert.Equal(t, float64(2), resp["total_interacciones"])
	stats := resp["estadisticas"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["total_likes"])
	assert.Equal(t, float64(0), stats["total_reposts"])
	assert.Equal(t, float64(1), stats["total_follows"])

	w = hacerPeticion(t, r, http.MethodGet, ruta+"?tipo=follow", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), cuerpoJSON(t, w)["total_interacciones"])
}

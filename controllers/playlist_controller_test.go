package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ordenesDePlaylist(t *testing.T, r *gin.Engine, token string, playlistID uint) []int {
	t.Helper()
	w := hacerPeticion(t, r, http.MethodGet, fmt.Sprintf("/api/contenido/playlists/%d/canciones/", playlistID), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := cuerpoJSON(t, w)
	items := resp["canciones"].([]interface{})
	ordenes := make([]int, 0, len(items))
	for _, it := range items {
		ordenes = append(ordenes, int(it.(map[string]interface{})["orden"].(float64)))
	}
	return ordenes
}

func TestAgregarCancionAlFinal(t *testing.T) {
	r := setupRouter(t)
	_, access, _ := registrarUsuario(t, r, "ana")
	playlistID := crearPlaylist(t, r, access, "Para correr", true)

	for i := 0; i < 3; i++ {
		cancionID := crearCancion(t, r, access, fmt.Sprintf("Tema %d", i))
		w := agregarCancion(t, r, access, playlistID, cancionID)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		pc := cuerpoJSON(t, w)["playlist_cancion"].(map[string]interface{})
		// Sin orden explícito la canción cae al final
		assert.Equal(t, i, int(pc["orden"].(float64)))
	}

	assert.Equal(t, []int{0, 1, 2}, ordenesDePlaylist(t, r, access, playlistID))
}

func TestAgregarCancionDuplicada(t *testing.T) {
	r := setupRouter(t)
	_, access, _ := registrarUsuario(t, r, "bruno")
	playlistID := crearPlaylist(t, r, access, "Favoritas", true)
	cancionID := crearCancion(t, r, access, "Única")

	w := agregarCancion(t, r, access, playlistID, cancionID)
	require.Equal(t, http.StatusCreated, w.Code)

	w = agregarCancion(t, r, access, playlistID, cancionID)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "La canción ya está en la playlist", cuerpoJSON(t, w)["error"])

	// El duplicado rechazado no agregó nada
	assert.Len(t, ordenesDePlaylist(t, r, access, playlistID), 1)
}

func TestAgregarCancionAjenaALaPlaylistPropia(t *testing.T) {
	r := setupRouter(t)
	_, accessA, _ := registrarUsuario(t, r, "carla")
	_, accessB, _ := registrarUsuario(t, r, "diego")

	playlistA := crearPlaylist(t, r, accessA, "Mezcla", true)
	cancionDeB := crearCancion(t, r, accessB, "Tema de Diego")

	// El permiso es sobre la playlist, no sobre la canción
	w := agregarCancion(t, r, accessA, playlistA, cancionDeB)
	assert.Equal(t, http.StatusCreated, w.Code)

	// El dueño de la canción no puede tocar la playlist ajena
	cancionDeB2 := crearCancion(t, r, accessB, "Otro tema")
	w = agregarCancion(t, r, accessB, playlistA, cancionDeB2)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPlaylistPrivadaSoloParaSuDueno(t *testing.T) {
	r := setupRouter(t)
	usuarioA, accessA, _ := registrarUsuario(t, r, "elena")
	_, accessB, _ := registrarUsuario(t, r, "fabio")

	privada := crearPlaylist(t, r, accessA, "Secreta", false)
	crearPlaylist(t, r, accessA, "Abierta", true)

	ruta := fmt.Sprintf("/api/contenido/playlists/%d/canciones/", privada)

	w := hacerPeticion(t, r, http.MethodGet, ruta, nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = hacerPeticion(t, r, http.MethodGet, ruta, nil, accessB)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = hacerPeticion(t, r, http.MethodGet, ruta, nil, accessA)
	assert.Equal(t, http.StatusOK, w.Code)

	// En el listado por usuario las privadas solo aparecen al dueño
	rutaUsuario := fmt.Sprintf("/api/contenido/usuarios/%d/playlists/", usuarioA)

	w = hacerPeticion(t, r, http.MethodGet, rutaUsuario, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := cuerpoJSON(t, w)
	assert.Equal(t, float64(1), resp["total_playlists"])
	_, hayPrivadas := resp["playlists_privadas"]
	assert.False(t, hayPrivadas)

	w = hacerPeticion(t, r, http.MethodGet, rutaUsuario, nil, accessA)
	require.Equal(t, http.StatusOK, w.Code)
	resp = cuerpoJSON(t, w)
	assert.Equal(t, float64(2), resp["total_playlists"])
	privadas := resp["playlists_privadas"].(map[string]interface{})
	assert.Equal(t, float64(1), privadas["total"])
}

func TestEliminarCancionNoRenumera(t *testing.T) {
	r := setupRouter(t)
	_, access, _ := registrarUsuario(t, r, "gina")
	playlistID := crearPlaylist(t, r, access, "Con huecos", true)

	ids := make([]uint, 3)
	for i := range ids {
		ids[i] = crearCancion(t, r, access, fmt.Sprintf("Pista %d", i))
		require.Equal(t, http.StatusCreated, agregarCancion(t, r, access, playlistID, ids[i]).Code)
	}

	ruta := fmt.Sprintf("/api/contenido/playlists/%d/canciones/%d/eliminar/", playlistID, ids[1])
	w := hacerPeticion(t, r, http.MethodDelete, ruta, nil, access)
	require.Equal(t, http.StatusOK, w.Code)

	// El hueco en los órdenes se conserva
	assert.Equal(t, []int{0, 2}, ordenesDePlaylist(t, r, access, playlistID))

	// Repetir el borrado es 404
	w = hacerPeticion(t, r, http.MethodDelete, ruta, nil, access)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReordenarParcial(t *testing.T) {
	r := setupRouter(t)
	_, access, _ := registrarUsuario(t, r, "hugo")
	playlistID := crearPlaylist(t, r, access, "Reordenable", true)

	ids := make([]uint, 3)
	for i := range ids {
		ids[i] = crearCancion(t, r, access, fmt.Sprintf("Corte %d", i))
		require.Equal(t, http.StatusCreated, agregarCancion(t, r, access, playlistID, ids[i]).Code)
	}

	// Dos ítems válidos y uno que no está en la playlist
	ruta := fmt.Sprintf("/api/contenido/playlists/%d/reordenar/", playlistID)
	w := hacerPeticion(t, r, http.MethodPut, ruta, gin.H{
		"canciones_orden": []gin.H{
			{"cancion_id": ids[0], "orden": 10},
			{"cancion_id": ids[2], "orden": 5},
			{"cancion_id": 99999, "orden": 0},
		},
	}, access)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := cuerpoJSON(t, w)
	assert.Equal(t, float64(2), resp["canciones_actualizadas"])
	errores := resp["errores"].([]interface{})
	require.Len(t, errores, 1)
	assert.Equal(t, "Canción 99999 no está en la playlist", errores[0])

	// ids[2] quedó antes que ids[0]
	assert.Equal(t, []int{1, 5, 10}, ordenesDePlaylist(t, r, access, playlistID))
}

func TestReordenarSinCuerpo(t *testing.T) {
	r := setupRouter(t)
	_, access, _ := registrarUsuario(t, r, "ines")
	playlistID := crearPlaylist(t, r, access, "Vacía", true)

	ruta := fmt.Sprintf("/api/contenido/playlists/%d/reordenar/", playlistID)
	w := hacerPeticion(t, r, http.MethodPut, ruta, gin.H{"canciones_orden": []gin.H{}}, access)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, cuerpoJSON(t, w), "formato")
}

func TestMutacionesDePlaylistAjena(t *testing.T) {
	r := setupRouter(t)
	_, accessA, _ := registrarUsuario(t, r, "julia")
	_, accessB, _ := registrarUsuario(t, r, "kevin")
	playlistID := crearPlaylist(t, r, accessA, "De Julia", true)

	ruta := fmt.Sprintf("/api/contenido/playlists/%d/", playlistID)

	w := hacerPeticion(t, r, http.MethodPut, ruta, gin.H{"titulo": "Robada"}, accessB)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = hacerPeticion(t, r, http.MethodDelete, ruta, nil, accessB)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = hacerPeticion(t, r, http.MethodDelete, ruta, nil, accessA)
	assert.Equal(t, http.StatusOK, w.Code)

	w = hacerPeticion(t, r, http.MethodGet, ruta, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

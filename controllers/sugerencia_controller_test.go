package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSugerenciasSinContenido(t *testing.T) {
	r := setupRouter(t)

	w := hacerPeticion(t, r, http.MethodGet, "/api/sugerencias-canciones/", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No hay canciones disponibles.", cuerpoJSON(t, w)["mensaje"])

	w = hacerPeticion(t, r, http.MethodGet, "/api/sugerencias-playlists/", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No hay playlists disponibles.", cuerpoJSON(t, w)["mensaje"])
}

func TestSugerenciaCancionesLimitaLaMuestra(t *testing.T) {
	r := setupRouter(t)
	_, access, _ := registrarUsuario(t, r, "ana")

	for i := 0; i < 7; i++ {
		crearCancion(t, r, access, fmt.Sprintf("Sugerible %d", i))
	}

	w := hacerPeticion(t, r, http.MethodGet, "/api/sugerencias-canciones/", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := cuerpoJSON(t, w)
	assert.Equal(t, "Se encontraron 5 canciones sugeridas", resp["mensaje"])
	assert.Len(t, resp["canciones"].([]interface{}), 5)
}

func TestSugerenciaPlaylistsSoloPublicas(t *testing.T) {
	r := setupRouter(t)
	_, access, _ := registrarUsuario(t, r, "bruno")

	crearPlaylist(t, r, access, "Compartida", true)
	crearPlaylist(t, r, access, "Oculta", false)

	w := hacerPeticion(t, r, http.MethodGet, "/api/sugerencias-playlists/", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := cuerpoJSON(t, w)

	playlists := resp["playlists"].([]interface{})
	require.Len(t, playlists, 1)
	assert.Equal(t, "Compartida", playlists[0].(map[string]interface{})["titulo"])
}

package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Cristian7B/SoundCloudClone/config"
	"github.com/Cristian7B/SoundCloudClone/routes"
)

var contadorDB uint64

// setupRouter monta el router completo contra una base SQLite en memoria
// nueva por test. El DSN con nombre único evita que el pool de GORM abra
// bases :memory: distintas por conexión.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "secreto-de-prueba")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared", atomic.AddUint64(&contadorDB, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func hacerPeticion(t *testing.T, r *gin.Engine, metodo, ruta string, cuerpo interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	body := bytes.NewBuffer(nil)
	if cuerpo != nil {
		b, err := json.Marshal(cuerpo)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	}

	req := httptest.NewRequest(metodo, ruta, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cuerpoJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registrarUsuario(t *testing.T, r *gin.Engine, username string) (uint, string, string) {
	t.Helper()
	w := hacerPeticion(t, r, http.MethodPost, "/api/auth/register/", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "superclave123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := cuerpoJSON(t, w)
	user := resp["user"].(map[string]interface{})
	return uint(user["user_id"].(float64)), resp["access"].(string), resp["refresh"].(string)
}

func crearCancion(t *testing.T, r *gin.Engine, token, titulo string) uint {
	t.Helper()
	w := hacerPeticion(t, r, http.MethodPost, "/api/contenido/canciones/", gin.H{
		"titulo":      titulo,
		"archivo_url": "https://cdn.example.com/audio.mp3",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := cuerpoJSON(t, w)
	cancion := resp["cancion"].(map[string]interface{})
	return uint(cancion["cancion_id"].(float64))
}

func crearPlaylist(t *testing.T, r *gin.Engine, token, titulo string, publica bool) uint {
	t.Helper()
	w := hacerPeticion(t, r, http.MethodPost, "/api/contenido/playlists/", gin.H{
		"titulo":     titulo,
		"es_publica": publica,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := cuerpoJSON(t, w)
	playlist := resp["playlist"].(map[string]interface{})
	return uint(playlist["playlist_id"].(float64))
}

func agregarCancion(t *testing.T, r *gin.Engine, token string, playlistID, cancionID uint) *httptest.ResponseRecorder {
	t.Helper()
	ruta := fmt.Sprintf("/api/contenido/playlists/%d/agregar-cancion/", playlistID)
	return hacerPeticion(t, r, http.MethodPost, ruta, gin.H{"cancion_id": cancionID}, token)
}

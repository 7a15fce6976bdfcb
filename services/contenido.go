package services

import (
	"math/rand"
	"strings"

	"gorm.io/gorm"

	"github.com/Cristian7B/SoundCloudClone/models"
)

// ContenidoStore es la interfaz de solo lectura sobre el contenido que usan
// búsqueda y sugerencias, para que esos módulos no toquen las tablas de
// canciones/playlists directamente.
type ContenidoStore struct {
	db *gorm.DB
}

func NewContenidoStore(db *gorm.DB) *ContenidoStore {
	return &ContenidoStore{db: db}
}

var escapadorLike = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// PatronLike arma un patrón de LIKE para un término del usuario, con los
// comodines %/_ neutralizados para que se busquen como texto literal.
// Las consultas que lo usan deben declarar ESCAPE '\'.
func PatronLike(termino string) string {
	return "%" + escapadorLike.Replace(strings.ToLower(termino)) + "%"
}

// BuscarCanciones busca por título, sin distinguir mayúsculas, hasta limite.
func (s *ContenidoStore) BuscarCanciones(termino string, limite int) ([]models.Cancion, error) {
	var canciones []models.Cancion
	err := s.db.Where(`LOWER(titulo) LIKE ? ESCAPE '\'`, PatronLike(termino)).
		Limit(limite).
		Find(&canciones).Error
	return canciones, err
}

// BuscarPlaylistsPublicas busca por título solo entre playlists públicas.
func (s *ContenidoStore) BuscarPlaylistsPublicas(termino string, limite int) ([]models.Playlist, error) {
	var playlists []models.Playlist
	err := s.db.Where(`LOWER(titulo) LIKE ? ESCAPE '\' AND es_publica = ?`, PatronLike(termino), true).
		Limit(limite).
		Find(&playlists).Error
	return playlists, err
}

// MuestraCanciones devuelve hasta n canciones elegidas al azar con
// probabilidad uniforme sobre todas las filas.
func (s *ContenidoStore) MuestraCanciones(n int) ([]models.Cancion, error) {
	var canciones []models.Cancion
	if err := s.db.Find(&canciones).Error; err != nil {
		return nil, err
	}
	return muestra(canciones, n), nil
}

// MuestraPlaylistsPublicas devuelve hasta n playlists públicas al azar.
func (s *ContenidoStore) MuestraPlaylistsPublicas(n int) ([]models.Playlist, error) {
	var playlists []models.Playlist
	if err := s.db.Where("es_publica = ?", true).Find(&playlists).Error; err != nil {
		return nil, err
	}
	return muestra(playlists, n), nil
}

func muestra[T any](todos []T, n int) []T {
	if len(todos) <= n {
		rand.Shuffle(len(todos), func(i, j int) { todos[i], todos[j] = todos[j], todos[i] })
		return todos
	}
	idx := rand.Perm(len(todos))[:n]
	out := make([]T, 0, n)
	for _, i := range idx {
		out = append(out, todos[i])
	}
	return out
}

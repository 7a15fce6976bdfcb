package config

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Cristian7B/SoundCloudClone/models"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("No se pudo conectar a la base de datos", "err", err)
	}
	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("Falló la migración automática", "err", err)
	}

	log.Info("Conectado a PostgreSQL y esquema migrado")

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("No se pudo obtener el pool de conexiones", "err", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
}

// Migrate crea/actualiza todas las tablas, incluidas las de soporte del
// futuro sistema de recomendaciones.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Usuario{},
		&models.TokenBlacklist{},
		&models.Album{},
		&models.Cancion{},
		&models.Playlist{},
		&models.PlaylistCancion{},
		&models.Interaccion{},
		&models.IndicesBusqueda{},
		&models.HistorialBusqueda{},
		&models.SugerenciasBusqueda{},
		&models.EstadisticasGenerales{},
		&models.RegistroActividad{},
		&models.ConfiguracionSistema{},
		&models.PreferenciasUsuario{},
		&models.HistorialReproduccion{},
		&models.SimilitudCanciones{},
		&models.RecomendacionGenerada{},
		&models.FeedbackRecomendacion{},
		&models.PlaylistTendencia{},
		&models.SimilitudPlaylists{},
		&models.RecomendacionPlaylist{},
		&models.CategoriasPlaylist{},
		&models.PlaylistCategoria{},
	)
}

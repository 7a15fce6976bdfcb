package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Cristian7B/SoundCloudClone/controllers"
	"github.com/Cristian7B/SoundCloudClone/middleware"
	"github.com/Cristian7B/SoundCloudClone/ws"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// ---------------- AUTH ----------------
	auth := api.Group("/auth")
	{
		auth.POST("/register/", controllers.Register)
		auth.POST("/login/", controllers.Login)
		auth.POST("/logout/", controllers.Logout)
		auth.POST("/token/refresh/", controllers.RefreshToken)
		auth.GET("/usuarios/:id/nombre/", controllers.UsuarioNombre)

		authProtegido := auth.Group("/")
		authProtegido.Use(middleware.AuthMiddleware())
		{
			authProtegido.GET("/profile/", controllers.Profile)
			authProtegido.PATCH("/update-info/", controllers.UpdateInfo)
			authProtegido.PUT("/update-info/", controllers.UpdateInfo)
		}
	}

	// ---------------- CONTENIDO ----------------
	contenido := api.Group("/contenido")
	{
		// Lectura pública
		contenido.GET("/canciones/", controllers.GetCanciones)
		contenido.GET("/canciones/buscar/", controllers.BuscarCanciones)
		contenido.GET("/canciones/:id/", controllers.GetCancionByID)
		contenido.GET("/albums/", controllers.GetAlbums)
		contenido.GET("/albums/:id/", controllers.GetAlbumByID)
		contenido.GET("/albums/:id/canciones/", controllers.GetCancionesDeAlbum)
		contenido.GET("/playlists/", controllers.GetPlaylists)
		contenido.GET("/playlists/:id/", controllers.GetPlaylistByID)
		contenido.GET("/playlist-canciones/", controllers.GetPlaylistCanciones)
		contenido.GET("/usuarios/:id/canciones/", controllers.GetCancionesDeUsuario)
		contenido.GET("/usuarios/:id/interacciones/", controllers.GetInteraccionesDeUsuario)

		// Lectura con sesión opcional: las privadas solo para su dueño
		contenido.GET("/playlists/:id/canciones/", middleware.OptionalAuthMiddleware(), controllers.GetCancionesDePlaylist)
		contenido.GET("/usuarios/:id/playlists/", middleware.OptionalAuthMiddleware(), controllers.GetPlaylistsDeUsuario)

		// Escritura autenticada
		contenidoProtegido := contenido.Group("/")
		contenidoProtegido.Use(middleware.AuthMiddleware())
		{
			contenidoProtegido.POST("/canciones/", controllers.CreateCancion)
			contenidoProtegido.PUT("/canciones/:id/", controllers.UpdateCancion)
			contenidoProtegido.DELETE("/canciones/:id/", controllers.DeleteCancion)

			contenidoProtegido.POST("/albums/", controllers.CreateAlbum)
			contenidoProtegido.PUT("/albums/:id/", controllers.UpdateAlbum)
			contenidoProtegido.DELETE("/albums/:id/", controllers.DeleteAlbum)

			contenidoProtegido.POST("/playlists/", controllers.CreatePlaylist)
			contenidoProtegido.PUT("/playlists/:id/", controllers.UpdatePlaylist)
			contenidoProtegido.DELETE("/playlists/:id/", controllers.DeletePlaylist)

			contenidoProtegido.POST("/playlists/:id/agregar-cancion/", controllers.AgregarCancionAPlaylist)
			contenidoProtegido.DELETE("/playlists/:id/canciones/:cancion_id/eliminar/", controllers.EliminarCancionDePlaylist)
			contenidoProtegido.PUT("/playlists/:id/reordenar/", controllers.ReordenarCanciones)

			contenidoProtegido.POST("/interacciones/", controllers.CreateInteraccion)
			contenidoProtegido.DELETE("/interacciones/:id/", controllers.DeleteInteraccion)
			contenidoProtegido.POST("/interacciones/toggle/", controllers.ToggleInteraccion)
		}
	}

	// ---------------- BUSCAR ----------------
	buscar := api.Group("/buscar")
	buscar.Use(middleware.RateLimitMiddleware(rate.Limit(20), 40), middleware.OptionalAuthMiddleware())
	{
		buscar.GET("/", controllers.Buscar)
		buscar.GET("/sugerencias/", controllers.SugerenciasBusqueda)
	}

	// ---------------- SUGERENCIAS ----------------
	api.GET("/sugerencias-canciones/", controllers.SugerenciaCanciones)
	api.GET("/sugerencias-playlists/", controllers.SugerenciaPlaylists)

	// ---------------- DATABASE ----------------
	database := api.Group("/database")
	{
		database.POST("/login/", controllers.LoginAlterno)
		database.GET("/check-user/", controllers.CheckUser)

		databaseProtegido := database.Group("/")
		databaseProtegido.Use(middleware.AuthMiddleware())
		{
			databaseProtegido.POST("/register-song/", controllers.RegistroCancion)
			databaseProtegido.POST("/register-playlist/", controllers.RegistroPlaylist)
			databaseProtegido.GET("/user-info/", controllers.GetUserInfo)
			databaseProtegido.PATCH("/update-user/", controllers.UpdateUser)
			databaseProtegido.GET("/estadisticas/", controllers.GetEstadisticas)
		}
	}

	// ---------------- WebSockets ----------------
	r.GET("/ws/feed", func(c *gin.Context) {
		ws.HandleFeedWS(c.Writer, c.Request)
	})
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Cristian7B/SoundCloudClone/utils"
)

func extraerBearer(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware exige un access token válido y deja user_id en el contexto.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extraerBearer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Falta el header Authorization o es inválido"})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(token, utils.TokenAccess)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido o expirado"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// OptionalAuthMiddleware intenta autenticar pero nunca corta la petición:
// lo usan rutas públicas que solo agregan datos extra si hay sesión
// (historial de búsqueda, playlists privadas propias).
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := extraerBearer(c); ok {
			if claims, err := utils.VerifyToken(token, utils.TokenAccess); err == nil {
				c.Set("user_id", claims.UserID)
			}
		}
		c.Next()
	}
}

// UsuarioActual devuelve el user_id del contexto, si existe.
func UsuarioActual(c *gin.Context) (uint, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

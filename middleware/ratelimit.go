package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware aplica un token bucket global a un grupo de rutas.
// Se usa en /api/buscar, que es público y pega contra varias tablas.
func RateLimitMiddleware(rps rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Demasiadas peticiones, intenta de nuevo en unos segundos"})
			c.Abort()
			return
		}
		c.Next()
	}
}

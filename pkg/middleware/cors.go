package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORSMiddleware runs rs/cors inside the gin chain. Preflight requests are
// answered here and never reach a route handler.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins:       origins,
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Origin", "Content-Type", "Accept", traceHeader},
		ExposedHeaders:       []string{traceHeader},
		OptionsSuccessStatus: http.StatusNoContent,
	})

	return func(ctx *gin.Context) {
		passed := false
		c.ServeHTTP(ctx.Writer, ctx.Request, func(http.ResponseWriter, *http.Request) {
			passed = true
		})
		if !passed {
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

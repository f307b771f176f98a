package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/etiket-service/internal/models"
)

// BodySizeLimit rechaza peticiones sobredimensionadas antes de que el handler
// lea cualquier campo del formulario
func (api *API) BodySizeLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > api.cfg.Upload.MaxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, models.NewErrorResponse(models.MsgFileTooLarge))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, api.cfg.Upload.MaxSize)
		c.Next()
	}
}

// RateLimit aplica una ventana fija por minuto por IP de cliente. Sin
// conexión a Redis, o si Redis falla, las peticiones pasan sin límite.
func (api *API) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if api.redis == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := api.redis.Incr(ctx, key).Result()
		if err != nil {
			api.logger.WithError(err).Warn("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if count == 1 {
			api.redis.Expire(ctx, key, time.Minute)
		}
		if count > int64(api.cfg.RateLimit.PerMinute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.NewErrorResponse(models.MsgTooManyRequests))
			return
		}

		c.Next()
	}
}

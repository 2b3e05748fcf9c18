package middleware

import (
	"bytes"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/sangkips/lanchonete-pos/internal/domain/repository"
	"github.com/sirupsen/logrus"
)

// IdempotencyKeyHeader is the HTTP header for idempotency keys
const IdempotencyKeyHeader = "Idempotency-Key"

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
	Log  *logrus.Logger
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a request carries an
// Idempotency-Key that was already processed on the same endpoint. Requests
// without the header proceed normally. Only successful responses are stored
// so a failed attempt can be retried.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "POST" && c.Request.Method != "PUT" && c.Request.Method != "PATCH" {
			c.Next()
			return
		}

		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			c.Next()
			return
		}

		endpoint := c.Request.Method + " " + c.FullPath()
		ctx := c.Request.Context()

		existing, err := config.Repo.GetByKey(ctx, idempotencyKey, endpoint)
		if err != nil {
			config.Log.WithError(err).Warn("Failed to check idempotency key")
			c.Next()
			return
		}

		if existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		// Capture the response
		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		if status := c.Writer.Status(); status < 200 || status >= 300 {
			return
		}

		if existing != nil {
			// expired entry still holds the unique index
			if err := config.Repo.DeleteExpired(ctx); err != nil {
				config.Log.WithError(err).Warn("Failed to purge expired idempotency keys")
			}
		}

		ikey := &entity.IdempotencyKey{
			Key:          idempotencyKey,
			Endpoint:     endpoint,
			ResponseCode: c.Writer.Status(),
			ResponseBody: blw.body.String(),
			ExpiresAt:    time.Now().Add(entity.IdempotencyKeyTTL),
		}
		if err := config.Repo.Create(ctx, ikey); err != nil {
			config.Log.WithError(err).WithField("key", idempotencyKey).Warn("Failed to store idempotency key")
		}
	}
}

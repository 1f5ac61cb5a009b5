package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/ekranoplan/backend/pkg/errorx"
	"github.com/ekranoplan/backend/pkg/logger"
	"github.com/ekranoplan/backend/pkg/router"
	"github.com/gin-gonic/gin"
)

// Logger writes one line per request. Typed errors are warnings, anything
// else is an error.
func Logger(l logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		info := fmt.Sprintf("%s | %s | %d | %s | %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.Writer.Header().Get(router.RequestIDHeader),
		)

		if err := c.Errors.Last(); err != nil {
			var errx errorx.Error
			if errors.As(err.Err, &errx) {
				l.Warnf("%s | %d", info, errx.Code)
			} else {
				l.Errorf("%s | %v", info, err.Err)
			}
		} else {
			l.Infof(info)
		}
	}
}

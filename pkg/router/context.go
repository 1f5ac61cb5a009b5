package router

import (
	"context"
	"net/http"
	"strings"

	"github.com/ekranoplan/backend/pkg/xcontext"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

func (r *Router) newContext(c *gin.Context) context.Context {
	requestID := c.GetHeader(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ctx := c.Request.Context()
	ctx = xcontext.WithConfigs(ctx, r.cfg)
	ctx = xcontext.WithLogger(ctx, r.logger)
	ctx = xcontext.WithDB(ctx, r.db)
	ctx = xcontext.WithSnowFlake(ctx, r.node)
	ctx = xcontext.WithRequestID(ctx, requestID)
	ctx = xcontext.WithAccessToken(ctx, accessToken(c.Request, r.cfg.Auth.AccessToken.Name))
	return ctx
}

// accessToken reads the session token from the Authorization header, or from
// the cookie when the header is absent.
func accessToken(req *http.Request, cookieName string) string {
	authorization := req.Header.Get("Authorization")
	if authorization != "" {
		auth, token, found := strings.Cut(authorization, " ")
		if found && auth == "Bearer" {
			return token
		}

		return ""
	}

	cookie, err := req.Cookie(cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

package router

import (
	"net/http"

	"github.com/ekranoplan/backend/pkg/errorx"
	"github.com/ekranoplan/backend/pkg/xcontext"
	"github.com/gin-gonic/gin"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := router.newContext(c)
		c.Header(RequestIDHeader, xcontext.RequestID(ctx))

		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = c.ShouldBindQuery(&req)
		default:
			err = c.ShouldBindJSON(&req)
		}

		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot bind request: %v", err)
			writeError(c, errorx.New(errorx.BadRequest, "Invalid request"))
			return
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, newResponse(resp))
	}
}

func writeError(c *gin.Context, err error) {
	status, resp := newErrorResponse(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, resp)
}

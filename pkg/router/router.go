package router

import (
	"context"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/ekranoplan/backend/config"
	"github.com/ekranoplan/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// Router registers typed handlers on a gin engine. Every handler receives a
// context carrying the configs, logger, database, id generator and the
// session token of the request.
type Router struct {
	Inner gin.IRouter

	cfg    config.Configs
	logger logger.Logger
	db     *gorm.DB
	node   *snowflake.Node
}

func New(cfg config.Configs, logger logger.Logger, db *gorm.DB, node *snowflake.Node) *Router {
	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Router{
		Inner:  gin.New(),
		cfg:    cfg,
		logger: logger,
		db:     db,
		node:   node,
	}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Use(middleware ...gin.HandlerFunc) {
	r.Inner.Use(middleware...)
}

func (r *Router) Group(pattern string) *Router {
	return &Router{
		Inner:  r.Inner.Group(pattern),
		cfg:    r.cfg,
		logger: r.logger,
		db:     r.db,
		node:   r.node,
	}
}

func (r *Router) Handler() http.Handler {
	return r.Inner.(*gin.Engine)
}

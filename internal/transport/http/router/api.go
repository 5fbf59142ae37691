package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Fabirm9/nest-graphql/internal/core/auth"
	"github.com/Fabirm9/nest-graphql/internal/service"
	"github.com/Fabirm9/nest-graphql/internal/transport/http/handler"
	mdw "github.com/Fabirm9/nest-graphql/internal/transport/http/middleware"
)

// NewAPIEngine wires the full middleware chain around the single /graphql
// endpoint. CurrentUser runs last so the auth lookup happens inside the
// request timeout.
func NewAPIEngine(l *zap.Logger, schema graphql.Schema, jwter *auth.JWTer, authSvc *service.Auth) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.Ginzap(l, time.RFC3339, true),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/graphql", mdw.CurrentUser(jwter, authSvc), handler.GraphQL(schema))

	return r
}

// Package router builds the Echo instance: middleware chain, error
// handler and route table.
package router

import (
	"net/http"

	"github.com/deppfellow/boardhub/internal/handler"
	"github.com/deppfellow/boardhub/internal/middleware"
	"github.com/deppfellow/boardhub/internal/server"
	"github.com/deppfellow/boardhub/internal/validation"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mw := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = mw.Global.GlobalErrorHandler
	router.JSONSerializer = validation.JSONSerializer{}

	router.Use(
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
		mw.Global.CORS(),
		mw.Global.Secure(),
	)

	if mw.RateLimit.Enabled() {
		router.Use(mw.RateLimit.Limit())
	}

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1")
	registerMemberRoutes(v1, h, mw, s.Config.Auth.Enabled)

	return router
}

func registerMemberRoutes(v1 *echo.Group, h *handler.Handlers, mw *middleware.Middlewares, requireAuth bool) {
	members := v1.Group("/boards/:id/members")
	if requireAuth {
		members.Use(mw.Auth.RequireAuth)
	}

	m := h.Member
	members.GET("", handler.Handle(m.Handler, m.ListMembers, http.StatusOK))
	members.PUT("", handler.Handle(m.Handler, m.UpdateMemberRole, http.StatusOK))
	members.PATCH("", handler.Handle(m.Handler, m.UpdateMemberRole, http.StatusOK))
	members.DELETE("", handler.Handle(m.Handler, m.DeleteMember, http.StatusOK))
}

package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/you/beautyauthsvc/internal/http/handlers"
	"github.com/you/beautyauthsvc/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ph *handlers.ProfileHandlers, jwtmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/refresh", ah.Refresh)
	// Logout takes the refresh token in the body, not a bearer token, so an
	// expired access token never blocks ending a session.
	auth.POST("/logout", ah.Logout)

	authed := r.Group("/").Use(jwtmw.WithJWT())
	authed.GET("/auth/me", ah.Me)

	profile := r.Group("/profile").Use(jwtmw.WithJWT())
	profile.GET("/beauty", ph.Get)
	profile.POST("/beauty", ph.Create)
	profile.PUT("/beauty", ph.Update)

	return r
}

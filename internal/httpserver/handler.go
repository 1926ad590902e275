package httpserver

import (
	authHTTP "ministry-srv/internal/auth/delivery/http"
	authRepo "ministry-srv/internal/auth/repository/postgre"
	authUC "ministry-srv/internal/auth/usecase"
	"ministry-srv/internal/middleware"
	pkgAuth "ministry-srv/pkg/auth"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "ministry-srv/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() {
	security := pkgAuth.NewSecurityLogger(srv.l)
	mw := middleware.New(srv.l, srv.scope, srv.cookieCfg, security, srv.discord).
		WithPublicPaths(srv.publicPaths)

	srv.gin.Use(
		mw.Recovery(),
		mw.SecurityHeaders(),
		middleware.CORS(middleware.DefaultCORSConfig(srv.allowedOrigins)),
		mw.Locale(),
		mw.Gatekeeper(),
	)

	// Health check endpoints
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Session
	repo := authRepo.New(srv.l, srv.db)
	uc := authUC.New(srv.l, repo, srv.scope, security)
	h := authHTTP.New(srv.l, uc, srv.cookieCfg, srv.discord)
	h.RegisterRoutes(srv.gin, mw.CSRF(srv.csrfKey, srv.allowedOrigins))
}

package http

import (
	"ministry-srv/internal/model"

	"github.com/gin-gonic/gin"
)

const (
	SwitchRolePath = "/api/auth/cambiar-rol"
	MePath         = "/api/auth/me"
	StylesheetPath = "/static/app.css"
)

// RegisterRoutes mounts the session endpoints and pages. formGuard protects
// every route that renders or accepts a form.
func (h Handler) RegisterRoutes(r gin.IRouter, formGuard gin.HandlerFunc) {
	r.GET("/", h.Root)
	r.GET(MePath, h.Me)
	r.GET(StylesheetPath, h.Stylesheet)

	forms := r.Group("", formGuard)
	{
		forms.GET(model.LoginPath, h.LoginPage)
		forms.POST(model.LoginPath, h.Login)
		forms.POST(model.LogoutPath, h.Logout)
		forms.POST(SwitchRolePath, h.SwitchRole)
		forms.GET(model.RoleSelectionPath, h.RoleSelectionPage)
		for _, home := range model.HomePaths {
			forms.GET(home, h.HomePage)
		}
	}
}

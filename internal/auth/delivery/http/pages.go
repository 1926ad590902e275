package http

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"ministry-srv/internal/model"
	"ministry-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/gorilla/csrf"
)

const layoutTemplate = "layout.html"

var (
	//go:embed templates/*.html
	templatesFS embed.FS

	//go:embed static/app.css
	stylesheet []byte

	templateFuncs = template.FuncMap{
		"roleLabel": roleLabel,
		"fmtTime": func(t time.Time) string {
			return t.Format("02/01/2006 15:04")
		},
	}

	pageLogin         = parsePage("login.html")
	pageRoleSelection = parsePage("role_selection.html")
	pageHome          = parsePage("home.html")
)

func parsePage(name string) *template.Template {
	return template.Must(template.New(layoutTemplate).Funcs(templateFuncs).
		ParseFS(templatesFS, "templates/"+layoutTemplate, "templates/"+name))
}

func renderPage(c *gin.Context, tpl *template.Template, data any) {
	c.Render(http.StatusOK, render.HTML{Template: tpl, Name: layoutTemplate, Data: data})
}

// Root sends signed-in users to their home and everyone else to the login page.
func (h Handler) Root(c *gin.Context) {
	if cred, ok := scope.GetCredentialFromContext(c.Request.Context()); ok {
		c.Redirect(http.StatusFound, cred.Home())
		return
	}
	c.Redirect(http.StatusFound, model.LoginPath)
}

// LoginPage renders the sign-in form.
func (h Handler) LoginPage(c *gin.Context) {
	ctx := c.Request.Context()
	renderPage(c, pageLogin, loginPage{
		Error:     flagMessage(ctx, c.Query("error")),
		Next:      safeNext(c.Query("next"), ""),
		CSRFField: csrf.TemplateField(c.Request),
	})
}

// RoleSelectionPage lists the assignments carried by the session.
func (h Handler) RoleSelectionPage(c *gin.Context) {
	ctx := c.Request.Context()
	cred, ok := scope.GetCredentialFromContext(ctx)
	if !ok {
		c.Redirect(http.StatusFound, loginFormURL(flagCredentials, ""))
		return
	}
	renderPage(c, pageRoleSelection, roleSelectionPage{
		Name:      cred.Name,
		Options:   newRoleOptions(cred),
		Error:     flagMessage(ctx, c.Query("error")),
		CSRFField: csrf.TemplateField(c.Request),
	})
}

// HomePage renders a role landing page. A session whose home is a different
// page is sent there.
func (h Handler) HomePage(c *gin.Context) {
	cred, ok := scope.GetCredentialFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, loginFormURL(flagCredentials, ""))
		return
	}
	if home := cred.Home(); home != c.FullPath() {
		c.Redirect(http.StatusFound, home)
		return
	}
	renderPage(c, pageHome, homePage{
		Name:       cred.Name,
		Identifier: cred.Identifier,
		RoleLabel:  roleLabel(cred.Role.Kind()),
		Scoping:    cred.Role.Scoping(),
		CanSwitch:  len(cred.Assignments) > 1,
		ExpiresAt:  cred.ExpiresAt,
		CSRFField:  csrf.TemplateField(c.Request),
	})
}

// Stylesheet serves the pages' CSS.
func (h Handler) Stylesheet(c *gin.Context) {
	c.Data(http.StatusOK, "text/css; charset=utf-8", stylesheet)
}

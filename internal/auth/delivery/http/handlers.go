package http

import (
	"net/http"
	"net/url"

	"ministry-srv/internal/auth"
	"ministry-srv/internal/model"
	"ministry-srv/pkg/response"
	"ministry-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Login signs the user in.
// @Summary Sign in
// @Description Resolves the account's role and sets the session cookie. Form posts are answered with a 303 to the role home.
// @Tags Auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param lang header string false "Response language (es, en)"
// @Param body body loginReq true "Cédula or username"
// @Success 200 {object} response.RedirectResp
// @Failure 400 {object} response.ErrorResp "Identifier missing"
// @Failure 401 {object} response.ErrorResp "No current role"
// @Failure 403 {object} response.ErrorResp "Account inactive"
// @Failure 404 {object} response.ErrorResp "Account not found"
// @Failure 500 {object} response.ErrorResp
// @Router /login [POST]
func (h Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	form := isFormRequest(c)

	var req loginReq
	if err := c.ShouldBind(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.Login.ShouldBind: %v", err)
		h.fail(c, form, auth.ErrIdentifierRequired, loginFormURL(flagRequired, req.Next))
		return
	}

	o, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.fail(c, form, err, loginFormURL(formErrorFlag(err), req.Next))
		return
	}

	scope.SetSessionCookie(c, h.cookieCfg, o.Token)
	if form {
		c.Redirect(http.StatusSeeOther, safeNext(req.Next, o.Redirect()))
		return
	}
	response.Redirect(c, o.Redirect())
}

// SwitchRole moves the session to another of the account's current assignments.
// @Summary Switch role
// @Description Re-checks the assignment against the store and replaces the session cookie. The cookie is untouched on failure.
// @Tags Auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param lang header string false "Response language (es, en)"
// @Param body body switchRoleReq true "Role kind and scoping"
// @Success 200 {object} response.RedirectResp
// @Failure 400 {object} response.ErrorResp "Role invalid or not current"
// @Failure 401 {object} response.ErrorResp "No valid session"
// @Failure 500 {object} response.ErrorResp
// @Router /api/auth/cambiar-rol [POST]
func (h Handler) SwitchRole(c *gin.Context) {
	ctx := c.Request.Context()
	form := isFormRequest(c)

	cred, ok := scope.GetCredentialFromContext(ctx)
	if !ok {
		h.fail(c, form, auth.ErrUnauthenticated, loginFormURL(flagCredentials, ""))
		return
	}

	var req switchRoleReq
	if err := c.ShouldBind(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.SwitchRole.ShouldBind: %v", err)
		h.fail(c, form, auth.ErrInvalidRoleKind, roleSelectionURL(flagRoleUnavailable))
		return
	}

	o, err := h.uc.SwitchRole(ctx, cred, req.toInput())
	if err != nil {
		h.fail(c, form, err, roleSelectionURL(formErrorFlag(err)))
		return
	}

	scope.SetSessionCookie(c, h.cookieCfg, o.Token)
	if form {
		c.Redirect(http.StatusSeeOther, o.Redirect())
		return
	}
	response.Redirect(c, o.Redirect())
}

// Logout clears the session cookie. It always succeeds.
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} response.SuccessResp
// @Router /logout [POST]
func (h Handler) Logout(c *gin.Context) {
	scope.ClearSessionCookies(c)
	if isFormRequest(c) {
		c.Redirect(http.StatusSeeOther, model.LoginPath)
		return
	}
	response.OK(c, response.SuccessResp{Success: true})
}

// Me returns the identity carried by the session cookie.
// @Summary Current session
// @Tags Auth
// @Produce json
// @Param lang header string false "Response language (es, en)"
// @Success 200 {object} meResp
// @Failure 401 {object} response.ErrorResp "No valid session"
// @Router /api/auth/me [GET]
func (h Handler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	cred, ok := scope.GetCredentialFromContext(ctx)
	if !ok {
		response.Error(c, h.mapError(ctx, auth.ErrUnauthenticated), nil)
		return
	}
	response.OK(c, newMeResp(cred))
}

// fail answers a failed JSON call with the mapped error, and a failed form
// post with a 303 to formURL.
func (h Handler) fail(c *gin.Context, form bool, err error, formURL string) {
	if form {
		c.Redirect(http.StatusSeeOther, formURL)
		return
	}
	response.Error(c, h.mapError(c.Request.Context(), err), h.discord)
}

func isFormRequest(c *gin.Context) bool {
	ct := c.ContentType()
	return ct == binding.MIMEPOSTForm || ct == binding.MIMEMultipartPOSTForm
}

func loginFormURL(flag, next string) string {
	q := url.Values{"error": {flag}}
	if next = safeNext(next, ""); next != "" {
		q.Set("next", next)
	}
	return model.LoginPath + "?" + q.Encode()
}

func roleSelectionURL(flag string) string {
	return model.RoleSelectionPath + "?" + url.Values{"error": {flag}}.Encode()
}

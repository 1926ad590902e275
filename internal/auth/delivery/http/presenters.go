package http

import (
	"html/template"
	"net/url"
	"strings"
	"time"
	"unicode"

	"ministry-srv/internal/auth"
	"ministry-srv/internal/model"
)

// --- Request DTOs ---

type loginReq struct {
	Identifier string `json:"identifier" form:"identifier"`
	// Next is only read from the login form.
	Next string `json:"-" form:"next"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Identifier: r.Identifier}
}

type switchRoleReq struct {
	RoleKind string `json:"roleKind" form:"roleKind"`
	Stage    string `json:"stage" form:"stage"`
	Day      string `json:"day" form:"day"`
	Week     int    `json:"week" form:"week"`
}

func (r switchRoleReq) toInput() auth.SwitchRoleInput {
	return auth.SwitchRoleInput{
		Kind:    r.RoleKind,
		Scoping: model.Scoping{Stage: r.Stage, Day: r.Day, Week: r.Week},
	}
}

// --- Response DTOs ---

type assignmentResp struct {
	Role  model.RoleKind `json:"role"`
	Stage string         `json:"stage,omitempty"`
	Day   string         `json:"day,omitempty"`
	Week  int            `json:"week,omitempty"`
}

type meResp struct {
	Identifier  string           `json:"identifier"`
	AccountID   string           `json:"accountId"`
	Name        string           `json:"name,omitempty"`
	Role        model.RoleKind   `json:"role"`
	Stage       string           `json:"stage,omitempty"`
	Day         string           `json:"day,omitempty"`
	Week        int              `json:"week,omitempty"`
	Home        string           `json:"home"`
	Assignments []assignmentResp `json:"assignments,omitempty"`
	IssuedAt    time.Time        `json:"issuedAt"`
	ExpiresAt   time.Time        `json:"expiresAt"`
}

func newMeResp(cred model.Credential) meResp {
	s := cred.Role.Scoping()
	resp := meResp{
		Identifier: cred.Identifier,
		AccountID:  cred.AccountID,
		Name:       cred.Name,
		Role:       cred.Role.Kind(),
		Stage:      s.Stage,
		Day:        s.Day,
		Week:       s.Week,
		Home:       cred.Home(),
		IssuedAt:   cred.IssuedAt.UTC(),
		ExpiresAt:  cred.ExpiresAt.UTC(),
	}
	for _, a := range cred.Assignments {
		resp.Assignments = append(resp.Assignments, assignmentResp{Role: a.Kind, Stage: a.Stage, Day: a.Day, Week: a.Week})
	}
	return resp
}

// --- Page data ---

type loginPage struct {
	Error     string
	Next      string
	CSRFField template.HTML
}

type roleOption struct {
	model.AssignmentRef
	Label   string
	Current bool
}

type roleSelectionPage struct {
	Name      string
	Options   []roleOption
	Error     string
	CSRFField template.HTML
}

type homePage struct {
	Name       string
	Identifier string
	RoleLabel  string
	Scoping    model.Scoping
	CanSwitch  bool
	ExpiresAt  time.Time
	CSRFField  template.HTML
}

var roleLabels = map[model.RoleKind]string{
	model.RoleDirector:      "Dirección",
	model.RoleAdministrator: "Administración",
	model.RoleTeacher:       "Maestro",
	model.RoleContact:       "Contacto",
	model.RoleLogistics:     "Logística",
	model.RolePending:       "Sin rol seleccionado",
}

func roleLabel(kind model.RoleKind) string {
	if l, ok := roleLabels[kind]; ok {
		return l
	}
	return string(kind)
}

func newRoleOptions(cred model.Credential) []roleOption {
	refs := cred.Assignments
	if len(refs) == 0 && model.IsConcrete(cred.Role) {
		refs = []model.AssignmentRef{model.RefOf(cred.Role)}
	}
	current := model.RefOf(cred.Role)

	opts := make([]roleOption, 0, len(refs))
	for _, ref := range refs {
		opts = append(opts, roleOption{
			AssignmentRef: ref,
			Label:         roleLabel(ref.Kind),
			Current:       ref == current,
		})
	}
	return opts
}

// safeNext keeps a post-login target only when it is a local path other
// than the login page. Browsers drop tabs and newlines from URLs, so any
// control character or backslash disqualifies the value.
func safeNext(next, fallback string) string {
	if next == "" || strings.ContainsRune(next, '\\') || strings.IndexFunc(next, unicode.IsControl) >= 0 {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Opaque != "" || u.User != nil {
		return fallback
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return fallback
	}
	if u.Path == model.LoginPath {
		return fallback
	}
	return next
}

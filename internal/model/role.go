package model

import (
	"errors"
	"strings"
)

// RoleKind is the stored name of a ministry role.
type RoleKind string

const (
	RoleDirector      RoleKind = "director"
	RoleAdministrator RoleKind = "administrador"
	RoleTeacher       RoleKind = "maestro"
	RoleContact       RoleKind = "contacto"
	RoleLogistics     RoleKind = "logistica"
	// RolePending marks an authenticated session that still has to pick a role.
	// It never appears in the store.
	RolePending RoleKind = "pendiente"
)

var (
	ErrUnknownRoleKind = errors.New("unknown role kind")
	ErrMissingScoping  = errors.New("missing scoping attributes")
)

// ParseRoleKind accepts any casing and surrounding whitespace.
func ParseRoleKind(s string) (RoleKind, error) {
	kind := RoleKind(strings.ToLower(strings.TrimSpace(s)))
	switch kind {
	case RoleDirector, RoleAdministrator, RoleTeacher, RoleContact, RoleLogistics, RolePending:
		return kind, nil
	}
	return "", ErrUnknownRoleKind
}

// Scoping narrows a role to part of the ministry. Which fields apply depends on the role.
type Scoping struct {
	Stage string `json:"stage,omitempty"`
	Day   string `json:"day,omitempty"`
	Week  int    `json:"week,omitempty"`
}

// Role is the closed set of roles a credential can carry.
type Role interface {
	Kind() RoleKind
	Scoping() Scoping
	isRole()
}

type Director struct{}

type Administrator struct{}

// Teacher is scoped to the stage and day they teach.
type Teacher struct {
	Stage string
	Day   string
}

// Contact follows up students of one stage, day and week.
type Contact struct {
	Stage string
	Day   string
	Week  int
}

type Logistics struct {
	Day string
}

type Pending struct{}

func (Director) Kind() RoleKind      { return RoleDirector }
func (Administrator) Kind() RoleKind { return RoleAdministrator }
func (Teacher) Kind() RoleKind       { return RoleTeacher }
func (Contact) Kind() RoleKind       { return RoleContact }
func (Logistics) Kind() RoleKind     { return RoleLogistics }
func (Pending) Kind() RoleKind       { return RolePending }

func (Director) Scoping() Scoping      { return Scoping{} }
func (Administrator) Scoping() Scoping { return Scoping{} }
func (r Teacher) Scoping() Scoping     { return Scoping{Stage: r.Stage, Day: r.Day} }
func (r Contact) Scoping() Scoping     { return Scoping{Stage: r.Stage, Day: r.Day, Week: r.Week} }
func (r Logistics) Scoping() Scoping   { return Scoping{Day: r.Day} }
func (Pending) Scoping() Scoping       { return Scoping{} }

func (Director) isRole()      {}
func (Administrator) isRole() {}
func (Teacher) isRole()       {}
func (Contact) isRole()       {}
func (Logistics) isRole()     {}
func (Pending) isRole()       {}

// NewRole builds the variant for kind. Scoping fields the variant does not use
// are dropped; fields it requires must be present.
func NewRole(kind RoleKind, s Scoping) (Role, error) {
	s.Stage = strings.TrimSpace(s.Stage)
	s.Day = strings.TrimSpace(s.Day)

	switch kind {
	case RoleDirector:
		return Director{}, nil
	case RoleAdministrator:
		return Administrator{}, nil
	case RoleTeacher:
		if s.Stage == "" || s.Day == "" {
			return nil, ErrMissingScoping
		}
		return Teacher{Stage: s.Stage, Day: s.Day}, nil
	case RoleContact:
		if s.Stage == "" || s.Day == "" || s.Week <= 0 {
			return nil, ErrMissingScoping
		}
		return Contact{Stage: s.Stage, Day: s.Day, Week: s.Week}, nil
	case RoleLogistics:
		if s.Day == "" {
			return nil, ErrMissingScoping
		}
		return Logistics{Day: s.Day}, nil
	case RolePending:
		return Pending{}, nil
	default:
		return nil, ErrUnknownRoleKind
	}
}

// IsConcrete reports whether r grants access to a role home.
func IsConcrete(r Role) bool {
	if r == nil {
		return false
	}
	_, pending := r.(Pending)
	return !pending
}

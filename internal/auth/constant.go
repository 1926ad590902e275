package auth

import "ministry-srv/internal/model"

// PreferContactOverTeacher breaks the tie when an account is both a current
// contact and a current teacher.
const PreferContactOverTeacher = true

// LoginPrecedence is the order in which current assignments win at login.
// Administrator and logistics roles are only reachable by switching.
func LoginPrecedence() []model.RoleKind {
	if PreferContactOverTeacher {
		return []model.RoleKind{model.RoleDirector, model.RoleContact, model.RoleTeacher}
	}
	return []model.RoleKind{model.RoleDirector, model.RoleTeacher, model.RoleContact}
}

// SwitchOnlyRoles are never chosen at login but are listed in the
// credential so the account can switch to them.
func SwitchOnlyRoles() []model.RoleKind {
	return []model.RoleKind{model.RoleAdministrator, model.RoleLogistics}
}

package http

import (
	"context"
	"errors"
	"net/http"

	"ministry-srv/internal/auth"
	pkgErrors "ministry-srv/pkg/errors"
	"ministry-srv/pkg/locale"
)

const (
	errCodeIdentifierRequired = 110001
	errCodeAccountNotFound    = 110002
	errCodeAccountInactive    = 110003
	errCodeNoRoleAssigned     = 110004
	errCodeInvalidRoleKind    = 110005
	errCodeScopingRequired    = 110006
	errCodeAssignmentNotValid = 110007
	errCodeUnauthenticated    = 110008
)

var (
	msgIdentifierRequired = locale.Messages{
		locale.ES: "Ingresa tu cédula o usuario.",
		locale.EN: "Enter your ID number or username.",
	}
	msgAccountNotFound = locale.Messages{
		locale.ES: "Cédula o usuario no encontrado.",
		locale.EN: "ID number or username not found.",
	}
	msgAccountInactive = locale.Messages{
		locale.ES: "Tu cuenta está inactiva. Comunícate con la administración del ministerio.",
		locale.EN: "Your account is inactive. Contact the ministry administration.",
	}
	msgNoRoleAssigned = locale.Messages{
		locale.ES: "No tienes un rol asignado actualmente.",
		locale.EN: "You have no role assigned right now.",
	}
	msgInvalidRoleKind = locale.Messages{
		locale.ES: "Rol no válido.",
		locale.EN: "Invalid role.",
	}
	msgScopingRequired = locale.Messages{
		locale.ES: "Faltan datos de la asignación del rol.",
		locale.EN: "The role assignment details are incomplete.",
	}
	msgAssignmentNotCurrent = locale.Messages{
		locale.ES: "No tienes una asignación vigente para ese rol.",
		locale.EN: "You have no current assignment for that role.",
	}
	msgUnauthenticated = locale.Messages{
		locale.ES: "Tu sesión no es válida o expiró. Inicia sesión de nuevo.",
		locale.EN: "Your session is invalid or has expired. Sign in again.",
	}
)

// mapError translates domain errors into client errors. Anything unknown is
// returned as is and rendered as a 500.
func (h Handler) mapError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrIdentifierRequired):
		return pkgErrors.NewValidationError(errCodeIdentifierRequired, "identifier", msgIdentifierRequired.Pick(ctx))
	case errors.Is(err, auth.ErrAccountNotFound):
		return pkgErrors.NewHTTPError(errCodeAccountNotFound, msgAccountNotFound.Pick(ctx), http.StatusNotFound)
	case errors.Is(err, auth.ErrAccountInactive):
		return pkgErrors.NewPermissionError(errCodeAccountInactive, "account", msgAccountInactive.Pick(ctx))
	case errors.Is(err, auth.ErrNoRoleAssigned):
		return pkgErrors.NewHTTPError(errCodeNoRoleAssigned, msgNoRoleAssigned.Pick(ctx), http.StatusUnauthorized)
	case errors.Is(err, auth.ErrInvalidRoleKind):
		return pkgErrors.NewValidationError(errCodeInvalidRoleKind, "roleKind", msgInvalidRoleKind.Pick(ctx))
	case errors.Is(err, auth.ErrScopingRequired):
		return pkgErrors.NewValidationError(errCodeScopingRequired, "scoping", msgScopingRequired.Pick(ctx))
	case errors.Is(err, auth.ErrAssignmentNotCurrent):
		return pkgErrors.NewHTTPError(errCodeAssignmentNotValid, msgAssignmentNotCurrent.Pick(ctx), http.StatusBadRequest)
	case errors.Is(err, auth.ErrUnauthenticated):
		return pkgErrors.NewHTTPError(errCodeUnauthenticated, msgUnauthenticated.Pick(ctx), http.StatusUnauthorized)
	default:
		return err
	}
}

// Flags for the login and role selection pages after a failed form post.
const (
	flagCredentials     = "credenciales"
	flagRequired        = "requerido"
	flagNotFound        = "no-encontrado"
	flagInactive        = "inactivo"
	flagNoRole          = "sin-rol"
	flagRoleUnavailable = "rol-no-disponible"
	flagInternal        = "interno"
)

func formErrorFlag(err error) string {
	switch {
	case errors.Is(err, auth.ErrIdentifierRequired):
		return flagRequired
	case errors.Is(err, auth.ErrAccountNotFound):
		return flagNotFound
	case errors.Is(err, auth.ErrAccountInactive):
		return flagInactive
	case errors.Is(err, auth.ErrNoRoleAssigned):
		return flagNoRole
	case errors.Is(err, auth.ErrInvalidRoleKind),
		errors.Is(err, auth.ErrScopingRequired),
		errors.Is(err, auth.ErrAssignmentNotCurrent):
		return flagRoleUnavailable
	case errors.Is(err, auth.ErrUnauthenticated):
		return flagCredentials
	default:
		return flagInternal
	}
}

var flagMessages = map[string]locale.Messages{
	flagCredentials:     msgUnauthenticated,
	flagRequired:        msgIdentifierRequired,
	flagNotFound:        msgAccountNotFound,
	flagInactive:        msgAccountInactive,
	flagNoRole:          msgNoRoleAssigned,
	flagRoleUnavailable: msgAssignmentNotCurrent,
	flagInternal: {
		locale.ES: "Ocurrió un error inesperado. Intenta de nuevo.",
		locale.EN: "Something went wrong. Please try again.",
	},
}

// flagMessage returns "" for unknown flags so arbitrary query text is never shown.
func flagMessage(ctx context.Context, flag string) string {
	msgs, ok := flagMessages[flag]
	if !ok {
		return ""
	}
	return msgs.Pick(ctx)
}

package postgres

import (
	"ministry-srv/internal/model"

	"github.com/aarondl/null/v8"
)

const (
	tableAccounts    = "servidores"
	tableAssignments = "asignaciones_rol"
)

var accountColumns = struct {
	ID, Cedula, Username, Name, Active string
}{
	ID:       "id",
	Cedula:   "cedula",
	Username: "usuario",
	Name:     "nombre",
	Active:   "activo",
}

var assignmentColumns = struct {
	ID, AccountID, Role, Current, Stage, Day, Week, CreatedAt string
}{
	ID:        "id",
	AccountID: "servidor_id",
	Role:      "rol",
	Current:   "vigente",
	Stage:     "etapa",
	Day:       "dia",
	Week:      "semana",
	CreatedAt: "creado_en",
}

type accountRow struct {
	ID       string      `boil:"id"`
	Cedula   string      `boil:"cedula"`
	Username null.String `boil:"usuario"`
	Name     null.String `boil:"nombre"`
	Active   bool        `boil:"activo"`
}

func (r accountRow) toModel() model.Account {
	return model.Account{
		ID:         r.ID,
		Identifier: r.Cedula,
		Name:       r.Name.String,
		Active:     r.Active,
	}
}

type assignmentRow struct {
	ID        string      `boil:"id"`
	AccountID string      `boil:"servidor_id"`
	Role      string      `boil:"rol"`
	Current   bool        `boil:"vigente"`
	Stage     null.String `boil:"etapa"`
	Day       null.String `boil:"dia"`
	Week      null.Int    `boil:"semana"`
}

func (r assignmentRow) toModel() model.RoleAssignment {
	return model.RoleAssignment{
		ID:        r.ID,
		AccountID: r.AccountID,
		Kind:      model.RoleKind(r.Role),
		Current:   r.Current,
		Scoping: model.Scoping{
			Stage: r.Stage.String,
			Day:   r.Day.String,
			Week:  r.Week.Int,
		},
	}
}

package model

const (
	LoginPath         = "/login"
	LogoutPath        = "/logout"
	RoleSelectionPath = "/seleccionar-rol"

	DirectorHome      = "/panel"
	AdministratorHome = "/admin"
	TeacherHome       = "/maestros"
	ContactHome       = "/contactos"
	LogisticsHome     = "/logistica"
)

// HomePaths lists every role landing page.
var HomePaths = []string{DirectorHome, AdministratorHome, TeacherHome, ContactHome, LogisticsHome}

// RoleToHome returns the landing page for r. It is total: anything it does not
// recognize goes back to the login page.
func RoleToHome(r Role) string {
	switch r.(type) {
	case Director:
		return DirectorHome
	case Administrator:
		return AdministratorHome
	case Teacher:
		return TeacherHome
	case Contact:
		return ContactHome
	case Logistics:
		return LogisticsHome
	case Pending:
		return RoleSelectionPath
	default:
		return LoginPath
	}
}

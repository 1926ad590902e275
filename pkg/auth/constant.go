package auth

// EventType names a security-relevant event.
type EventType string

const (
	EventLoginSucceeded     EventType = "login_succeeded"
	EventLoginRejected      EventType = "login_rejected"
	EventRoleSwitched       EventType = "role_switched"
	EventRoleSwitchDenied   EventType = "role_switch_denied"
	EventCredentialRejected EventType = "credential_rejected"
)

// visibleSuffix is how many trailing identifier characters appear in logs.
const visibleSuffix = 4

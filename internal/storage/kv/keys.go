package kv

// Ключи хранилища. Значения совпадают с ключами, уже записанными существующими
// клиентами, и не должны меняться.
const (
	KeyCurrentUser     = "currentUser"
	KeyRegisteredUsers = "registeredUsers"
	KeyDemands         = "citizenDemands"
	KeyPayments        = "citizenPayments"
	KeyAppointments    = "citizenAppointments"
	KeyNotifications   = "notifications"

	// KeyCredentials хранит bcrypt-хэши паролей в режиме AUTH_MODE=verified.
	KeyCredentials = "credentials"
)

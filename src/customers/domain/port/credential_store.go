package port

import "context"

// CredentialStore abstrae el almacén externo de credenciales de login.
// La autenticación en sí (emisión de tokens, hashing) es responsabilidad
// de ese sistema; este servicio solo crea/elimina el registro vinculado
// al ciclo de vida del cliente.
type CredentialStore interface {
	// CreateUser registra las credenciales de login para el email dado
	// y retorna el identificador del usuario en el credential store.
	CreateUser(ctx context.Context, email string) (string, error)

	// DeleteUser elimina el registro de credenciales
	DeleteUser(ctx context.Context, userID string) error
}

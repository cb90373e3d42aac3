package ports

import "github.com/peopledesk/hr-api/internal/core/domain"

// TokenService issues and verifies the signed bearer credentials used by the
// auth middleware. Validity is solely a function of signature and expiry;
// there is no server-side revocation.
type TokenService interface {
	Issue(id, email string, role domain.Role) (string, error)
	Verify(token string) (domain.Claims, error)
}

package account

import "github.com/MATEOCAIZA/ProyectoFInal/internal/domain"

// AuthResult is returned by Login.
type AuthResult struct {
	AccessToken string
	Account     *domain.Account
}

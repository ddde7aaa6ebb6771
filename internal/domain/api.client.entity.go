package domain

type ClientRole string

const (
	RoleMinter ClientRole = "minter"
	RoleAdmin  ClientRole = "admin"
	RoleOracle ClientRole = "oracle"
)

const APIClientActive = "active"

// APIClient is a machine credential. For minter and admin clients the ClientID is the hex address
// the client acts as.
type APIClient struct {
	ClientID   string
	SecretHash string
	Role       ClientRole
	Status     string
}

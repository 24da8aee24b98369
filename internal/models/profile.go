package models

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Profile is the non-secret identity kept in plaintext cookies next to the
// sealed session.
type Profile struct {
	Role  Role   `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (p Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// LoginResult is the backend's answer to a successful POST /api/auth/login.
type LoginResult struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	UserID    int64  `json:"userId"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

func (l LoginResult) Profile() Profile {
	return Profile{Role: l.Role, Name: l.Name, Email: l.Email}
}

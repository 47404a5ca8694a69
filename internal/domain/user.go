package domain

import "time"

// User represents an account row as stored in the users table.
type User struct {
	ID            int64          `json:"id"`
	Email         string         `json:"email"`
	PasswordHash  *string        `json:"-"` // nil for OAuth-only accounts
	Firstname     string         `json:"firstname"`
	Lastname      string         `json:"lastname"`
	Name          string         `json:"name"`
	CompanyName   string         `json:"company_name"`
	ProfileImgURL string         `json:"profile_img_url"`
	RoleID        int64          `json:"role_id"`
	CurrentTeamID int64          `json:"current_team_id"`
	IsActive      bool           `json:"is_active"`
	Preferences   map[string]any `json:"preferences"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Registration carries the fields accepted by the register endpoint.
type Registration struct {
	Email     string
	Password  string
	Name      string
	Firstname string
	Lastname  string
}

// AuthSession is the result of a successful login or registration:
// a signed bearer token plus the identity fields echoed to the client.
type AuthSession struct {
	Token         string
	Email         string
	Name          string
	Firstname     string
	Lastname      string
	CurrentTeamID int64
	CreatedAt     time.Time
}

// DevToken is a long-lived API token issued to a user for programmatic access.
type DevToken struct {
	ID        string     `json:"id"`
	UserID    int64      `json:"user_id"`
	Label     string     `json:"label"`
	Token     string     `json:"token"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

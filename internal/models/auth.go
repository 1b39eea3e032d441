// ABOUTME: Login credentials and the response shapes of login and sign-up.
package models

// Credentials is the body of POST /{role}_login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that both fields are present.
func (c *Credentials) Validate() error {
	return requireFields(map[string]string{
		"username": c.Username,
		"password": c.Password,
	})
}

// LoginResponse is returned by both login endpoints.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	ID      int64  `json:"id"`
	Name    string `json:"name"`
}

// AthleteCreated is returned by POST /athletes.
type AthleteCreated struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	Athlete
}

// TrainerCreated is returned by POST /trainers.
type TrainerCreated struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	Trainer
}

// DrillCreated is returned by POST /drills.
type DrillCreated struct {
	Message string `json:"message"`
	Drill
}

// SessionCreated is returned by POST /sessions.
type SessionCreated struct {
	Message string `json:"message"`
	Session
}

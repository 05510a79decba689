package models

import "time"

// Credentials is the body of POST /auth/login.
type Credentials struct {
	// Login is the rider e-mail or CPF.
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResponse is returned by POST /auth/login on success.
type LoginResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Token   string `json:"token"`
}

// Address is the postal address attached to a registration.
type Address struct {
	PostalCode string `json:"postalcode"`
	Number     int64  `json:"number"`
	Street     string `json:"street"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	Complement string `json:"complement"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Image    string  `json:"image"`
	Name     string  `json:"name"`
	Surname  string  `json:"surname"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	CPF      string  `json:"cpf"`
	Password string  `json:"password"`
	Address  Address `json:"address"`
}

// RegisterResponse is returned by POST /auth/register with 201 Created.
type RegisterResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// UserInfo is the rider header returned by GET /user/info/basic.
type UserInfo struct {
	Image   string  `json:"image"`
	Name    string  `json:"name"`
	Surname string  `json:"surname"`
	Balance float64 `json:"balance"`
}

// Dashboard holds the summary cards of the rider home screen.
type Dashboard struct {
	Balance    float64 `json:"balance"`
	TripsMonth int     `json:"trips_month"`
	SpentMonth float64 `json:"spent_month"`
}

// Session is the authenticated rider as seen by the client. Claims are
// decoded from the bearer token without signature verification; the API is
// the only authority on token validity.
type Session struct {
	UserID    string
	Name      string
	Surname   string
	Token     string
	ExpiresAt time.Time
}

// Expired reports whether the token expiry has passed at now. A session
// without an exp claim never expires locally.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

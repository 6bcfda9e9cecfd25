package entity

import "time"

// Rôles applicatifs.
const (
	RoleAdmin   = "admin"
	RoleGerant  = "gerant"
	RoleServeur = "serveur"
)

// User représente un compte du personnel du café.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | gerant | serveur
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

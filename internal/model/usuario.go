package model

import "github.com/google/uuid"

// Usuario is an operator account for the terminal.
// Rol: "cajero" | "administrador"
type Usuario struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Nombre       string    `json:"nombre"`
	Rol          string    `json:"rol"`
	Activo       bool      `json:"activo"`
}

package entity

import (
	"strings"
	"time"
)

// Roles válidos para User.
const (
	RoleOperator   = "OPERADOR"
	RoleSupervisor = "SUPERVISOR"
	RoleAdmin      = "ADMIN"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	Active       bool
	CreatedAt    time.Time
}

// NormalizeRole pasa el rol a mayúsculas y devuelve "" si no está permitido.
func NormalizeRole(s string) string {
	r := strings.ToUpper(strings.TrimSpace(s))
	switch r {
	case RoleOperator, RoleSupervisor, RoleAdmin:
		return r
	}
	return ""
}

package dto

import (
	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
	"github.com/Estefan29/frontend-eventos-sub000/internal/roles"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegistroRequest — self-registration is limited to the self-service roles;
// admin accounts are created from Gestión de Usuarios.
type RegistroRequest struct {
	Nombre            string `json:"nombre"             validate:"required,min=2,max=100"`
	Email             string `json:"email"              validate:"required,email"`
	Password          string `json:"password"           validate:"required,min=8"`
	ConfirmarPassword string `json:"confirmar_password" validate:"required"`
	Rol               string `json:"rol"                validate:"required,oneof=estudiante profesor externo"`
	Telefono          string `json:"telefono"           validate:"omitempty,max=20"`
	Programa          string `json:"programa"           validate:"omitempty,max=100"`
}

type RecuperarRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token             string `json:"token"              validate:"required"`
	Password          string `json:"password"           validate:"required,min=8"`
	ConfirmarPassword string `json:"confirmar_password" validate:"required"`
}

type CambiarPasswordRequest struct {
	PasswordActual    string `json:"password_actual"    validate:"required"`
	PasswordNueva     string `json:"password_nueva"     validate:"required,min=8"`
	ConfirmarPassword string `json:"confirmar_password" validate:"required"`
}

type PerfilRequest struct {
	Nombre   string `json:"nombre"   validate:"omitempty,min=2,max=100"`
	Telefono string `json:"telefono" validate:"omitempty,max=20"`
	Programa string `json:"programa" validate:"omitempty,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// SesionResponse is what the browser gets after login or on GET /sesion.
// The token itself never travels back to the page layer.
type SesionResponse struct {
	Usuario     *model.Usuario    `json:"usuario"`
	Autenticada bool              `json:"autenticada"`
	Capacidades roles.Capacidades `json:"capacidades"`
}

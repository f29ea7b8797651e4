package dto

type CrearUsuarioRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol"      validate:"required,oneof=admin administrativo estudiante profesor externo"`
	Telefono string `json:"telefono" validate:"omitempty,max=20"`
	Programa string `json:"programa" validate:"omitempty,max=100"`
}

type ActualizarUsuarioRequest struct {
	Nombre   string `json:"nombre"   validate:"omitempty,min=2,max=100"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Rol      string `json:"rol"      validate:"omitempty,oneof=admin administrativo estudiante profesor externo"`
	Telefono string `json:"telefono" validate:"omitempty,max=20"`
	Programa string `json:"programa" validate:"omitempty,max=100"`
}

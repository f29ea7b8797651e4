// Package apierror provides the canonical error envelope for every 4xx/5xx
// response the portal returns to the browser, including detail text relayed
// from the remote events API. Internals (stack traces, upstream URLs) never
// leak through it.
package apierror

// APIError is the envelope for plain error responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors from client-side validation.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// AccesoDenegado is the in-place denial body for a protected section the
// current role cannot administer. It names the section and the role instead
// of silently hiding navigation.
type AccesoDenegado struct {
	Detail  string `json:"detail"`
	Seccion string `json:"seccion"`
	Rol     string `json:"rol"`
}

func NewAccesoDenegado(seccion, rol string) *AccesoDenegado {
	return &AccesoDenegado{
		Detail:  "Acceso denegado a " + seccion,
		Seccion: seccion,
		Rol:     rol,
	}
}

package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Estefan29/frontend-eventos-sub000/internal/apierror"
	"github.com/Estefan29/frontend-eventos-sub000/internal/middleware"
	"github.com/Estefan29/frontend-eventos-sub000/internal/remote"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so validator tags like
	// min=0, gt=0 work on money fields without panicking.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds the JSON body and runs validator tags. These are
// the portal's client-side checks: a failure blocks the request before any
// network call to the remote API. Returns false after writing the error
// response; the caller must return immediately.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// relayError translates a remote-call failure into the browser response.
// The 401 path redirects to login exactly once (the hook already cleared
// the session and suppressed the redirect when the browser was on the
// login route). Everything else is relayed with the API's own detail text.
func relayError(c *gin.Context, err error) {
	var expirada *remote.ErrSesionExpirada
	if errors.As(err, &expirada) {
		if expirada.Redirigir {
			c.Redirect(http.StatusSeeOther, middleware.RutaLogin)
			c.Abort()
			return
		}
		c.JSON(http.StatusUnauthorized, apierror.New("Sesion expirada"))
		return
	}

	var remoto *remote.ErrRemoto
	if errors.As(err, &remoto) {
		c.JSON(remoto.Status, apierror.New(remoto.Detalle))
		return
	}

	// Transport-level failure: the remote API never answered.
	c.JSON(http.StatusBadGateway, apierror.New("No se pudo contactar la plataforma de eventos"))
}

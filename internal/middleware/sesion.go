package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Estefan29/frontend-eventos-sub000/internal/apierror"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
)

const StoreKey = "sesion_store"

// RutaLogin is where anonymous navigations are sent.
const RutaLogin = "/login"

// Sesion hydrates the per-browser session store from the session cookie on
// every request, minting a cookie for first-time visitors. The store is the
// only state shared across a browser's concurrent requests; downstream
// handlers reach it through GetStore.
func Sesion(p session.Persister, cookieNombre string, segura bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieNombre)
		if err != nil || id == "" {
			id = uuid.NewString()
			// Path / so the cookie follows every portal route; HttpOnly — the
			// token never has to be readable by page scripts.
			c.SetCookie(cookieNombre, id, 0, "/", "", segura, true)
		}
		st := session.Rehidratar(c.Request.Context(), id, p)
		c.Set(StoreKey, st)
		c.Next()
	}
}

// GetStore retrieves the hydrated session store from the Gin context.
func GetStore(c *gin.Context) *session.Store {
	st, _ := c.MustGet(StoreKey).(*session.Store)
	return st
}

// RequireAutenticada redirects anonymous requests to the login route.
// No protected content is ever rendered without an authenticated session.
func RequireAutenticada() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetStore(c).Snapshot().Autenticada {
			c.Redirect(http.StatusSeeOther, RutaLogin)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAccesoTotal guards the administration endpoints. Unlike the view
// gate (which substitutes content in place), data operations answer 403
// with the standard denial envelope.
func RequireAccesoTotal(seccion string) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := GetStore(c)
		snap := st.Snapshot()
		if !snap.Autenticada {
			c.Redirect(http.StatusSeeOther, RutaLogin)
			c.Abort()
			return
		}
		if !st.EsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.NewAccesoDenegado(seccion, snap.Usuario.Rol))
			return
		}
		c.Next()
	}
}

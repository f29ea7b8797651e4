// Package remote is the portal's only path to the remote events API.
// It centralizes the two cross-cutting auth concerns so no page duplicates
// them: attaching the bearer credential to every outgoing request, and
// reacting to a 401 by clearing the session and signalling a redirect to
// the login route. Every other failure is relayed to the calling page
// unmodified.
//
// The wrapper does not retry, does not queue, and does not deduplicate
// concurrent requests. Every call is independent; a 401 on one in-flight
// call clears the shared session even if other calls are still pending.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/Estefan29/frontend-eventos-sub000/internal/gate"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
)

// Client wraps one configured resty client for the remote API base URL.
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	// No client-side timeout: the portal relies on the remote API's own
	// responsiveness, and never cancels an in-flight call.
	c.SetTimeout(0)
	return &Client{http: c}
}

// Ping checks remote API reachability for the health endpoint. No
// credentials are attached and no session is touched.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/health")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("remote: health returned %d", resp.StatusCode())
	}
	return nil
}

// ErrSesionExpirada is returned on the 401 path. By the time the caller
// sees it the session has already been cleared; Redirigir tells the
// handler layer whether to issue the single redirect to the login route.
type ErrSesionExpirada struct {
	Redirigir bool
}

func (e *ErrSesionExpirada) Error() string { return "sesion expirada o no autorizada" }

// ErrRemoto carries any other non-2xx response through to the page layer,
// with whatever detail text the API returned.
type ErrRemoto struct {
	Status  int
	Detalle string
}

func (e *ErrRemoto) Error() string {
	return fmt.Sprintf("api remota: %d: %s", e.Status, e.Detalle)
}

// llamada describes one outbound call.
type llamada struct {
	metodo    string
	ruta      string
	query     map[string]string
	cuerpo    any
	resultado any
}

// do composes the two pure hooks around a single request/response cycle.
func (c *Client) do(ctx context.Context, st *session.Store, vistaActual gate.Vista, ll llamada) error {
	req := c.http.R().SetContext(ctx)
	req = beforeRequest(req, st.Snapshot())
	if ll.query != nil {
		req.SetQueryParams(ll.query)
	}
	if ll.cuerpo != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(ll.cuerpo)
	}
	if ll.resultado != nil {
		req.SetResult(ll.resultado)
	}

	resp, err := req.Execute(ll.metodo, ll.ruta)
	if err != nil {
		return fmt.Errorf("remote: %s %s: %w", ll.metodo, ll.ruta, err)
	}

	efecto := onResponse(resp.StatusCode(), vistaActual)
	if efecto.CerrarSesion {
		st.Logout()
		return &ErrSesionExpirada{Redirigir: efecto.Redirigir}
	}
	if resp.IsError() {
		return &ErrRemoto{Status: resp.StatusCode(), Detalle: detalleDe(resp.Body())}
	}
	return nil
}

// detalleDe extracts the API's error text, falling back to a generic
// message so pages always have something to show inline.
func detalleDe(body []byte) string {
	var envolvente struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &envolvente); err == nil && envolvente.Detail != "" {
		return envolvente.Detail
	}
	return "La operacion no pudo completarse"
}

// beforeRequest attaches the bearer credential when the session has one.
// An anonymous session sends the request unauthenticated; rejecting it is
// the remote API's job.
func beforeRequest(req *resty.Request, s session.Sesion) *resty.Request {
	if s.Token != "" {
		req.SetHeader("Authorization", "Bearer "+s.Token)
	}
	return req
}

// efectoRespuesta is the outcome of the response hook.
type efectoRespuesta struct {
	CerrarSesion bool
	Redirigir    bool
}

// onResponse maps a status code to its cross-cutting effect. Only 401
// triggers the global logout; the redirect is suppressed when the browser
// is already on the public login route, preventing a redirect loop.
func onResponse(status int, vistaActual gate.Vista) efectoRespuesta {
	if status != http.StatusUnauthorized {
		return efectoRespuesta{}
	}
	return efectoRespuesta{
		CerrarSesion: true,
		Redirigir:    !gate.EsPublica(vistaActual),
	}
}

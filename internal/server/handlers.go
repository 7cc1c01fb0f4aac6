package server

import (
	"net/http"
	"strconv"

	apperrors "github.com/toyz/navs13/internal/errors"
	"github.com/toyz/navs13/internal/utils"
	"github.com/toyz/navs13/pkg/navs13"
)

// ValidationResponse is the body of a validation answer, valid or not
type ValidationResponse struct {
	Valid       bool   `json:"valid"`
	Input       string `json:"input"`
	Number      string `json:"number,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Check       *uint8 `json:"check,omitempty"`
	Kind        string `json:"kind,omitempty"`
	Code        int    `json:"code,omitempty"`
	Message     string `json:"message,omitempty"`
}

// GenerateResponse is the body of a generation answer
type GenerateResponse struct {
	Numbers []string `json:"numbers"`
}

// Handlers serves the navs13 routes
type Handlers struct {
	source      navs13.DigitSource
	diagnostics *utils.DiagnosticSystem
}

// NewHandlers creates handlers drawing generated digits from source
func NewHandlers(source navs13.DigitSource, diagnostics *utils.DiagnosticSystem) *Handlers {
	return &Handlers{
		source:      source,
		diagnostics: diagnostics,
	}
}

// Validate handles GET /v1/navs13/validate?number=...[&strict=true]
func (h *Handlers) Validate(ctx RequestContext) error {
	input := ctx.QueryParam("number")
	if input == "" {
		return ErrBadRequest("query parameter 'number' is required")
	}

	strict, err := parseBoolParam(ctx.QueryParam("strict"))
	if err != nil {
		return ErrBadRequestWithDetails("query parameter 'strict' must be a boolean", map[string]string{"strict": ctx.QueryParam("strict")})
	}

	parse := navs13.Parse
	if strict {
		parse = navs13.ParseCanonical
	}

	n, err := parse(input)
	if err != nil {
		h.diagnostics.Debug("rejected %q: %v", input, err)
		return ctx.JSON(http.StatusUnprocessableEntity, ValidationResponse{
			Valid:   false,
			Input:   input,
			Kind:    navs13.KindOf(err).String(),
			Code:    apperrors.ExitCodeOf(err),
			Message: err.Error(),
		})
	}

	check := n.Check()
	cc := n.CountryCode()
	return ctx.JSON(http.StatusOK, ValidationResponse{
		Valid:       true,
		Input:       input,
		Number:      n.String(),
		CountryCode: string([]byte{'0' + cc[0], '0' + cc[1], '0' + cc[2]}),
		Check:       &check,
	})
}

// Generate handles GET /v1/navs13/generate?count=N
func (h *Handlers) Generate(ctx RequestContext) error {
	count := 1
	if raw := ctx.QueryParam("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > navs13.MaxBatch {
			return ErrBadRequestWithDetails("query parameter 'count' must be between 1 and 255", map[string]string{"count": raw})
		}
		count = n
	}

	numbers := navs13.GenerateN(h.source, count)
	resp := GenerateResponse{Numbers: make([]string, 0, len(numbers))}
	for _, n := range numbers {
		resp.Numbers = append(resp.Numbers, n.String())
	}
	return ctx.JSON(http.StatusOK, resp)
}

// Health returns the handler for GET /healthz
func (h *Handlers) Health(engine string) HandlerFunc {
	return func(ctx RequestContext) error {
		return ctx.JSON(http.StatusOK, map[string]string{
			"status": "ok",
			"engine": engine,
		})
	}
}

// Route is one endpoint of the API
type Route struct {
	Method  string
	Path    string
	Handler HandlerFunc
}

// Routes returns the navs13 endpoints served by engine
func (h *Handlers) Routes(engine string) []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/healthz", Handler: h.Health(engine)},
		{Method: http.MethodGet, Path: "/v1/navs13/validate", Handler: h.Validate},
		{Method: http.MethodGet, Path: "/v1/navs13/generate", Handler: h.Generate},
	}
}

// RegisterRoutes installs middleware and every navs13 route on ws and
// returns the registered routes. Middleware goes first since some engines
// only apply it to routes added afterwards.
func RegisterRoutes(ws WebServer, h *Handlers) []Route {
	ws.Use(RequestID())
	ws.Use(AccessLog(h.diagnostics))

	routes := h.Routes(ws.Name())
	for _, route := range routes {
		ws.RegisterRoute(route.Method, route.Path, route.Handler)
	}
	return routes
}

func parseBoolParam(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

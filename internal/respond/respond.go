package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	appmiddleware "github.com/okarvi/greeter-api/internal/middleware"
)

const (
	msgNotFound          = "resource not found"
	msgMethodNotAllowed  = "method not allowed"
	msgInternalServerErr = "internal server error"
)

// writeProblem renders an RFC 9457 problem document, matching the shape
// huma emits for its own error responses.
func writeProblem(w http.ResponseWriter, status int, detail string) error {
	model := &huma.ErrorModel{
		Status: status,
		Title:  http.StatusText(status),
		Detail: detail,
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(model)
}

// NotFoundHandler emits a problem+json 404 response for unmatched paths.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appmiddleware.LogWarn(r.Context(), msgNotFound,
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		if err := writeProblem(w, http.StatusNotFound, msgNotFound); err != nil {
			appmiddleware.LogError(r.Context(), "failed to render not found", err)
		}
	}
}

// MethodNotAllowedHandler emits a problem+json 405 response including an
// Allow header listing the methods the matched route does support.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		appmiddleware.LogWarn(r.Context(), msgMethodNotAllowed,
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		if err := writeProblem(w, http.StatusMethodNotAllowed, msgMethodNotAllowed); err != nil {
			appmiddleware.LogError(r.Context(), "failed to render method not allowed", err)
		}
	}
}

// Recoverer converts panics into problem+json 500 responses.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					appmiddleware.LogError(r.Context(), "panic recovered", err,
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.ByteString("stack", debug.Stack()),
					)
					if writeErr := writeProblem(w, http.StatusInternalServerError, msgInternalServerErr); writeErr != nil {
						appmiddleware.LogError(r.Context(), "failed to render internal error", writeErr)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// allowedMethods inspects chi's routing context to discover allowed methods.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	routePath := rctx.RoutePath
	if routePath == "" {
		if r.URL.RawPath != "" {
			routePath = r.URL.RawPath
		} else {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	methods := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	allowed := make([]string, 0, len(methods))
	for _, method := range methods {
		tctx := chi.NewRouteContext()
		if rctx.Routes.Match(tctx, method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

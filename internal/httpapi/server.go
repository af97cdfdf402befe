package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"offlined/internal/session"
	"offlined/pkg/types"
)

// Service defines the session methods required by the HTTP API layer.
type Service interface {
	Load(path string) error
	Unload()
	Loaded() bool
	Generate(prompt string, maxTokens int, temperature float32) string
	Status() types.StatusResponse
}

// NewMux builds the HTTP router around svc. registry lists the models that
// POST /load may reference by id; it is also served by GET /models.
func NewMux(svc Service, registry []types.Model) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type", "X-Log-Level"},
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	r.Use(MetricsMiddleware)

	r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
		models := registry
		if models == nil {
			models = []types.Model{}
		}
		writeJSON(w, http.StatusOK, types.ModelsResponse{Models: models})
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status())
	})

	r.Get("/loaded", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, loadedView(svc))
	})

	r.Post("/load", func(w http.ResponseWriter, r *http.Request) {
		var req types.LoadRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		path := req.Path
		if req.Model != "" {
			mdl, ok := findModel(registry, req.Model)
			if !ok {
				writeJSONError(w, http.StatusNotFound, "model not found: "+req.Model)
				return
			}
			path = mdl.Path
		}
		start := time.Now()
		if err := svc.Load(path); err != nil {
			code := statusForLoadError(err)
			logRequest(r, "load", code, start, err)
			writeJSONError(w, code, err.Error())
			return
		}
		IncrementLoads()
		st := svc.Status()
		logRequest(r, "load", http.StatusOK, start, nil)
		writeJSON(w, http.StatusOK, types.LoadResponse{
			Loaded: true,
			Label:  st.Label,
			Path:   st.Path,
			LoadID: st.LoadID,
		})
	})

	r.Post("/unload", func(w http.ResponseWriter, r *http.Request) {
		svc.Unload()
		writeJSON(w, http.StatusOK, types.LoadedResponse{Loaded: false})
	})

	r.Post("/generate", func(w http.ResponseWriter, r *http.Request) {
		var req types.GenerateRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		start := time.Now()
		// A missing model is a designed normal-path outcome: the sentinel is
		// returned with 200, never an error status.
		text := svc.Generate(req.Prompt, req.MaxTokens, req.Temperature)
		IncrementGenerations(svc.Loaded())
		resp := types.GenerateResponse{Response: text, Loaded: svc.Loaded()}
		if resp.Loaded {
			resp.Label = svc.Status().Label
		}
		logRequest(r, "generate", http.StatusOK, start, nil)
		writeJSON(w, http.StatusOK, resp)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		// The session serves requests (sentinel included) from startup on.
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// decodeJSONBody enforces content type and size limits, then decodes into v.
// Writes the error response itself and returns false when decoding fails.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		// If exceeded size, MaxBytesReader may cause an error; still return 400 to avoid size leak details
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// statusForLoadError maps session load errors to HTTP status codes.
func statusForLoadError(err error) int {
	switch {
	case session.IsPathEmpty(err):
		return http.StatusBadRequest
	case session.IsModelNotAccessible(err):
		return http.StatusNotFound
	default:
		if he, ok := err.(HTTPError); ok {
			return he.StatusCode()
		}
		return http.StatusInternalServerError
	}
}

// findModel looks up a registry entry by id.
func findModel(registry []types.Model, id string) (types.Model, bool) {
	for _, m := range registry {
		if m.ID == id {
			return m, true
		}
	}
	return types.Model{}, false
}

// loadedView projects the status into the small GET /loaded payload.
func loadedView(svc Service) types.LoadedResponse {
	st := svc.Status()
	if st.State != string(session.StateLoaded) {
		return types.LoadedResponse{Loaded: false}
	}
	return types.LoadedResponse{Loaded: true, Label: st.Label, Path: st.Path}
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

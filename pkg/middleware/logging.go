package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/vfg2006/creator-assistant/pkg/apiErrors"
	"github.com/vfg2006/creator-assistant/pkg/log"
)

// Respostas em streaming duram o tempo da animação e não entram no aviso de lentidão
const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra cada requisição com correlation id, sessão e volume enviado
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			rec := newRequestRecorder(w)
			started := time.Now()
			fields := requestFields(r, correlationID)

			log.L.WithFields(fields).Debug("http: requisição recebida")

			next.ServeHTTP(rec, r)

			elapsed := time.Since(started)
			fields["status_code"] = rec.status
			fields["bytes"] = rec.written
			fields["duration_ms"] = elapsed.Milliseconds()
			if rec.flushes > 0 {
				fields["flushes"] = rec.flushes
			}

			logger := log.L.WithFields(fields)
			summary := fmt.Sprintf("http: %s %s %d em %s", r.Method, r.URL.Path, rec.status, formatDuration(elapsed))

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error(summary)
			case rec.status >= http.StatusBadRequest:
				logger.Warn(summary)
			default:
				logger.Info(summary)
			}

			if elapsed > slowRequestThreshold && !isStream(r) {
				logger.Warnf("http: requisição lenta (%s)", formatDuration(elapsed))
			}
		})
	}
}

// requestFields monta os campos comuns; em produção inclui origem e user agent
func requestFields(r *http.Request, correlationID string) log.Fields {
	fields := log.Fields{
		"correlation_id": correlationID,
		"method":         r.Method,
		"path":           r.URL.Path,
	}

	if id := sessionFromPath(r.URL.Path); id != "" {
		fields["session_id"] = id
	}

	if !log.IsDevelopment() {
		fields["remote_addr"] = r.RemoteAddr
		fields["user_agent"] = r.UserAgent()
		if r.URL.RawQuery != "" {
			fields["query"] = r.URL.RawQuery
		}
	}

	return fields
}

// sessionFromPath extrai o id de /v1/sessions/:id/...
func sessionFromPath(path string) string {
	rest, ok := strings.CutPrefix(path, "/v1/sessions/")
	if !ok {
		return ""
	}
	id, _, _ := strings.Cut(rest, "/")
	return id
}

func isStream(r *http.Request) bool {
	return strings.HasSuffix(r.URL.Path, "/stream")
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// requestRecorder guarda status, bytes e flushes da resposta
type requestRecorder struct {
	http.ResponseWriter
	status  int
	written int
	flushes int
}

func newRequestRecorder(w http.ResponseWriter) *requestRecorder {
	return &requestRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (rr *requestRecorder) WriteHeader(code int) {
	rr.status = code
	rr.ResponseWriter.WriteHeader(code)
}

func (rr *requestRecorder) Write(b []byte) (int, error) {
	n, err := rr.ResponseWriter.Write(b)
	rr.written += n
	return n, err
}

// Flush repassa para o writer original; sem ele o SSE não funciona atrás do middleware
func (rr *requestRecorder) Flush() {
	if flusher, ok := rr.ResponseWriter.(http.Flusher); ok {
		rr.flushes++
		flusher.Flush()
	}
}

// LogPanicMiddleware converte panics em SRV_001 e registra a pilha
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"panic":  recovered,
					"method": r.Method,
					"path":   r.URL.Path,
				})

				if log.IsDevelopment() {
					logger.Error("http: panic no handler")
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stack)
				} else {
					logger.WithField("stack_trace", string(stack)).Error("http: panic no handler")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

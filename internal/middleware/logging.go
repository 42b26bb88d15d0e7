package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"go-workout-tracker/internal/model"
)

const requestIDHeader = "X-Request-ID"

type requestLogKey struct{}

// requestLog is filled in by inner middleware so the access log line can carry the
// authenticated user, which only becomes known after Logging has handed the request on.
// Writers may run on the TimeoutHandler goroutine, which can outlive the log line.
type requestLog struct {
	mu     sync.Mutex
	userID string
}

func (l *requestLog) setUser(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.userID = userID
}

func (l *requestLog) user() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.userID
}

func annotateUser(ctx context.Context, userID string) {
	if entry, ok := ctx.Value(requestLogKey{}).(*requestLog); ok {
		entry.setUser(userID)
	}
}

// Logging tags each request with an X-Request-ID and logs one line per response, adding
// the error envelope's code and message for 4xx/5xx.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		entry := &requestLog{}
		recorder := newStatusRecorder(w)
		recorder.captureErrors = true
		started := time.Now()

		next.ServeHTTP(recorder, r.WithContext(context.WithValue(r.Context(), requestLogKey{}, entry)))

		attrs := []any{
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration_ms", time.Since(started).Milliseconds(),
			"client_ip", ClientIP(r),
		}
		if userID := entry.user(); userID != "" {
			attrs = append(attrs, "user_id", userID)
		}
		if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
			attrs = append(attrs, "trace_id", sc.TraceID().String())
		}
		if recorder.status >= 400 {
			attrs = append(attrs, errorAttrs(recorder.body.Bytes())...)
		}

		switch {
		case recorder.status >= 500:
			slog.Error("request", attrs...)
		case recorder.status >= 400:
			slog.Warn("request", attrs...)
		default:
			slog.Info("request", attrs...)
		}
	})
}

func errorAttrs(body []byte) []any {
	if len(body) == 0 {
		return nil
	}

	var resp model.APIResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.Error == nil {
		return nil
	}

	attrs := []any{"error_code", resp.Error.Code, "error_message", resp.Error.Message}
	if resp.Error.Details != "" {
		attrs = append(attrs, "error_details", resp.Error.Details)
	}
	return attrs
}

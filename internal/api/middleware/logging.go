package middleware

import (
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Logging пишет в лог метод, путь, статус и время обработки запроса
func Logging(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			latency := time.Since(start)
			requestID := GetRequestID(r.Context())

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("HTTP %s %s - status=%d, latency=%s, request_id=%s",
					r.Method, r.URL.Path, rec.status, latency, requestID)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("HTTP %s %s - status=%d, latency=%s, request_id=%s",
					r.Method, r.URL.Path, rec.status, latency, requestID)
			default:
				logger.Info("HTTP %s %s - status=%d, latency=%s, request_id=%s",
					r.Method, r.URL.Path, rec.status, latency, requestID)
			}
		})
	}
}

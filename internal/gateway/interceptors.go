package gateway

import (
	"log/slog"
	"net/http"
)

// LogRequest records every forwarded request before it leaves the gateway.
func LogRequest(logger *slog.Logger) RequestInterceptor {
	return func(r *http.Request) {
		logger.Debug("forwarding request",
			slog.String("method", r.Method),
			slog.String("target", r.URL.String()),
		)
	}
}

// LogResponse records the upstream status for every relayed response.
func LogResponse(logger *slog.Logger) ResponseInterceptor {
	return func(r *http.Request, resp *http.Response) {
		logger.Info("upstream response",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", resp.StatusCode),
		)
	}
}

// LogError records transport failures, which the client only sees as the
// uniform unavailability envelope.
func LogError(logger *slog.Logger) ErrorInterceptor {
	return func(r *http.Request, err error) {
		logger.Error("proxy error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

// Package logging provides structured logging utilities with context propagation.
//
// Example usage:
//
//	logger := logging.New(os.Stdout, logging.Options{Level: "info"})
//	logger.Info("server started", slog.String("addr", ":8080"))
//
//	func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
//	    log := logging.WithRequestID(r.Context(), h.Logger)
//	    log.Info("rendering veterans page")
//	}
package logging

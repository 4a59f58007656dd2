package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// Middleware creates a fresh LogData per request, injects it into the request
// context, and logs one structured entry when the handler completes.
func Middleware(log *logrus.Logger, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		logData.AddData("method", req.Method)
		logData.AddData("path", req.URL.Path)

		endTimer := logData.AddTiming("duration")

		next.ServeHTTP(w, req.WithContext(WithLogData(req.Context(), logData)))

		endTimer()
		logData.Log().Info("Handler.Complete")
	}
}

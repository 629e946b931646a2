package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/a2sh3r/stablex/internal/hash"
	"github.com/a2sh3r/stablex/internal/logger"
	"go.uber.org/zap"
)

const HashHeader = "HashSHA256"

type hashResponseWriter struct {
	http.ResponseWriter
	buf    bytes.Buffer
	status int
}

func (w *hashResponseWriter) WriteHeader(status int) {
	w.status = status
}

func (w *hashResponseWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

// NewHashMiddleware verifies the HashSHA256 header of signed request bodies and
// signs response bodies with the same key. It is a no-op when key is empty.
func NewHashMiddleware(key string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" || isUpgrade(r) {
				next.ServeHTTP(w, r)
				return
			}

			if got := r.Header.Get(HashHeader); got != "" && r.Body != nil {
				body, err := io.ReadAll(r.Body)
				if err != nil {
					http.Error(w, "failed to read body", http.StatusBadRequest)
					return
				}
				if err := hash.VerifyHash(string(body), key, got); err != nil {
					logger.Log.Warn("request hash mismatch", zap.String("path", r.URL.Path))
					http.Error(w, "invalid hash", http.StatusBadRequest)
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(body))
			}

			hw := &hashResponseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(hw, r)

			if hw.buf.Len() > 0 {
				w.Header().Set(HashHeader, hash.CalculateHash(hw.buf.String(), key))
			}
			w.WriteHeader(hw.status)
			if hw.buf.Len() == 0 {
				return
			}
			if _, err := w.Write(hw.buf.Bytes()); err != nil {
				logger.Log.Error("failed to write response", zap.Error(err))
			}
		})
	}
}

package api

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/akyairhashvil/seodesk/internal/util"
)

// admin guards write handlers. Without a configured hash every write is
// refused.
func (s *Server) admin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.tokenHash == "" {
			writeDetail(w, http.StatusForbidden, "Writes are disabled: no admin token is configured.")
			return
		}
		token, ok := bearerToken(r)
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}
		if err := util.CheckToken(s.tokenHash, token); err != nil {
			s.log.Warn("rejected admin token", zap.String("path", r.URL.Path))
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeDetail(w, http.StatusUnauthorized, "Invalid token.")
			return
		}
		next(w, r)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

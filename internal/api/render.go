package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/akyairhashvil/seodesk/internal/config"
	"github.com/akyairhashvil/seodesk/internal/database"
	"github.com/akyairhashvil/seodesk/internal/models"
	"github.com/akyairhashvil/seodesk/internal/seo"
)

var errEmptyBody = errors.New("request body is empty")

// fullSEO is the payload frontends load once per page render.
type fullSEO struct {
	SEOTags     []models.SEOTag    `json:"seo_tags"`
	AdvancedSEO models.AdvancedSEO `json:"advanced_seo"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeError maps store and validation errors to responses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs seo.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, verrs)
	case errors.Is(err, database.ErrDuplicatePageID):
		writeJSON(w, http.StatusBadRequest, seo.ValidationErrors{"page_id": seo.DuplicatePageIDMessage})
	case errors.Is(err, database.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Not found.")
	case errors.Is(err, errEmptyBody):
		writeDetail(w, http.StatusBadRequest, "Request body is empty.")
	default:
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &syntaxErr):
			writeDetail(w, http.StatusBadRequest, fmt.Sprintf("JSON parse error at offset %d.", syntaxErr.Offset))
		case errors.As(err, &typeErr):
			writeJSON(w, http.StatusBadRequest, seo.ValidationErrors{typeErr.Field: "Incorrect type."})
		case errors.As(err, &maxErr):
			writeDetail(w, http.StatusRequestEntityTooLarge, "Request body too large.")
		default:
			s.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Internal server error.")
		}
	}
}

// decodeInto reads the JSON body over dst, so fields missing from the body
// keep their current values.
func decodeInto(w http.ResponseWriter, r *http.Request, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, config.MaxRequestBodySize))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return errEmptyBody
	}
	return json.Unmarshal(body, dst)
}

// localTag renders timestamps in the site timezone.
func (s *Server) localTag(t models.SEOTag) models.SEOTag {
	t.CreatedAt = t.CreatedAt.In(s.loc)
	t.UpdatedAt = t.UpdatedAt.In(s.loc)
	return t
}

func (s *Server) localTags(tags []models.SEOTag) []models.SEOTag {
	out := make([]models.SEOTag, len(tags))
	for i, t := range tags {
		out[i] = s.localTag(t)
	}
	return out
}

func (s *Server) localAdvanced(a models.AdvancedSEO) models.AdvancedSEO {
	a.CreatedAt = a.CreatedAt.In(s.loc)
	a.UpdatedAt = a.UpdatedAt.In(s.loc)
	return a
}

package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/akyairhashvil/seodesk/internal/config"
	"github.com/akyairhashvil/seodesk/internal/database"
	"github.com/akyairhashvil/seodesk/internal/models"
	"github.com/akyairhashvil/seodesk/internal/seo"
)

func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tags, err := s.store.ListTags(r.Context(), database.TagFilter{
		Search:      q.Get("search"),
		OGType:      q.Get("og_type"),
		TwitterCard: q.Get("twitter_card"),
		Ordering:    q.Get("ordering"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.localTags(tags))
}

func (s *Server) fullSEO(w http.ResponseWriter, r *http.Request) {
	tags, err := s.store.ListTags(r.Context(), database.TagFilter{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	adv, err := s.store.GetAdvanced(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fullSEO{
		SEOTags:     s.localTags(tags),
		AdvancedSEO: s.localAdvanced(adv),
	})
}

func (s *Server) getTag(w http.ResponseWriter, r *http.Request) {
	tag, err := s.store.GetTag(r.Context(), mux.Vars(r)["page_id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.localTag(tag))
}

func (s *Server) createTag(w http.ResponseWriter, r *http.Request) {
	var tag models.SEOTag
	if err := decodeInto(w, r, &tag); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := seo.Prepare(&tag, s.siteURL); err != nil {
		s.writeError(w, r, err)
		return
	}
	id, err := s.store.CreateTag(r.Context(), tag, config.DefaultAPIActor)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	saved, err := s.store.GetTagByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.log.Info("seo tag created", zap.String("page_id", saved.PageID))
	writeJSON(w, http.StatusCreated, s.localTag(saved))
}

// updateTag handles PUT, which replaces the record, and PATCH, which only
// changes the fields present in the body.
func (s *Server) updateTag(w http.ResponseWriter, r *http.Request) {
	existing, err := s.store.GetTag(r.Context(), mux.Vars(r)["page_id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	tag := models.SEOTag{}
	if r.Method == http.MethodPatch {
		tag = existing
	}
	if err := decodeInto(w, r, &tag); err != nil {
		s.writeError(w, r, err)
		return
	}
	tag.ID = existing.ID
	if err := seo.Prepare(&tag, s.siteURL); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.UpdateTag(r.Context(), existing.ID, tag, config.DefaultAPIActor); err != nil {
		s.writeError(w, r, err)
		return
	}
	saved, err := s.store.GetTagByID(r.Context(), existing.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.log.Info("seo tag updated", zap.String("page_id", saved.PageID), zap.String("method", r.Method))
	writeJSON(w, http.StatusOK, s.localTag(saved))
}

func (s *Server) deleteTag(w http.ResponseWriter, r *http.Request) {
	pageID := mux.Vars(r)["page_id"]
	if err := s.store.DeleteTag(r.Context(), pageID); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.log.Info("seo tag deleted", zap.String("page_id", pageID))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getAdvanced(w http.ResponseWriter, r *http.Request) {
	adv, err := s.store.GetAdvanced(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.localAdvanced(adv))
}

func (s *Server) updateAdvanced(w http.ResponseWriter, r *http.Request) {
	existing, err := s.store.GetAdvanced(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	adv := models.AdvancedSEO{}
	if r.Method == http.MethodPatch {
		adv = existing
	}
	if err := decodeInto(w, r, &adv); err != nil {
		s.writeError(w, r, err)
		return
	}
	adv.ID = models.AdvancedSEOSingletonID
	if err := s.store.SaveAdvanced(r.Context(), adv, config.DefaultAPIActor); err != nil {
		s.writeError(w, r, err)
		return
	}
	saved, err := s.store.GetAdvanced(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.localAdvanced(saved))
}

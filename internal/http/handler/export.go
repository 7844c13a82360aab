package handler

import (
	"errors"
	"net/http"

	"github.com/semana-app/semana/internal/http/response"
	"github.com/semana-app/semana/internal/kvstore"
)

// Export handles GET /export: a dump of every stored key and its raw
// value, for backup. Values stay in their stored form, so grid entries
// come out as bracket-grammar strings and collections as JSON text.
func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	keys, err := s.kv.Keys(r.Context(), "")
	if err != nil {
		response.InternalError(w, r, err)
		return
	}

	dump := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := s.kv.Get(r.Context(), key)
		if err != nil {
			// A key deleted between the listing and the read is not
			// worth failing the backup over.
			if errors.Is(err, kvstore.ErrKeyNotFound) {
				continue
			}
			response.InternalError(w, r, err)
			return
		}
		dump[key] = value
	}

	response.OK(w, dump)
}

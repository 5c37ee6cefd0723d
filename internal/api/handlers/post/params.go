package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Snapgram/internal/api/handlers"
)

// postIDParam parses the {id} route parameter, writing a 400 on failure.
func postIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid post id")
		return 0, false
	}
	return id, true
}

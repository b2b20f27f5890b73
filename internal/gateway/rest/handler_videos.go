package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/syntrixbase/vidlist/internal/listing"
	"github.com/syntrixbase/vidlist/internal/server"
	"github.com/syntrixbase/vidlist/pkg/model"
)

// MessageVideosFetched is the envelope message of a successful listing.
const MessageVideosFetched = "Videos fetched successfully"

func (h *Handler) handleListVideos(w http.ResponseWriter, r *http.Request) {
	var params listing.RawParams
	if err := h.decoder.Decode(&params, r.URL.Query()); err != nil {
		slog.Warn("ListVideos: invalid query parameters", "error", err)
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.listing.List(r.Context(), params)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			slog.Warn("ListVideos: validation error",
				"field", verr.Field,
				"reason", verr.Reason,
				"request_id", server.GetRequestID(r.Context()),
			)
			writeError(w, http.StatusBadRequest, ErrCodeBadRequest, verr.Error())
			return
		}
		writeInternalError(w, r, err, "Failed to fetch videos")
		return
	}

	writeJSON(w, http.StatusOK, NewAPIResponse(http.StatusOK, result, MessageVideosFetched))
}

package httpapi

import (
	"net/http"
)

func (h *Handler) GetMatchSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchSuggestions")
	defer span.End()

	matchID := r.PathValue("matchID")
	suggestion, err := h.predictionService.Suggest(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "suggest failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, suggestion)
}

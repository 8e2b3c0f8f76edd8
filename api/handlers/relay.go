package handlers

import (
	"net/http"
)

type RelayHandler struct {
	cache JobCacher
}

func NewRelayHandler(cache JobCacher) *RelayHandler {
	return &RelayHandler{
		cache: cache,
	}
}

// HandleRequest returns the relay job of a deposit picked up by this relayer
func (h *RelayHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	hash, err := txHash(r)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	job, err := h.cache.Job(hash)
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}

	JSONResponse(w, job)
}

package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sprintertech/sprinter-teleport/network"
)

type NetworkHandler struct {
	registry *network.Registry
}

func NewNetworkHandler(registry *network.Registry) *NetworkHandler {
	return &NetworkHandler{
		registry: registry,
	}
}

// HandleRequest returns the contracts of the requested network
func (h *NetworkHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chainID, err := strconv.ParseUint(vars["chainId"], 10, 64)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid chainId"), http.StatusBadRequest)
		return
	}

	n, err := h.registry.Network(chainID)
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}

	JSONResponse(w, n)
}

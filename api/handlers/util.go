package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
)

var txHashRegex = regexp.MustCompile("^0x[0-9a-fA-F]{64}$")

func JSONError(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	type errorResponse struct {
		Code   int    `json:"code"`
		Reason string `json:"reason"`
	}
	resp := errorResponse{
		Reason: err.Error(),
		Code:   code,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func JSONResponse(w http.ResponseWriter, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		JSONError(w, fmt.Errorf("failed encoding response: %s", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func txHash(r *http.Request) (common.Hash, error) {
	vars := mux.Vars(r)
	hash := vars["txHash"]
	if !txHashRegex.MatchString(hash) {
		return common.Hash{}, fmt.Errorf("invalid txHash %s", hash)
	}
	return common.HexToHash(hash), nil
}

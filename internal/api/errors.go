// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"net/http"

	xglog "github.com/posecare/statusd/internal/log"
)

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		lg := xglog.WithComponent("api")
		lg.Error().Err(err).Msg("failed to write JSON response")
	}
}

func writeError(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, map[string]string{"error": http.StatusText(code), "detail": detail})
}

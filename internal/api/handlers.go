// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"net/http"
	"strings"

	xglog "github.com/posecare/statusd/internal/log"
	"github.com/posecare/statusd/internal/metrics"
	"github.com/posecare/statusd/internal/status"
)

// maxBodySize caps request bodies; interpret payloads are a few hundred
// bytes at most.
const maxBodySize = 64 * 1024

type interpretRequest struct {
	AnalysisStatus     string `json:"analysis_status"`
	PrescriptionStatus string `json:"prescription_status"`
	Message            string `json:"message"`
}

type navigationResponse struct {
	Target  string `json:"target"`
	DelayMs int64  `json:"delay_ms"`
	Reason  string `json:"reason"`
}

type interpretResponse struct {
	Status       status.Status       `json:"status"`
	LegacyStatus string              `json:"legacy_status"`
	Display      status.DisplayProps `json:"display"`
	Start        status.StartInfo    `json:"start"`
	Navigation   *navigationResponse `json:"navigation,omitempty"`
	Notification *status.Notice      `json:"notification,omitempty"`
}

// handleInterpret resolves one raw status (plus optional prescription status
// and free-text message) into every derived projection in a single response,
// so all observers of a job agree on the derived facts.
func (s *Server) handleInterpret(w http.ResponseWriter, r *http.Request) {
	logger := xglog.WithComponentFromContext(r.Context(), "api")

	var req interpretRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	st, known := status.NormalizeKnown(req.AnalysisStatus)
	metrics.IncNormalization(normalizationOutcome(req.AnalysisStatus, known))
	metrics.IncInterpret(st.String())
	if !known && strings.TrimSpace(req.AnalysisStatus) != "" {
		logger.Warn().
			Str(xglog.FieldEvent, "interpret.unknown_status").
			Str(xglog.FieldRawStatus, req.AnalysisStatus).
			Msg("unknown status resolved to pending")
	}

	resp := interpretResponse{
		Status:       st,
		LegacyStatus: status.Denormalize(st),
		Display:      status.DisplayWith(s.holder.Get().MessageOverrides(), req.AnalysisStatus, req.Message),
		Start:        status.Start(req.AnalysisStatus, req.PrescriptionStatus),
	}

	if action := status.Navigation(req.AnalysisStatus); action != nil {
		metrics.IncNavigationDecision(string(action.Target))
		resp.Navigation = &navigationResponse{
			Target:  string(action.Target),
			DelayMs: action.Delay.Milliseconds(),
			Reason:  action.Reason,
		}
	} else {
		metrics.IncNavigationDecision("none")
	}

	if notice, ok := status.Notify(st); ok {
		resp.Notification = &notice
	}

	logger.Debug().
		Str(xglog.FieldEvent, "interpret.resolved").
		Str(xglog.FieldRawStatus, req.AnalysisStatus).
		Str(xglog.FieldStatus, st.String()).
		Msg("status interpreted")

	writeJSON(w, http.StatusOK, resp)
}

type validateRequest struct {
	Status string `json:"status"`
}

// handleValidate runs the diagnostic validator over one raw status string.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v := status.Validate(req.Status)
	if !v.IsValid {
		metrics.IncValidationFailure()
	}
	writeJSON(w, http.StatusOK, v)
}

type statusRow struct {
	Status            status.Status  `json:"status"`
	LegacyStatus      string         `json:"legacy_status"`
	Text              string         `json:"text"`
	ProgressPercent   int            `json:"progress_percent"`
	Variant           status.Variant `json:"variant"`
	Completed         bool           `json:"completed"`
	Failed            bool           `json:"failed"`
	Retryable         bool           `json:"retryable"`
	CanStart          bool           `json:"can_start"`
	PoseStageComplete bool           `json:"pose_stage_complete"`
	LLMStageComplete  bool           `json:"llm_stage_complete"`
	RestartFrom       status.Status  `json:"restart_from"`
}

// handleStatuses serves the full canonical classification table for
// diagnostics and client developers.
func (s *Server) handleStatuses(w http.ResponseWriter, _ *http.Request) {
	rows := make([]statusRow, 0, len(status.All()))
	for _, st := range status.All() {
		rows = append(rows, statusRow{
			Status:            st,
			LegacyStatus:      status.Denormalize(st),
			Text:              status.Text(st),
			ProgressPercent:   st.Progress(),
			Variant:           st.DisplayVariant(),
			Completed:         st.IsCompleted(),
			Failed:            st.IsFailed(),
			Retryable:         st.IsRetryable(),
			CanStart:          st.CanStart(),
			PoseStageComplete: st.IsPoseStageComplete(),
			LLMStageComplete:  st.IsLLMStageComplete(),
			RestartFrom:       st.RestartPoint(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"statuses": rows})
}

func normalizationOutcome(raw string, known bool) string {
	switch {
	case strings.TrimSpace(raw) == "":
		return "empty"
	case known:
		return "known"
	default:
		return "unknown"
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	return json.NewDecoder(r.Body).Decode(dst)
}

// SPDX-License-Identifier: MIT

package status

import (
	"fmt"
	"strings"

	xglog "github.com/posecare/statusd/internal/log"
)

// Legacy status strings still produced by older backend paths. They never
// appear in new code outside this file and the legacy shim.
const (
	LegacyPending           = "pending"
	LegacyPoseProcessing    = "blazepose_processing"
	LegacyPoseProcessingAlt = "pose_processing"
	LegacyProcessing        = "processing"
	LegacyPoseCompleted     = "blazepose_completed"
	LegacyLLMProcessing     = "llm_processing"
	LegacyLLMCompleted      = "llm_completed"
	LegacyCompleted         = "completed"
	LegacyPoseServerFailed  = "blazepose_server_failed"
	LegacyPoseFailed        = "blazepose_pose_failed"
	LegacyLLMServerFailed   = "llm_server_failed"
	LegacyLLMAPIFailed      = "llm_api_failed"
	LegacyLLMFailed         = "llm_failed"
	LegacyFailed            = "failed"
)

// legacyToCanonical is the full translation table: every historical status
// plus every canonical status identity-mapped for forward compatibility.
// Built once at init and never mutated; external callers go through Normalize.
var legacyToCanonical = buildLegacyMapping()

func buildLegacyMapping() map[string]Status {
	m := map[string]Status{
		LegacyPending:           Pending,
		LegacyPoseProcessing:    PoseAnalyzing,
		LegacyPoseProcessingAlt: PoseAnalyzing,
		LegacyProcessing:        PoseAnalyzing,
		LegacyPoseCompleted:     PoseCompleted,
		LegacyLLMProcessing:     LLMAnalyzing,
		LegacyLLMCompleted:      AnalysisCompleted,
		LegacyCompleted:         AnalysisCompleted,
		LegacyPoseServerFailed:  PoseServerFailed,
		LegacyPoseFailed:        PoseDetectionFailed,
		LegacyLLMServerFailed:   LLMServerFailed,
		LegacyLLMAPIFailed:      LLMServerFailed,
		LegacyLLMFailed:         LLMAnalysisFailed,
		LegacyFailed:            AnalysisFailed,
	}
	for _, s := range All() {
		m[string(s)] = s
	}
	return m
}

// canonicalToLegacy translates canonical values back for consumers that have
// not migrated. The retry-ready pair collapses to the nearest legacy state
// (PoseRetryReady to pending, LLMRetryReady to blazepose_completed), which is
// lossy: a legacy-only consumer cannot distinguish a parked retry from a
// fresh or mid-pipeline job.
var canonicalToLegacy = map[Status]string{
	Pending:             LegacyPending,
	PoseAnalyzing:       LegacyPoseProcessing,
	PoseCompleted:       LegacyPoseCompleted,
	LLMAnalyzing:        LegacyLLMProcessing,
	AnalysisCompleted:   LegacyLLMCompleted,
	PoseServerFailed:    LegacyPoseServerFailed,
	PoseDetectionFailed: LegacyPoseFailed,
	LLMServerFailed:     LegacyLLMServerFailed,
	LLMAnalysisFailed:   LegacyLLMFailed,
	AnalysisFailed:      LegacyFailed,
	PoseRetryReady:      LegacyPending,
	LLMRetryReady:       LegacyPoseCompleted,
}

// Normalize maps a raw status string from either vocabulary generation to its
// canonical value. It is total: empty and unknown input resolve to Pending so
// a transient or brand-new backend status can never crash a viewer. Unknown
// input is logged for diagnosis.
func Normalize(raw string) Status {
	s, known := NormalizeKnown(raw)
	if !known && strings.TrimSpace(raw) != "" {
		lg := xglog.WithComponent("status")
		lg.Warn().
			Str("event", "status.unknown").
			Str("raw_status", raw).
			Msg("unknown status resolved to pending")
	}
	return s
}

// NormalizeKnown is Normalize plus a report of whether raw was found in the
// vocabulary. Empty input counts as unknown.
func NormalizeKnown(raw string) (Status, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Pending, false
	}
	if s, ok := legacyToCanonical[trimmed]; ok {
		return s, true
	}
	return Pending, false
}

// Denormalize maps a canonical status to the legacy string expected by
// unmigrated consumers. Total; a non-canonical input falls back to pending.
func Denormalize(s Status) string {
	if l, ok := canonicalToLegacy[s]; ok {
		return l
	}
	return LegacyPending
}

// Validation is the result of a diagnostic status check. It is an
// introspection aid for tooling and the validate endpoint, not a control-flow
// mechanism: Normalize never consults it.
type Validation struct {
	IsValid  bool     `json:"is_valid"`
	Unified  Status   `json:"unified"`
	Warnings []string `json:"warnings,omitempty"`
}

// Validate inspects a raw status string and reports how it resolves. The
// input is invalid when it is empty, not present in either vocabulary, or
// resolves to the generic AnalysisFailed bucket that carries no stage
// information.
func Validate(raw string) Validation {
	v := Validation{IsValid: true}
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		v.IsValid = false
		v.Unified = Pending
		v.Warnings = append(v.Warnings, "status is empty; defaulting to pending")
		return v
	}

	unified, known := NormalizeKnown(trimmed)
	v.Unified = unified
	if !known {
		v.IsValid = false
		v.Warnings = append(v.Warnings, fmt.Sprintf("unknown status %q; defaulting to pending", trimmed))
		return v
	}
	if unified == AnalysisFailed {
		v.IsValid = false
		v.Warnings = append(v.Warnings, "status resolves to the generic failure bucket; stage information is lost")
	}
	return v
}

// SPDX-License-Identifier: MIT

// Package legacy re-expresses the status predicates in the older
// blazepose/llm three-stage vocabulary for consumers that have not migrated
// to canonical statuses. Every function normalizes first and delegates to the
// status package; there is deliberately no second classification table here.
package legacy

import "github.com/posecare/statusd/internal/status"

// IsBlazeposeProcessing reports whether the pose-estimation stage is running.
func IsBlazeposeProcessing(raw string) bool {
	return status.Normalize(raw) == status.PoseAnalyzing
}

// IsBlazeposeCompleted reports whether the pose-estimation stage finished,
// in the broad legacy sense: any state only reachable after a successful
// pose run counts.
func IsBlazeposeCompleted(raw string) bool {
	return status.Normalize(raw).IsPoseStageComplete()
}

// IsLLMProcessing reports whether the prescription-generation stage is
// running.
func IsLLMProcessing(raw string) bool {
	return status.Normalize(raw) == status.LLMAnalyzing
}

// IsLLMCompleted reports whether the prescription-generation stage finished.
func IsLLMCompleted(raw string) bool {
	return status.Normalize(raw).IsLLMStageComplete()
}

// IsFailed reports whether raw maps to any failure status.
func IsFailed(raw string) bool {
	return status.Normalize(raw).IsFailed()
}

// IsRetryable reports whether raw maps to a status a user may retry from.
func IsRetryable(raw string) bool {
	return status.Normalize(raw).IsRetryable()
}

// Progress returns the display percentage for raw under the canonical
// progress rules.
func Progress(raw string) int {
	return status.Normalize(raw).Progress()
}

// StatusOf returns the legacy string a canonical-producing backend status
// maps to, for wire compatibility with unmigrated clients.
func StatusOf(raw string) string {
	return status.Denormalize(status.Normalize(raw))
}

// SPDX-License-Identifier: MIT

// Package status interprets raw analysis-job status strings coming from the
// pose-estimation and prescription-generation backends. It owns the canonical
// twelve-value vocabulary, the translation from the older blazepose/llm
// vocabulary, and every value derived from a status: progress, restart point,
// display projection, start eligibility, navigation decision and notification
// payload. All functions are pure and total; bad input degrades to Pending
// instead of failing the caller.
package status

// Status is the canonical analysis-job state.
type Status string

const (
	Pending           Status = "pending"
	PoseAnalyzing     Status = "pose_analyzing"
	PoseCompleted     Status = "pose_completed"
	LLMAnalyzing      Status = "llm_analyzing"
	AnalysisCompleted Status = "analysis_completed"

	PoseServerFailed    Status = "pose_server_failed"
	PoseDetectionFailed Status = "pose_detection_failed"
	LLMServerFailed     Status = "llm_server_failed"
	LLMAnalysisFailed   Status = "llm_analysis_failed"
	AnalysisFailed      Status = "analysis_failed"

	PoseRetryReady Status = "pose_retry_ready"
	LLMRetryReady  Status = "llm_retry_ready"
)

func (s Status) String() string { return string(s) }

// classification is the single row of truth per canonical status. Progress,
// failure class, stage completion, restart point and display variant are all
// read from here so a new status cannot be added inconsistently across
// scattered switches.
type classification struct {
	progress  int
	failed    bool
	poseDone  bool
	llmDone   bool
	retryable bool
	canStart  bool
	restart   Status
	variant   Variant
}

var table = map[Status]classification{
	Pending:           {progress: 5, canStart: true, restart: Pending, variant: VariantProcessing},
	PoseAnalyzing:     {progress: 25, restart: Pending, variant: VariantProcessing},
	PoseCompleted:     {progress: 50, poseDone: true, restart: Pending, variant: VariantWarning},
	LLMAnalyzing:      {progress: 75, poseDone: true, restart: Pending, variant: VariantProcessing},
	AnalysisCompleted: {progress: 100, poseDone: true, llmDone: true, restart: Pending, variant: VariantSuccess},

	PoseServerFailed:    {progress: 0, failed: true, retryable: true, canStart: true, restart: Pending, variant: VariantError},
	PoseDetectionFailed: {progress: 0, failed: true, retryable: true, canStart: true, restart: Pending, variant: VariantError},
	LLMServerFailed:     {progress: 50, failed: true, poseDone: true, retryable: true, canStart: true, restart: PoseCompleted, variant: VariantError},
	LLMAnalysisFailed:   {progress: 50, failed: true, poseDone: true, retryable: true, canStart: true, restart: PoseCompleted, variant: VariantError},
	AnalysisFailed:      {progress: 0, failed: true, retryable: true, canStart: true, restart: Pending, variant: VariantError},

	PoseRetryReady: {progress: 0, retryable: true, canStart: true, restart: Pending, variant: VariantProcessing},
	LLMRetryReady:  {progress: 50, poseDone: true, retryable: true, canStart: true, restart: PoseCompleted, variant: VariantProcessing},
}

// All returns the canonical statuses in pipeline order.
func All() []Status {
	return []Status{
		Pending, PoseAnalyzing, PoseCompleted, LLMAnalyzing, AnalysisCompleted,
		PoseServerFailed, PoseDetectionFailed, LLMServerFailed, LLMAnalysisFailed, AnalysisFailed,
		PoseRetryReady, LLMRetryReady,
	}
}

// Known reports whether s is one of the twelve canonical values.
func (s Status) Known() bool {
	_, ok := table[s]
	return ok
}

// classify returns the classification row for s. A status outside the
// canonical vocabulary is classified as Pending; callers normalize first, so
// this only fires when a Status value was forged from a raw string.
func (s Status) classify() classification {
	if c, ok := table[s]; ok {
		return c
	}
	return table[Pending]
}

// IsCompleted reports whether the whole pipeline finished successfully.
func (s Status) IsCompleted() bool { return s == AnalysisCompleted }

// IsFailed reports whether s is one of the five failure statuses.
func (s Status) IsFailed() bool { return s.classify().failed }

// IsRetryable reports whether a user-initiated retry makes sense: every
// failure status plus the two parked retry-ready states.
func (s Status) IsRetryable() bool { return s.classify().retryable }

// IsPoseStageComplete reports whether the pose-estimation stage is known to
// have succeeded, i.e. s is only reachable after a successful pose run.
func (s Status) IsPoseStageComplete() bool { return s.classify().poseDone }

// IsLLMStageComplete reports whether the prescription-generation stage
// finished. Only the terminal success state qualifies.
func (s Status) IsLLMStageComplete() bool { return s.classify().llmDone }

// CanStart reports whether a new analysis run may be started from s. Mid-flight
// and completed jobs cannot be started again; failed, parked and idle ones can.
func (s Status) CanStart() bool { return s.classify().canStart }

// Progress returns the display percentage for s in [0,100]. Failures report
// the percentage of the last stage that completed before the failure, not the
// point of the crash: a pose-stage failure shows 0, an LLM-stage failure keeps
// the 50 earned by the finished pose stage.
func (s Status) Progress() int { return s.classify().progress }

// RestartPoint returns the status a retried job conceptually resumes from.
// LLM-stage failures resume from PoseCompleted so pose estimation is not
// redone; everything else restarts the whole pipeline. A status with no
// specific rule maps to Pending, which re-does work but never skips work that
// was not evidenced complete.
func (s Status) RestartPoint() Status { return s.classify().restart }

// DisplayVariant returns the severity tag used by status renderers.
func (s Status) DisplayVariant() Variant {
	if s.Known() {
		return table[s].variant
	}
	return VariantProcessing
}

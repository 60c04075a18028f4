// SPDX-License-Identifier: MIT

package status

import "time"

// Target names a destination the client should redirect to.
type Target string

const (
	TargetPrescriptionHistory Target = "prescription-history"
	TargetCreatePrescription  Target = "create-prescription"
)

// Redirect delays. Completion gives the user a moment to read the success
// state; failures linger slightly longer so the error text can be taken in.
const (
	completedRedirectDelay = 2 * time.Second
	failureRedirectDelay   = 3 * time.Second
)

// NavigationAction is a pure redirect decision. The caller owns the deferred
// execution: it schedules the redirect after Delay and must cancel it when a
// newer status supersedes the decision before the delay elapses. The core
// holds no timer state.
type NavigationAction struct {
	Target Target
	Delay  time.Duration
	Reason string
}

// Navigation decides, for a raw status, whether the client should redirect.
// nil means stay on the current page and keep polling. The first matching
// rule wins; completion takes precedence over the pipeline-problem group even
// though AnalysisCompleted also appears there.
func Navigation(raw string) *NavigationAction {
	s := Normalize(raw)

	if s.IsCompleted() {
		return &NavigationAction{
			Target: TargetPrescriptionHistory,
			Delay:  completedRedirectDelay,
			Reason: "analysis complete",
		}
	}

	switch s {
	case PoseServerFailed, PoseDetectionFailed:
		// The input itself is the problem; send the user back to the form to
		// retry with different images.
		return &NavigationAction{
			Target: TargetCreatePrescription,
			Delay:  failureRedirectDelay,
			Reason: "pose analysis failed, retry with different input",
		}
	case AnalysisCompleted, LLMServerFailed, LLMAnalysisFailed, AnalysisFailed:
		return &NavigationAction{
			Target: TargetPrescriptionHistory,
			Delay:  failureRedirectDelay,
			Reason: "analysis pipeline problem",
		}
	default:
		return nil
	}
}

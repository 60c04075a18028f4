// SPDX-License-Identifier: MIT

package legacy_test

import (
	"testing"

	"github.com/posecare/statusd/internal/status/legacy"
	"github.com/stretchr/testify/assert"
)

func TestShimAgreesWithCore(t *testing.T) {
	tests := []struct {
		raw            string
		poseProcessing bool
		poseCompleted  bool
		llmProcessing  bool
		llmCompleted   bool
		failed         bool
		progress       int
	}{
		{"pending", false, false, false, false, false, 5},
		{"blazepose_processing", true, false, false, false, false, 25},
		{"blazepose_completed", false, true, false, false, false, 50},
		{"llm_processing", false, true, true, false, false, 75},
		{"llm_completed", false, true, false, true, false, 100},
		{"blazepose_pose_failed", false, false, false, false, true, 0},
		{"llm_failed", false, true, false, false, true, 50},
		{"failed", false, false, false, false, true, 0},
		// Canonical input passes straight through the shim.
		{"llm_retry_ready", false, true, false, false, false, 50},
		{"bogus", false, false, false, false, false, 5},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.poseProcessing, legacy.IsBlazeposeProcessing(tt.raw), "IsBlazeposeProcessing")
			assert.Equal(t, tt.poseCompleted, legacy.IsBlazeposeCompleted(tt.raw), "IsBlazeposeCompleted")
			assert.Equal(t, tt.llmProcessing, legacy.IsLLMProcessing(tt.raw), "IsLLMProcessing")
			assert.Equal(t, tt.llmCompleted, legacy.IsLLMCompleted(tt.raw), "IsLLMCompleted")
			assert.Equal(t, tt.failed, legacy.IsFailed(tt.raw), "IsFailed")
			assert.Equal(t, tt.progress, legacy.Progress(tt.raw), "Progress")
		})
	}
}

func TestStatusOfRoundTripsThroughLegacyVocabulary(t *testing.T) {
	assert.Equal(t, "llm_completed", legacy.StatusOf("analysis_completed"))
	assert.Equal(t, "blazepose_completed", legacy.StatusOf("llm_retry_ready"))
	assert.Equal(t, "pending", legacy.StatusOf("pose_retry_ready"))
	assert.Equal(t, "pending", legacy.StatusOf("garbage"))
}

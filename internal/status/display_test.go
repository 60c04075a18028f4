// SPDX-License-Identifier: MIT

package status_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/posecare/statusd/internal/status"
	"github.com/stretchr/testify/assert"
)

func TestDisplayLLMFailureKeepsPoseCredit(t *testing.T) {
	props := status.Display("llm_failed", "")

	assert.Equal(t, 50, props.ProgressPercent)
	assert.Equal(t, status.VariantError, props.Variant)
	assert.True(t, props.ShowRetry)
	assert.Equal(t, "처방 생성 재시도", props.RetryText)
}

func TestDisplayVariants(t *testing.T) {
	tests := []struct {
		raw  string
		want status.Variant
	}{
		{"analysis_completed", status.VariantSuccess},
		{"llm_completed", status.VariantSuccess},
		{"pose_server_failed", status.VariantError},
		{"failed", status.VariantError},
		// pose_completed signals the wait between the two stages.
		{"pose_completed", status.VariantWarning},
		{"blazepose_completed", status.VariantWarning},
		{"pending", status.VariantProcessing},
		{"pose_analyzing", status.VariantProcessing},
		{"llm_analyzing", status.VariantProcessing},
		{"pose_retry_ready", status.VariantProcessing},
		{"garbage", status.VariantProcessing},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Display(tt.raw, "").Variant)
		})
	}
}

func TestDisplayRetryText(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"pose_detection_failed", "다른 이미지로 재시도"},
		{"blazepose_pose_failed", "다른 이미지로 재시도"},
		{"llm_analysis_failed", "처방 생성 재시도"},
		{"llm_failed", "처방 생성 재시도"},
		{"pose_server_failed", "다시 시도"},
		{"llm_server_failed", "다시 시도"},
		{"failed", "다시 시도"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, status.Display(tt.raw, "").RetryText, "retry text for %s", tt.raw)
	}
}

func TestDisplayDescriptionPassthrough(t *testing.T) {
	props := status.Display("pose_analyzing", "프레임 12/30 처리 중")
	assert.Equal(t, "프레임 12/30 처리 중", props.Description)

	props = status.Display("pose_analyzing", "")
	assert.Equal(t, "", props.Description)
}

func TestDisplayShowRetryOnlyOnFailure(t *testing.T) {
	for _, s := range status.All() {
		props := status.Display(string(s), "")
		assert.Equal(t, s.IsFailed(), props.ShowRetry, "show_retry for %s", s)
	}
}

func TestDisplayWithOverrides(t *testing.T) {
	overrides := status.Messages{
		status.AnalysisCompleted: "맞춤 완료 문구",
	}

	got := status.DisplayWith(overrides, "analysis_completed", "")
	want := status.DisplayProps{
		Text:            "맞춤 완료 문구",
		ProgressPercent: 100,
		Variant:         status.VariantSuccess,
		RetryText:       "다시 시도",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DisplayWith mismatch (-want +got):\n%s", diff)
	}

	// Statuses without an override keep the built-in text.
	plain := status.DisplayWith(overrides, "pending", "")
	assert.Equal(t, status.Text(status.Pending), plain.Text)
}

func TestDefaultMessagesCoversAllStatuses(t *testing.T) {
	msgs := status.DefaultMessages()
	for _, s := range status.All() {
		assert.NotEmpty(t, msgs[s], "missing display text for %s", s)
	}
}

func TestDefaultMessagesReturnsCopy(t *testing.T) {
	msgs := status.DefaultMessages()
	msgs[status.Pending] = "mutated"
	assert.NotEqual(t, "mutated", status.Text(status.Pending))
}

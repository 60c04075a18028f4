// SPDX-License-Identifier: MIT

package status

// Start-button copy.
const (
	startTextNew          = "분석 시작"
	startTextRestart      = "분석 재시작"
	startTextPrescription = "처방 생성 재시작"

	warningClearerPose = "전신이 잘 보이도록 촬영한 사진으로 다시 시도해 주세요"
)

// StartInfo is the derived state of the analysis start/restart button,
// recomputed on every query and never persisted.
type StartInfo struct {
	CanStart       bool   `json:"can_start"`
	ButtonText     string `json:"button_text"`
	RestartFrom    Status `json:"restart_from"`
	StatusMessage  string `json:"status_message"`
	ShowWarning    bool   `json:"show_warning"`
	WarningMessage string `json:"warning_message,omitempty"`
}

// Start derives the start-button projection from the raw analysis status and
// the raw prescription status. Either input may be empty; both normalize
// independently. The analysis status is authoritative for the restart point
// and button copy; the prescription status only contributes retry
// eligibility.
func Start(analysisStatus, prescriptionStatus string) StartInfo {
	analysis := Normalize(analysisStatus)
	prescription := Normalize(prescriptionStatus)

	info := StartInfo{
		CanStart:      analysis.CanStart(),
		ButtonText:    startTextNew,
		RestartFrom:   analysis.RestartPoint(),
		StatusMessage: Text(analysis),
	}

	if analysis.IsRetryable() || prescription.IsRetryable() {
		if analysis.IsPoseStageComplete() {
			// Pose output survived; only the prescription step reruns.
			info.ButtonText = startTextPrescription
		} else {
			info.ButtonText = startTextRestart
		}
	}

	if analysis == PoseDetectionFailed {
		info.ShowWarning = true
		info.WarningMessage = warningClearerPose
	}

	return info
}

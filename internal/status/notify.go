// SPDX-License-Identifier: MIT

package status

// NoticeType is the severity of a transient toast-style notification.
type NoticeType string

const (
	NoticeSuccess NoticeType = "success"
	NoticeError   NoticeType = "error"
	NoticeInfo    NoticeType = "info"
)

// Notice is the payload handed to the toast/alert presenter.
type Notice struct {
	Title   string     `json:"title"`
	Message string     `json:"message"`
	Type    NoticeType `json:"type"`
}

// Notify returns the notification to raise for s, if any. Terminal and parked
// states notify; in-progress states stay silent and rely on the progress
// display.
func Notify(s Status) (Notice, bool) {
	switch {
	case s.IsCompleted():
		return Notice{
			Title:   "분석 완료",
			Message: "운동 처방이 준비되었습니다",
			Type:    NoticeSuccess,
		}, true
	case s.IsFailed():
		return Notice{
			Title:   "분석 실패",
			Message: Text(s),
			Type:    NoticeError,
		}, true
	case s == PoseRetryReady, s == LLMRetryReady:
		return Notice{
			Title:   "재시작 가능",
			Message: Text(s),
			Type:    NoticeInfo,
		}, true
	default:
		return Notice{}, false
	}
}

// SPDX-License-Identifier: MIT

package status

// Variant is the severity tag a status renderer uses to pick styling.
type Variant string

const (
	VariantSuccess    Variant = "success"
	VariantError      Variant = "error"
	VariantWarning    Variant = "warning"
	VariantInfo       Variant = "info"
	VariantProcessing Variant = "processing"
)

// Retry button copy.
const (
	retryTextDefault      = "다시 시도"
	retryTextOtherImage   = "다른 이미지로 재시도"
	retryTextPrescription = "처방 생성 재시도"
)

// Messages maps each canonical status to its user-facing text.
type Messages map[Status]string

var defaultMessages = Messages{
	Pending:           "분석 대기 중입니다",
	PoseAnalyzing:     "자세 분석 중입니다",
	PoseCompleted:     "자세 분석이 완료되었습니다. 처방 생성을 기다리는 중입니다",
	LLMAnalyzing:      "운동 처방 생성 중입니다",
	AnalysisCompleted: "분석이 완료되었습니다",

	PoseServerFailed:    "자세 분석 서버에 연결할 수 없습니다",
	PoseDetectionFailed: "사진에서 자세를 인식하지 못했습니다",
	LLMServerFailed:     "처방 생성 서버에 연결할 수 없습니다",
	LLMAnalysisFailed:   "운동 처방 생성에 실패했습니다",
	AnalysisFailed:      "분석에 실패했습니다",

	PoseRetryReady: "자세 분석을 다시 시작할 수 있습니다",
	LLMRetryReady:  "처방 생성을 다시 시작할 수 있습니다",
}

// DefaultMessages returns a copy of the built-in Korean message catalog.
// Operators override individual entries via the daemon configuration.
func DefaultMessages() Messages {
	m := make(Messages, len(defaultMessages))
	for k, v := range defaultMessages {
		m[k] = v
	}
	return m
}

// Text returns the built-in user-facing message for s.
func Text(s Status) string {
	if t, ok := defaultMessages[s]; ok {
		return t
	}
	return defaultMessages[Pending]
}

// DisplayProps is everything a status view needs to render one status,
// recomputed fresh on every poll tick and never stored.
type DisplayProps struct {
	Text            string  `json:"text"`
	Description     string  `json:"description"`
	ProgressPercent int     `json:"progress_percent"`
	Variant         Variant `json:"variant"`
	ShowRetry       bool    `json:"show_retry"`
	RetryText       string  `json:"retry_text"`
}

// Display projects a raw status plus an optional backend-supplied free-text
// message into render-ready props using the built-in catalog.
func Display(raw, message string) DisplayProps {
	return DisplayWith(nil, raw, message)
}

// DisplayWith is Display with per-status text overrides. A status missing
// from msgs falls back to the built-in catalog.
func DisplayWith(msgs Messages, raw, message string) DisplayProps {
	s := Normalize(raw)

	text := Text(s)
	if override, ok := msgs[s]; ok && override != "" {
		text = override
	}

	return DisplayProps{
		Text:            text,
		Description:     message,
		ProgressPercent: s.Progress(),
		Variant:         s.DisplayVariant(),
		ShowRetry:       s.IsFailed(),
		RetryText:       RetryText(s),
	}
}

// RetryText returns the retry-button copy for s. Pose-detection failures ask
// for a different image; LLM-analysis failures retry only the prescription
// step.
func RetryText(s Status) string {
	switch s {
	case PoseDetectionFailed:
		return retryTextOtherImage
	case LLMAnalysisFailed:
		return retryTextPrescription
	default:
		return retryTextDefault
	}
}

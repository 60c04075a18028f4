// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRequestID  = "request_id"
	FieldAnalysisID = "analysis_id"
	FieldProfileID  = "profile_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Status fields
	FieldRawStatus = "raw_status"
	FieldStatus    = "status"
	FieldTarget    = "target"
)

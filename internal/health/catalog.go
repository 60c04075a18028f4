// SPDX-License-Identifier: MIT

package health

import (
	"context"
	"fmt"

	"github.com/posecare/statusd/internal/status"
)

// CatalogChecker verifies the display catalog covers every canonical status.
// A gap would surface as a pending-style fallback message in the UI, so it is
// reported as degraded rather than unhealthy.
type CatalogChecker struct{}

func (CatalogChecker) Name() string { return "message_catalog" }

func (CatalogChecker) Check(_ context.Context) CheckResult {
	msgs := status.DefaultMessages()
	for _, s := range status.All() {
		if msgs[s] == "" {
			return CheckResult{
				Status:  StatusDegraded,
				Message: fmt.Sprintf("no display text for status %s", s),
			}
		}
	}
	return CheckResult{Status: StatusHealthy}
}

// SPDX-License-Identifier: MIT

// statuscheck interprets one raw analysis status on the command line and
// prints every derived projection as JSON. Exit code 1 flags a status the
// validator rejects.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/posecare/statusd/internal/status"
)

type output struct {
	Input        string              `json:"input"`
	Status       status.Status       `json:"status"`
	LegacyStatus string              `json:"legacy_status"`
	Validation   status.Validation   `json:"validation"`
	Display      status.DisplayProps `json:"display"`
	Start        status.StartInfo    `json:"start"`
	Navigation   *navOutput          `json:"navigation,omitempty"`
	Notification *status.Notice      `json:"notification,omitempty"`
}

type navOutput struct {
	Target  string `json:"target"`
	DelayMs int64  `json:"delay_ms"`
	Reason  string `json:"reason"`
}

func main() {
	message := flag.String("message", "", "optional backend-supplied free-text message")
	prescription := flag.String("prescription", "", "optional raw prescription status")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: statuscheck [-message text] [-prescription status] <raw-status>")
		os.Exit(2)
	}
	raw := flag.Arg(0)

	st := status.Normalize(raw)
	out := output{
		Input:        raw,
		Status:       st,
		LegacyStatus: status.Denormalize(st),
		Validation:   status.Validate(raw),
		Display:      status.Display(raw, *message),
		Start:        status.Start(raw, *prescription),
	}
	if action := status.Navigation(raw); action != nil {
		out.Navigation = &navOutput{
			Target:  string(action.Target),
			DelayMs: action.Delay.Milliseconds(),
			Reason:  action.Reason,
		}
	}
	if notice, ok := status.Notify(st); ok {
		out.Notification = &notice
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}

	if !out.Validation.IsValid {
		os.Exit(1)
	}
}

package handlers

import "github.com/spec-kit/clinic-service/internal/workflow"

// firstToast pulls the first captured toast for the response body, if any.
func firstToast(rec *workflow.RecordingToaster) *workflow.Toast {
	toasts := rec.Toasts()
	if len(toasts) == 0 {
		return nil
	}
	return &toasts[0]
}

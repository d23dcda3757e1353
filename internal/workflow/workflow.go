// Package workflow implements the submission workflows behind the public
// site forms: local required-field validation, a guarded submit path, and
// the administrative read/update side of each record kind.
//
// Each form instance owns its own field state and busy flag. A submission
// moves Idle -> Submitting -> Succeeded or Failed; the busy flag is held only
// while Submitting and is released on every exit path.
package workflow

import (
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// State identifies where a form is in its submission lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// ErrSubmitInFlight is returned when Submit is called while a prior submit
// on the same form instance has not finished.
var ErrSubmitInFlight = errors.New("submission already in flight")

const requiredFieldsMessage = "Please fill in all required fields"

// Toaster is the user-feedback capability handed to each workflow. It
// replaces any notion of process-wide toast state; callers inject whatever
// implementation suits their surface.
type Toaster interface {
	Success(title, description string)
	Error(title, description string)
}

// logToaster writes toasts to the structured log, for headless deployments.
type logToaster struct {
	logger *zap.Logger
}

// NewLogToaster returns a Toaster backed by zap.
func NewLogToaster(logger *zap.Logger) Toaster {
	return &logToaster{logger: logger}
}

func (t *logToaster) Success(title, description string) {
	t.logger.Info("toast", zap.String("title", title), zap.String("description", description))
}

func (t *logToaster) Error(title, description string) {
	t.logger.Warn("toast", zap.String("title", title), zap.String("description", description))
}

// Toast is one captured feedback message.
type Toast struct {
	Level       string `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// RecordingToaster captures toasts so a transport can render them in its
// response. Safe for use from a single request; not shared across requests.
type RecordingToaster struct {
	mu     sync.Mutex
	toasts []Toast
}

func (t *RecordingToaster) Success(title, description string) {
	t.append(Toast{Level: "success", Title: title, Description: description})
}

func (t *RecordingToaster) Error(title, description string) {
	t.append(Toast{Level: "error", Title: title, Description: description})
}

// Toasts returns the captured messages in order.
func (t *RecordingToaster) Toasts() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Toast{}, t.toasts...)
}

func (t *RecordingToaster) append(toast Toast) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.toasts = append(t.toasts, toast)
}

// Tee fans a toast out to several sinks, e.g. a request recorder plus the log.
func Tee(sinks ...Toaster) Toaster {
	return teeToaster(sinks)
}

type teeToaster []Toaster

func (t teeToaster) Success(title, description string) {
	for _, sink := range t {
		sink.Success(title, description)
	}
}

func (t teeToaster) Error(title, description string) {
	for _, sink := range t {
		sink.Error(title, description)
	}
}

type requiredField struct {
	name  string
	value string
}

// missingRequired returns the names of required fields that are empty after
// trimming. Presence is the only check; format validation is out of scope.
func missingRequired(fields []requiredField) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func validationError(missing []string) error {
	details := make(map[string]any, 1)
	details["missing"] = missing
	return apperrors.NewValidationError(requiredFieldsMessage, details)
}

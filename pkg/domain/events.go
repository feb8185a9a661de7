package domain

import "context"

// StepEvent describes a step lifecycle transition for observers.
type StepEvent struct {
	Step string `json:"step"`

	// Reason is set on skip events (why the step did not run).
	Reason string `json:"reason,omitempty"`

	// Err is set on end events when the step failed.
	Err error `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability. All fields are
// optional; nil hooks are simply not invoked.
type LifecycleHooks struct {
	OnStepStart func(context.Context, *StepEvent)
	OnStepEnd   func(context.Context, *StepEvent)
	OnStepSkip  func(context.Context, *StepEvent)
}

package domain

import "time"

// PrinterStatus is the last status a printer reported
type PrinterStatus struct {
	State                string   `json:"state"`
	Progress             *float64 `json:"progress"`
	JobName              string   `json:"job_name,omitempty"`
	TimeRemainingSeconds *int64   `json:"time_remaining_seconds"`
}

// Printer is a registered 3D printer
type Printer struct {
	Name        string        `json:"name"`
	Model       string        `json:"model,omitempty"`
	Status      PrinterStatus `json:"status"`
	LastUpdated *time.Time    `json:"last_updated"`
}

// Clone returns a deep copy
func (p Printer) Clone() Printer {
	p.Status.Progress = clonePtr(p.Status.Progress)
	p.Status.TimeRemainingSeconds = clonePtr(p.Status.TimeRemainingSeconds)
	p.LastUpdated = clonePtr(p.LastUpdated)
	return p
}

// PrinterWebhookUpdate is the payload a printer posts about itself. It carries
// its own credential instead of a role key.
type PrinterWebhookUpdate struct {
	PrinterName          string   `json:"printer_name" validate:"required,max=100"`
	APIKey               string   `json:"api_key" validate:"required,max=256"`
	State                string   `json:"state" validate:"required,oneof=idle printing paused error offline"`
	Progress             *float64 `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
	JobName              string   `json:"job_name,omitempty" validate:"max=200"`
	TimeRemainingSeconds *int64   `json:"time_remaining_seconds,omitempty" validate:"omitempty,min=0"`
}

// Status extracts the reported status
func (u PrinterWebhookUpdate) Status() PrinterStatus {
	return PrinterStatus{
		State:                u.State,
		Progress:             clonePtr(u.Progress),
		JobName:              u.JobName,
		TimeRemainingSeconds: clonePtr(u.TimeRemainingSeconds),
	}
}

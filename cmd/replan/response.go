package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"replan/internal/output"
	"replan/internal/version"
)

// Response is the common wrapper for all replan command responses
type Response struct {
	ReplanVersion string      `json:"replanVersion"`
	SchemaVersion int         `json:"schemaVersion"`
	RunId         string      `json:"runId"`
	Facts         interface{} `json:"facts"`
	Warnings      []string    `json:"warnings"`
	DurationMs    int64       `json:"durationMs"`
}

// NewResponse creates a response wrapper around command facts
func NewResponse(facts interface{}, durationMs int64) *Response {
	return &Response{
		ReplanVersion: version.Version,
		SchemaVersion: 1,
		RunId:         uuid.NewString(),
		Facts:         facts,
		Warnings:      []string{},
		DurationMs:    durationMs,
	}
}

// AddWarning adds a warning to the response
func (r *Response) AddWarning(warning string) {
	r.Warnings = append(r.Warnings, warning)
}

// emitJSON renders the response deterministically to stdout
func emitJSON(r *Response) error {
	data, err := output.EncodeIndented(r, "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// measureDuration is a helper to measure execution time
func measureDuration(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}

// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package models

import "time"

// APIResponse is the envelope for every REST response.
type APIResponse struct {
	// Status is "success" or "error".
	Status string `json:"status"`

	// Data carries the endpoint-specific payload on success.
	Data interface{} `json:"data,omitempty"`

	// Metadata carries response metadata.
	Metadata Metadata `json:"metadata"`

	// Error carries error details when Status is "error".
	Error *APIError `json:"error,omitempty"`
}

// Metadata holds response metadata.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError describes a failed request.
type APIError struct {
	// Code is a stable machine-readable error code, e.g. COUNTRY_NOT_FOUND.
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Details carries optional structured context.
	Details interface{} `json:"details,omitempty"`
}

// NewSuccessResponse builds a success envelope around data.
func NewSuccessResponse(data interface{}) *APIResponse {
	return &APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: Metadata{Timestamp: time.Now().UTC()},
	}
}

// NewErrorResponse builds an error envelope.
func NewErrorResponse(code, message string) *APIResponse {
	return &APIResponse{
		Status:   "error",
		Metadata: Metadata{Timestamp: time.Now().UTC()},
		Error:    &APIError{Code: code, Message: message},
	}
}

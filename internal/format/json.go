// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package format

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinelookup/internal/models"
)

// JSON renders results inside the standard APIResponse envelope.
type JSON struct{}

// Name implements Formatter.
func (JSON) Name() string { return NameJSON }

// ContentType implements Formatter.
func (JSON) ContentType() string { return "application/json" }

// Success implements Formatter. A VotesOutcome is unwrapped to whichever of
// its two results is set.
func (JSON) Success(result any, meta models.Metadata) ([]byte, error) {
	if outcome, ok := result.(models.VotesOutcome); ok {
		result = votesPayload(outcome)
	}
	return json.Marshal(&models.APIResponse{
		Status:   "success",
		Data:     result,
		Metadata: meta,
	})
}

// Failure implements Formatter.
func (JSON) Failure(code, message string) ([]byte, error) {
	return json.Marshal(&models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

func votesPayload(o models.VotesOutcome) any {
	if o.Sufficient() {
		return o.Votes
	}
	return o.Insufficient
}

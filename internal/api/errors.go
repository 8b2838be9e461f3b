// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package api

// Error codes for API responses
const (
	ErrCodeUnknownKey         = "UNKNOWN_KEY"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeInvalidFormat      = "INVALID_FORMAT"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// Operation names used for metric labels and cache keys.
const (
	opCountByMonth    = "count_by_month"
	opCountByDay      = "count_by_day"
	opScoreByTitle    = "score_by_title"
	opVotesByTitle    = "votes_by_title"
	opActorSummary    = "actor_summary"
	opDirectorSummary = "director_summary"
	opRecommendations = "recommendations"
)

// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

/*
Package models defines the data structures shared across Cinelookup.

Model Categories:

1. Table Models:
  - MovieRecord: one row of the movies table, with the cast list already decoded
  - RecommendationRecord: a key title and its ordered recommendations

2. Query Results:
  - MonthCount, DayCount: release counts by calendar key
  - TitleScore, TitleVotes, InsufficientVotes, VotesOutcome: title lookups
  - ActorSummary, DirectorSummary: return aggregates
  - Recommendations: precomputed recommendation list

3. API Envelope:
  - APIResponse, Metadata, APIError: standard JSON response wrapper
  - HealthStatus: health endpoint payload

All result types carry JSON tags matching the wire format. Float fields are
rounded by the query engine before they reach these structs.
*/
package models

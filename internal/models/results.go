// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package models

// MinimumVotes is the vote count a title needs before its vote statistics are
// reported.
const MinimumVotes = 2000

// InsufficientVotesMessage is the user-facing text for an InsufficientVotes result.
const InsufficientVotesMessage = "La película no contiene 2000 valoraciones o más, por lo que no se devuelve ningún valor"

// MonthCount is the number of films released in a month.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// DayCount is the number of films released on a day of the month.
type DayCount struct {
	Day       string `json:"day"`
	DayNumber int    `json:"day_number"`
	Count     int    `json:"count"`
}

// TitleScore is the score lookup result for a single title.
type TitleScore struct {
	Title       string  `json:"title"`
	ReleaseYear int     `json:"release_year"`
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
}

// TitleVotes is the vote lookup result for a title with enough votes.
type TitleVotes struct {
	Title       string  `json:"title"`
	ReleaseYear int     `json:"release_year"`
	VoteTotal   int     `json:"vote_total"`
	VoteAverage float64 `json:"vote_average"`
}

// InsufficientVotes signals that a title was found but has fewer than
// MinimumVotes votes. It is an informational result, not an error.
type InsufficientVotes struct {
	Title             string `json:"title"`
	VoteCount         int    `json:"vote_count"`
	MinimumVotes      int    `json:"minimum_votes"`
	InsufficientVotes bool   `json:"insufficient_votes"`
	Message           string `json:"message"`
}

// VotesOutcome carries exactly one of Votes or Insufficient.
type VotesOutcome struct {
	Votes        *TitleVotes
	Insufficient *InsufficientVotes
}

// Sufficient reports whether the outcome carries vote statistics.
func (o VotesOutcome) Sufficient() bool {
	return o.Votes != nil
}

// ActorSummary aggregates the financial return of every film an actor appears in.
// ReturnMean is nil when the actor has no films.
type ActorSummary struct {
	Actor       string   `json:"actor"`
	Count       int      `json:"count"`
	ReturnTotal float64  `json:"return_total"`
	ReturnMean  *float64 `json:"return_mean"`
}

// DirectorSummary aggregates a director's films. The slices are parallel and in
// table order.
type DirectorSummary struct {
	Director    string    `json:"director"`
	ReturnTotal float64   `json:"return_total"`
	Titles      []string  `json:"titles"`
	Years       []int     `json:"years"`
	Returns     []float64 `json:"returns"`
	Budgets     []float64 `json:"budgets"`
	Revenues    []float64 `json:"revenues"`
}

// Len returns the number of films in the summary.
func (d *DirectorSummary) Len() int {
	return len(d.Titles)
}

// Recommendations is the precomputed recommendation list for a title.
type Recommendations struct {
	Title           string   `json:"title"`
	Recommendations []string `json:"recommendations"`
}

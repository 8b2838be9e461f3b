// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

// Package query answers lookup and aggregation requests against the loaded
// dataset tables.
//
// An Engine is built once from an immutable *dataset.Tables and holds only
// derived read-only indexes, so its methods are safe for concurrent use.
// Titles, actor names and director names are matched after TitleCase, month
// names after Capitalize and day words after lower-casing. When several rows
// share a title the first one in table order wins.
package query

import (
	"github.com/tomtom215/cinelookup/internal/dataset"
	"github.com/tomtom215/cinelookup/internal/models"
)

// Engine runs queries over a fixed set of tables.
type Engine struct {
	tables *dataset.Tables

	// title-cased title -> first row index
	movieIndex map[string]int
	recIndex   map[string]int
}

// New builds an Engine and its title indexes.
func New(tables *dataset.Tables) *Engine {
	e := &Engine{
		tables:     tables,
		movieIndex: make(map[string]int, len(tables.Movies)),
		recIndex:   make(map[string]int, len(tables.Recommendations)),
	}
	for i := range tables.Movies {
		key := TitleCase(tables.Movies[i].Title)
		if _, ok := e.movieIndex[key]; !ok {
			e.movieIndex[key] = i
		}
	}
	for i := range tables.Recommendations {
		key := TitleCase(tables.Recommendations[i].Title)
		if _, ok := e.recIndex[key]; !ok {
			e.recIndex[key] = i
		}
	}
	return e
}

// Tables returns the tables the engine was built from.
func (e *Engine) Tables() *dataset.Tables {
	return e.tables
}

// CountByMonth counts films released in the named month.
func (e *Engine) CountByMonth(month string) (models.MonthCount, error) {
	name := Capitalize(month)
	n, ok := MonthNames[name]
	if !ok {
		return models.MonthCount{}, &UnknownKeyError{Kind: KindMonth, Key: month}
	}

	count := 0
	for i := range e.tables.Movies {
		if e.tables.Movies[i].ReleaseMonth == n {
			count++
		}
	}
	return models.MonthCount{Month: name, Count: count}, nil
}

// CountByDay counts films released on the named day of the month.
func (e *Engine) CountByDay(day string) (models.DayCount, error) {
	name := normalizeDay(day)
	n, ok := DayNames[name]
	if !ok {
		return models.DayCount{}, &UnknownKeyError{Kind: KindDay, Key: day}
	}

	count := 0
	for i := range e.tables.Movies {
		if e.tables.Movies[i].ReleaseDay == n {
			count++
		}
	}
	return models.DayCount{Day: name, DayNumber: n, Count: count}, nil
}

func (e *Engine) findMovie(title string) (*models.MovieRecord, error) {
	i, ok := e.movieIndex[TitleCase(title)]
	if !ok {
		return nil, &NotFoundError{Kind: KindTitle, Key: title}
	}
	return &e.tables.Movies[i], nil
}

// ScoreByTitle returns the release year, popularity and vote average of the
// first film with the given title.
func (e *Engine) ScoreByTitle(title string) (models.TitleScore, error) {
	m, err := e.findMovie(title)
	if err != nil {
		return models.TitleScore{}, err
	}
	return models.TitleScore{
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		Popularity:  round2(m.Popularity),
		VoteAverage: round2(m.VoteAverage),
	}, nil
}

// VotesByTitle returns vote statistics for a title, or an InsufficientVotes
// outcome when it has fewer than models.MinimumVotes votes.
func (e *Engine) VotesByTitle(title string) (models.VotesOutcome, error) {
	m, err := e.findMovie(title)
	if err != nil {
		return models.VotesOutcome{}, err
	}

	if m.VoteCount < models.MinimumVotes {
		return models.VotesOutcome{Insufficient: &models.InsufficientVotes{
			Title:             m.Title,
			VoteCount:         m.VoteCount,
			MinimumVotes:      models.MinimumVotes,
			InsufficientVotes: true,
			Message:           models.InsufficientVotesMessage,
		}}, nil
	}

	return models.VotesOutcome{Votes: &models.TitleVotes{
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		VoteTotal:   m.VoteCount,
		VoteAverage: round2(m.VoteAverage),
	}}, nil
}

// ActorSummary aggregates the return of every film whose cast lists the actor.
// An actor with no films yields a zero count and a nil mean.
func (e *Engine) ActorSummary(actor string) (models.ActorSummary, error) {
	name := TitleCase(actor)

	count := 0
	total := 0.0
	for i := range e.tables.Movies {
		m := &e.tables.Movies[i]
		if m.InCast(name) {
			count++
			total += m.Return
		}
	}

	summary := models.ActorSummary{Actor: name, Count: count, ReturnTotal: round2(total)}
	if count > 0 {
		mean := round2(total / float64(count))
		summary.ReturnMean = &mean
	}
	return summary, nil
}

// DirectorSummary lists every film by the director in table order.
func (e *Engine) DirectorSummary(director string) (models.DirectorSummary, error) {
	name := TitleCase(director)

	summary := models.DirectorSummary{
		Director: name,
		Titles:   []string{},
		Years:    []int{},
		Returns:  []float64{},
		Budgets:  []float64{},
		Revenues: []float64{},
	}

	total := 0.0
	for i := range e.tables.Movies {
		m := &e.tables.Movies[i]
		if m.Director != name {
			continue
		}
		total += m.Return
		summary.Titles = append(summary.Titles, m.Title)
		summary.Years = append(summary.Years, m.ReleaseYear)
		summary.Returns = append(summary.Returns, round2(m.Return))
		summary.Budgets = append(summary.Budgets, m.Budget)
		summary.Revenues = append(summary.Revenues, m.Revenue)
	}

	if summary.Len() == 0 {
		return models.DirectorSummary{}, &NotFoundError{Kind: KindDirector, Key: director}
	}
	summary.ReturnTotal = round2(total)
	return summary, nil
}

// RecommendationsFor returns the precomputed recommendations for a title.
func (e *Engine) RecommendationsFor(title string) (models.Recommendations, error) {
	i, ok := e.recIndex[TitleCase(title)]
	if !ok {
		return models.Recommendations{}, &NotFoundError{Kind: KindRecommendation, Key: title}
	}

	row := &e.tables.Recommendations[i]
	recs := make([]string, len(row.Recommendations))
	copy(recs, row.Recommendations)
	return models.Recommendations{Title: row.Title, Recommendations: recs}, nil
}

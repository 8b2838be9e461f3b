// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/cinelookup/internal/models"
)

// Text renders results as plain Spanish sentences.
type Text struct{}

// Name implements Formatter.
func (Text) Name() string { return NameText }

// ContentType implements Formatter.
func (Text) ContentType() string { return "text/plain; charset=utf-8" }

// Success implements Formatter. Metadata is not rendered.
func (Text) Success(result any, _ models.Metadata) ([]byte, error) {
	s, err := Sentence(result)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Failure implements Formatter.
func (Text) Failure(code, message string) ([]byte, error) {
	return []byte(code + ": " + message), nil
}

// Sentence renders a single query result.
func Sentence(result any) (string, error) {
	switch r := result.(type) {
	case models.MonthCount:
		return fmt.Sprintf("%d cantidad de películas fueron estrenadas en el mes de %s", r.Count, r.Month), nil

	case models.DayCount:
		return fmt.Sprintf("%d cantidad de películas fueron estrenadas en el día %d (%s)", r.Count, r.DayNumber, r.Day), nil

	case models.TitleScore:
		return fmt.Sprintf("La película %s fue estrenada en el año %d con un score/popularidad de %s",
			r.Title, r.ReleaseYear, number(r.Popularity)), nil

	case models.VotesOutcome:
		if !r.Sufficient() {
			return models.InsufficientVotesMessage, nil
		}
		return fmt.Sprintf("La película %s fue estrenada en el año %d. La misma cuenta con un total de %d valoraciones, con un score promedio de %s",
			r.Votes.Title, r.Votes.ReleaseYear, r.Votes.VoteTotal, number(r.Votes.VoteAverage)), nil

	case models.ActorSummary:
		mean := 0.0
		if r.ReturnMean != nil {
			mean = *r.ReturnMean
		}
		return fmt.Sprintf("El actor %s ha participado en %d filmaciones, el mismo ha conseguido un retorno de %s con un promedio de %s por filmación",
			r.Actor, r.Count, number(r.ReturnTotal), number(mean)), nil

	case models.DirectorSummary:
		return directorText(&r), nil

	case models.Recommendations:
		var b strings.Builder
		fmt.Fprintf(&b, "Películas recomendadas para %s:", r.Title)
		for _, title := range r.Recommendations {
			b.WriteString("\n")
			b.WriteString(title)
		}
		return b.String(), nil

	case models.HealthStatus:
		return r.Status, nil
	}
	return "", fmt.Errorf("no text rendering for %T", result)
}

func directorText(d *models.DirectorSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "El director %s ha dirigido %d filmaciones con un retorno total de %s",
		d.Director, d.Len(), number(d.ReturnTotal))
	for i := range d.Titles {
		fmt.Fprintf(&b, "\n%s (%d): presupuesto %s, recaudación %s, retorno %s",
			d.Titles[i], d.Years[i], number(d.Budgets[i]), number(d.Revenues[i]), number(d.Returns[i]))
	}
	return b.String()
}

// number prints v in its shortest round-trip form without an exponent.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

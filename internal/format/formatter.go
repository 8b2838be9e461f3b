// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

// Package format renders query results for the wire.
//
// Two formatters are provided: JSON wraps results in the models.APIResponse
// envelope, and Text renders one Spanish sentence per result. Handlers pick
// one per request with Lookup.
package format

import (
	"fmt"
	"strings"

	"github.com/tomtom215/cinelookup/internal/models"
)

// Formatter names accepted by Lookup and the api.response_format setting.
const (
	NameJSON = "json"
	NameText = "text"
)

// Formatter turns query results and failures into response bodies.
type Formatter interface {
	// Name returns the formatter name used in configuration and query strings.
	Name() string

	// ContentType returns the value of the Content-Type response header.
	ContentType() string

	// Success renders a query result.
	Success(result any, meta models.Metadata) ([]byte, error)

	// Failure renders an error code and message.
	Failure(code, message string) ([]byte, error)
}

var registry = map[string]Formatter{
	NameJSON: JSON{},
	NameText: Text{},
}

// Lookup returns the formatter registered under name. Names are
// case-insensitive.
func Lookup(name string) (Formatter, error) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown response format %q (valid: %s, %s)", name, NameJSON, NameText)
	}
	return f, nil
}

// Valid reports whether name is a registered formatter.
func Valid(name string) bool {
	_, err := Lookup(name)
	return err == nil
}

// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package query

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrUnknownKey means a month or day word is not in its lookup map.
	ErrUnknownKey = errors.New("unknown key")

	// ErrNotFound means the key was understood but no row matches it.
	ErrNotFound = errors.New("not found")
)

// Kinds of lookup key, used in error values and metric labels.
const (
	KindMonth          = "month"
	KindDay            = "day"
	KindTitle          = "title"
	KindActor          = "actor"
	KindDirector       = "director"
	KindRecommendation = "recommendation"
)

// UnknownKeyError reports a key that has no translation in a lookup map.
type UnknownKeyError struct {
	Kind string
	Key  string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Key)
}

// Is reports whether target is ErrUnknownKey.
func (e *UnknownKeyError) Is(target error) bool {
	return target == ErrUnknownKey
}

// NotFoundError reports a recognised key with no matching row.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

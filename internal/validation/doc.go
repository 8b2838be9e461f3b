// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

// Package validation checks request input with go-playground/validator v10.
//
// A single validator instance is created on first use and shared. It carries
// one custom tag, nocontrol, which rejects control characters.
//
// Lookup keys come from the URL path and are checked with ValidateKey:
//
//	if verr := validation.ValidateKey("title", key, cfg.API.MaxKeyLength); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message)
//	    return
//	}
//
// Failures are converted to the VALIDATION_ERROR code with messages such as
// "title must be at most 200 characters".
package validation

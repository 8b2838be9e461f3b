// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package logging

import (
	"strings"
	"unicode"
)

// maxLoggedValueLen bounds user-supplied strings written to the log.
const maxLoggedValueLen = 200

// SanitizeValue removes control characters from s and truncates it, so
// request keys cannot forge log lines.
func SanitizeValue(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	if len(s) > maxLoggedValueLen {
		// back off to a rune boundary
		cut := maxLoggedValueLen
		for cut > 0 && !isRuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// SanitizeDSN masks the password of a "user:password@..." DSN.
func SanitizeDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	if at < 0 {
		return dsn
	}
	creds := dsn[:at]
	colon := strings.Index(creds, ":")
	if colon < 0 {
		return dsn
	}
	return creds[:colon] + ":***" + dsn[at:]
}

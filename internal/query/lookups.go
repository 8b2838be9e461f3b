// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package query

// MonthNames maps capitalised Spanish month names to month numbers.
var MonthNames = map[string]int{
	"Enero":      1,
	"Febrero":    2,
	"Marzo":      3,
	"Abril":      4,
	"Mayo":       5,
	"Junio":      6,
	"Julio":      7,
	"Agosto":     8,
	"Septiembre": 9,
	"Octubre":    10,
	"Noviembre":  11,
	"Diciembre":  12,
}

// DayNames maps lower-case Spanish cardinal words to day-of-month numbers.
var DayNames = map[string]int{
	"uno":           1,
	"dos":           2,
	"tres":          3,
	"cuatro":        4,
	"cinco":         5,
	"seis":          6,
	"siete":         7,
	"ocho":          8,
	"nueve":         9,
	"diez":          10,
	"once":          11,
	"doce":          12,
	"trece":         13,
	"catorce":       14,
	"quince":        15,
	"dieciseis":     16,
	"diecisiete":    17,
	"dieciocho":     18,
	"diecinueve":    19,
	"veinte":        20,
	"veintiuno":     21,
	"veintidos":     22,
	"veintitres":    23,
	"veinticuatro":  24,
	"veinticinco":   25,
	"veintiseis":    26,
	"veintisiete":   27,
	"veintiocho":    28,
	"veintinueve":   29,
	"treinta":       30,
	"treinta y uno": 31,
}

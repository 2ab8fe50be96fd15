// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Book is the single catalog entity. Isbn is the external identifier used in
// URLs and never changes after creation.
//
// The validate tags are interpreted by the validators package; ReleaseDate
// carries no rule.
type Book struct {
	// Isbn is an ISBN-13 shaped identifier. Digits may be separated by
	// hyphens or other non-digit characters (e.g. "978-0132350884").
	Isbn string `json:"isbn" validate:"isbn13"`

	// Title must contain at least one non-whitespace character.
	Title string `json:"title" validate:"notblank"`

	// Author must contain at least one non-whitespace character.
	Author string `json:"author" validate:"notblank"`

	// ShortDescription must contain at least one non-whitespace character.
	ShortDescription string `json:"shortDescription" validate:"notblank"`

	// PageCount must be strictly positive.
	PageCount int `json:"pageCount" validate:"gt=0"`

	// ReleaseDate is a calendar date without a time component.
	ReleaseDate Date `json:"releaseDate" validate:"-"`
}

// names.go
//
// A multi-site content management data service
// Copyright (c) 2026 Framekit Contributors
//
// This file is part of sitedb.
// sitedb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// sitedb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with sitedb.
// If not, see <https://www.gnu.org/licenses/>.

// Package names implements the scoped-naming primitive shared by websites,
// folders and nodes: URL-safe slugs derived from titles, unique within a
// parent scope, and the 22-character random ids used for cross-environment
// node identity.
package names

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// MaxNameLength caps generated names so they fit the name columns.
const MaxNameLength = 250

// NewID returns a 22-character URL-safe random id. It is the raw-URL base64
// encoding of a random UUID's 16 bytes, so it carries the full 122 bits of
// randomness without the dashes.
func NewID() string {
	u := uuid.New()
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// Slugify derives a URL-safe name from a title. Letters and digits are
// lowercased, runs of anything else collapse to a single hyphen, and leading
// or trailing hyphens are stripped.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	s := strings.TrimRight(b.String(), "-")
	if len(s) > MaxNameLength {
		s = strings.TrimRight(s[:MaxNameLength], "-")
	}
	return s
}

// MakeUnique disambiguates base against existing sibling names by appending a
// numeric suffix: base, base-2, base-3, ... The taken callback reports whether
// a candidate name is already in use within the scope.
func MakeUnique(base string, taken func(name string) (bool, error)) (string, error) {
	if base == "" {
		base = NewID()
	}
	candidate := base
	for i := 2; ; i++ {
		inUse, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !inUse {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

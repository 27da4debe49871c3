// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"errors"
	"fmt"
)

// Dialect selects the naming of the authentication commands sent to the
// backend. Different backend builds expect either short names ("index",
// "login", "sign.up") or names under the "index" namespace ("index.show",
// "index.login", "index.sign.up").
type Dialect string

const (
	DialectFlat       Dialect = "flat"
	DialectNamespaced Dialect = "namespaced"
)

// ErrUnknownDialect is returned by [ParseDialect] for unsupported values.
var ErrUnknownDialect = errors.New("unknown protocol dialect")

// ParseDialect validates a dialect name.
func ParseDialect(v string) (Dialect, error) {
	switch Dialect(v) {
	case DialectFlat, DialectNamespaced:
		return Dialect(v), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, v)
	}
}

// IndexName returns the name of the "what to show next" request.
func (d Dialect) IndexName() string {
	if d == DialectNamespaced {
		return "index.show"
	}
	return "index"
}

// LoginName returns the name of the login command.
func (d Dialect) LoginName() string {
	if d == DialectNamespaced {
		return "index.login"
	}
	return "login"
}

// SignUpName returns the name of the sign-up command.
func (d Dialect) SignUpName() string {
	if d == DialectNamespaced {
		return "index.sign.up"
	}
	return "sign.up"
}

// LogoutName returns the name of the logout command. It is the same in every
// dialect.
func (d Dialect) LogoutName() string {
	return NameLogout
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthMode selects what the backend wants the client to show after an
// index request.
type AuthMode string

const (
	// AuthModeIndex means the user is authenticated and the resource list
	// should be requested.
	AuthModeIndex AuthMode = "index"
	// AuthModeLogin means a local profile exists and must be unlocked.
	AuthModeLogin AuthMode = "login"
	// AuthModeSignUp means no profile exists yet.
	AuthModeSignUp AuthMode = "signup"
)

// ParseAuthMode maps a wire value to an AuthMode. Only the literal strings
// "index" and "login" are recognised; every other value, including an empty
// one, yields AuthModeSignUp.
func ParseAuthMode(v string) AuthMode {
	switch AuthMode(v) {
	case AuthModeIndex:
		return AuthModeIndex
	case AuthModeLogin:
		return AuthModeLogin
	default:
		return AuthModeSignUp
	}
}

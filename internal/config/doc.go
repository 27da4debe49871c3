// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the shell configuration.
//
// Values are layered from four sources, later sources winning for every
// non-zero field:
//
//  1. built-in defaults
//  2. a JSON or TOML file (-c / -config flag or CONFIG env var)
//  3. environment variables
//  4. command-line flags
//
// The merged [StructuredConfig] is then projected into a validated
// [ClientConfig] which is what the rest of the application consumes.
package config

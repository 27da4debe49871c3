// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package protocol describes the named-message protocol spoken between the
// shell front-end and its backend process.
//
// Inbound messages are decoded in two steps: the transport produces a raw
// [models.Message], then [Codec.Decode] maps it onto a closed set of typed
// events ([Event]). Names that are not part of the protocol, or that belong to
// another resource kind, decode to [Unknown] so callers can ignore them
// without special casing.
//
// Payloads are never trusted: every decoder coerces missing or malformed
// payloads to a documented default instead of failing.
//
// Outbound names depend on the [Dialect] spoken by the backend. Inbound aliases
// of every dialect are always accepted.
package protocol

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import "strings"

// Inbound names that do not depend on the resource kind.
const (
	NameError         = "error"
	NameIndexed       = "indexed"
	NameIndexShow     = "index.show"
	NameLoggedIn      = "logged.in"
	NameIndexLoggedIn = "index.logged.in"
	NameLoggedOut     = "logged.out"
	NameSignedUp      = "signed.up"
	NameIndexSignedUp = "index.signed.up"
)

// Outbound names that do not depend on the resource kind or dialect.
const (
	NameLogout = "logout"
)

// Verbs appended to the resource kind, e.g. "account" + "." + VerbList.
const (
	VerbAdd    = "add"
	VerbList   = "list"
	VerbOpen   = "open"
	VerbAdded  = "added"
	VerbListed = "listed"
	VerbOpened = "opened"
)

const nameSeparator = "."

// ResourceName joins a resource kind and a verb into a message name.
func ResourceName(resource, verb string) string {
	return resource + nameSeparator + verb
}

// splitResourceName splits "<resource>.<verb>" into its parts. Names with
// more or fewer than two segments are rejected.
func splitResourceName(name string) (resource, verb string, ok bool) {
	resource, verb, ok = strings.Cut(name, nameSeparator)
	if !ok || resource == "" || verb == "" || strings.Contains(verb, nameSeparator) {
		return "", "", false
	}
	return resource, verb, true
}

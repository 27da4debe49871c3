// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Resource describes one row of a resource list: an account or an email
// address, optionally paired with the URL used to authorize it.
type Resource struct {
	Addr    string `json:"addr"`
	AuthURL string `json:"auth_url,omitempty"`
}

// Authorizable reports whether the resource can be unlocked through an
// authorization URL.
func (r Resource) Authorizable() bool {
	return r.AuthURL != ""
}

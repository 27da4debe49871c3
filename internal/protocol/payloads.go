// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"bytes"
	"encoding/json"

	"github.com/MKhiriev/go-pass-shell/models"
)

// Payload schemas per inbound name:
//
//	error              string            → ErrorEvent.Text
//	indexed/index.show "index"|"login"|* → Indexed.Mode (default signup)
//	<resource>.added   string            → ResourceAdded.Text
//	<resource>.listed  []string
//	                   []{addr, auth_url}
//	                   {emails: []string, google_auth_url: string}
//	                                     → ResourceListed.Items
//	everything else    ignored

// OpenPayload is the body of a "<resource>.open" command. The resource
// field is keyed by the resource kind, e.g. {"account": ..., "password": ...}.
func OpenPayload(resource, addr, password string) map[string]string {
	return map[string]string{
		resource:   addr,
		"password": password,
	}
}

// decodeText returns the payload of m as text. JSON strings are unquoted,
// other scalars keep their literal form, and null, absent, object or array
// payloads yield "".
func decodeText(m models.Message) string {
	if !m.HasPayload() {
		return ""
	}

	raw := bytes.TrimSpace(m.Payload)
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '{', '[':
		return ""
	default:
		return string(raw)
	}
}

type emailsPayload struct {
	Emails        []string `json:"emails"`
	GoogleAuthURL string   `json:"google_auth_url"`
}

// decodeResources accepts every list shape produced by the known backends and
// returns an empty, non-nil slice for anything it cannot use.
func decodeResources(m models.Message) []models.Resource {
	items := make([]models.Resource, 0)
	if !m.HasPayload() {
		return items
	}

	raw := bytes.TrimSpace(m.Payload)
	switch raw[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return items
		}
		for _, elem := range elems {
			if r, ok := decodeResource(elem); ok {
				items = append(items, r)
			}
		}
	case '{':
		var body emailsPayload
		if err := json.Unmarshal(raw, &body); err != nil {
			return items
		}
		for _, email := range body.Emails {
			items = append(items, models.Resource{Addr: email, AuthURL: body.GoogleAuthURL})
		}
	}

	return items
}

func decodeResource(raw json.RawMessage) (models.Resource, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return models.Resource{}, false
	}

	switch raw[0] {
	case '"':
		var addr string
		if err := json.Unmarshal(raw, &addr); err != nil {
			return models.Resource{}, false
		}
		return models.Resource{Addr: addr}, true
	case '{':
		var r models.Resource
		if err := json.Unmarshal(raw, &r); err != nil {
			return models.Resource{}, false
		}
		return r, true
	default:
		return models.Resource{}, false
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import "github.com/MKhiriev/go-pass-shell/models"

// AuthLinkID is the id of the authorization link shown by the unlock dialog.
const AuthLinkID = "link-auth"

// ResourceInputID returns the id of the add-resource text input.
func ResourceInputID(resource string) string {
	return "value-" + resource
}

// ResourceButtonID returns the id of the add-resource submit button.
func ResourceButtonID(resource string) string {
	return "btn-" + resource
}

// RenderModal returns the content of the modal overlay for state. A hidden
// modal renders as an empty form.
func RenderModal(state models.ModalState, l Layout) Node {
	switch state.Kind {
	case models.ModalAddResource:
		return Node{
			Kind:   KindForm,
			Action: ActionSubmitAdd,
			Children: []Node{
				{Kind: KindInput, ID: ResourceInputID(l.Resource), Text: l.Resource, Focus: true},
				{Kind: KindButton, ID: ResourceButtonID(l.Resource), Text: "Добавить", Action: ActionSubmitAdd},
			},
		}
	case models.ModalOpenResource:
		return Node{
			Kind:   KindForm,
			Action: ActionOpenResource,
			Children: []Node{
				{Kind: KindText, Text: state.Resource.Addr},
				{Kind: KindInput, ID: PasswordInputID, Text: "Пароль", Secret: true, Focus: true},
				{Kind: KindButton, ID: "btn-open", Text: "Открыть", Action: ActionOpenResource},
			},
		}
	case models.ModalUnlockResource:
		return Node{
			Kind:   KindForm,
			Action: ActionUnlock,
			Children: []Node{
				{Kind: KindText, Text: state.Resource.Addr},
				{Kind: KindLink, ID: AuthLinkID, Text: state.Resource.AuthURL, Href: state.Resource.AuthURL, Action: ActionFollowLink, Focus: true},
			},
		}
	default:
		return Node{Kind: KindForm}
	}
}

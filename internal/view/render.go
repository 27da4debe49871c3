// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"github.com/MKhiriev/go-pass-shell/models"
)

// Element ids shared by the renderer and the front-end.
const (
	RootID          = "index"
	PasswordInputID = "value-password"
	LoginButtonID   = "btn-login"
	SignUpButtonID  = "btn-signup"
	AddButtonID     = "btn-add"
	RefreshButtonID = "btn-refresh"
	LogoutButtonID  = "btn-logout"
	HeaderID        = "index-header"
	ListID          = "index-list"
)

// Layout carries the rendering options that do not change between
// transitions.
type Layout struct {
	// Resource is the resource kind, e.g. "account".
	Resource string
	// Logout adds the logout button to the list header.
	Logout bool
	// Open makes list rows trigger the open-resource action.
	Open bool
}

// Render returns the tree for state. It has no side effects.
func Render(state models.ViewState, l Layout) Node {
	root := Node{Kind: KindRoot, ID: RootID}

	switch state.Kind {
	case models.ViewAuthForm:
		root.Children = []Node{renderAuthForm(state.Mode)}
	case models.ViewResourceList:
		root.Children = []Node{renderHeader(l), renderList(state.Items, l)}
	case models.ViewResourceDetail:
		root.Children = []Node{{Kind: KindText, Text: "Открыто"}}
	default:
		root.Children = []Node{{Kind: KindText, Text: "Загрузка..."}}
	}

	return root
}

func renderAuthForm(mode models.AuthMode) Node {
	button := Node{Kind: KindButton, ID: SignUpButtonID, Text: "Зарегистрироваться", Action: ActionSignUp}
	if mode == models.AuthModeLogin {
		button = Node{Kind: KindButton, ID: LoginButtonID, Text: "Войти", Action: ActionLogin}
	}

	return Node{
		Kind:   KindForm,
		Action: button.Action,
		Children: []Node{
			{Kind: KindInput, ID: PasswordInputID, Text: "Пароль", Secret: true, Focus: true},
			button,
		},
	}
}

func renderHeader(l Layout) Node {
	header := Node{
		Kind: KindHeader,
		ID:   HeaderID,
		Children: []Node{
			{Kind: KindButton, ID: AddButtonID, Text: "+", Title: "Добавить", Action: ActionAddResource},
			{Kind: KindButton, ID: RefreshButtonID, Text: "↻", Title: "Обновить список", Action: ActionListResources},
		},
	}
	if l.Logout {
		header.Children = append(header.Children,
			Node{Kind: KindButton, ID: LogoutButtonID, Text: "⎋", Title: "Выйти", Action: ActionLogout})
	}
	return header
}

func renderList(items []models.Resource, l Layout) Node {
	list := Node{Kind: KindList, ID: ListID, Children: make([]Node, 0, len(items))}
	for _, item := range items {
		row := Node{Kind: KindRow, Text: item.Addr, Href: item.AuthURL, Action: ActionFollowLink}
		if l.Open {
			row.Action = ActionOpenResource
		}
		list.Children = append(list.Children, row)
	}
	return list
}

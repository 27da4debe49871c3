// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ViewKind enumerates the mutually exclusive main views.
type ViewKind int

const (
	ViewLoading ViewKind = iota
	ViewAuthForm
	ViewResourceList
	ViewResourceDetail
)

// String returns a short name of the view kind for logs.
func (k ViewKind) String() string {
	switch k {
	case ViewLoading:
		return "loading"
	case ViewAuthForm:
		return "auth_form"
	case ViewResourceList:
		return "resource_list"
	case ViewResourceDetail:
		return "resource_detail"
	default:
		return "unknown"
	}
}

// ViewState is the content of the single top-level view region. Only the
// fields relevant to Kind are meaningful: Mode for ViewAuthForm and Items for
// ViewResourceList.
type ViewState struct {
	Kind  ViewKind
	Mode  AuthMode
	Items []Resource
}

// LoadingView is the state shown before the first reply arrives.
func LoadingView() ViewState {
	return ViewState{Kind: ViewLoading}
}

// AuthFormView shows the login or sign-up form.
func AuthFormView(mode AuthMode) ViewState {
	return ViewState{Kind: ViewAuthForm, Mode: mode}
}

// ResourceListView shows the given items. The slice is copied so later
// mutations by the caller do not leak into the view.
func ResourceListView(items []Resource) ViewState {
	copied := make([]Resource, len(items))
	copy(copied, items)
	return ViewState{Kind: ViewResourceList, Items: copied}
}

// ResourceDetailView shows an opened resource.
func ResourceDetailView() ViewState {
	return ViewState{Kind: ViewResourceDetail}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ModalKind identifies what the modal overlay currently shows.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalAddResource
	ModalOpenResource
	ModalUnlockResource
)

// ModalState is the modal overlay layer. It is independent of ViewState.
type ModalState struct {
	Visible  bool
	Kind     ModalKind
	Resource Resource
}

// HiddenModal returns the closed modal state.
func HiddenModal() ModalState {
	return ModalState{}
}

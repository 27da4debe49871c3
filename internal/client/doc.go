// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the shell client process lifecycle.
//
// It runs the transport pump and the terminal UI as workers under one
// context that is cancelled on SIGINT or SIGTERM, when the user quits, or
// when the host closes the channel.
package client

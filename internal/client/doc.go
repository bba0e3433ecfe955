// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client for the biz-records API.
//
// Each invocation runs exactly one command (token, me, clients, ...) over an
// [adapter.APIClient] and renders the result with lipgloss.
package client

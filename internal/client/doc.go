// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It drives one operator session from the banner through the login to the
// main menu, and turns the outcome into the process exit code.
package client

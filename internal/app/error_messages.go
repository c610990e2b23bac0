// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the qube
// admin client's terminal front end.
//
// Msg* constants open an error notice; Hint* constants follow it with a
// short remediation. Keeping them in one place ensures consistent wording
// across every screen.
package app

const (
	// MsgUnauthorized prefixes a 401 answer.
	MsgUnauthorized = "Not authorized"
	// MsgForbidden prefixes a 403 answer.
	MsgForbidden = "Access denied"
	// MsgNotFound prefixes a 404 answer.
	MsgNotFound = "Not found"
	// MsgValidation prefixes a 422 answer; the field issues follow.
	MsgValidation = "Invalid data"
	// MsgServerError prefixes a 500 answer.
	MsgServerError = "Internal server error"
	// MsgUnexpectedStatus prefixes any other HTTP status.
	MsgUnexpectedStatus = "Unexpected API answer"
	// MsgConnectionFailure is shown when the API cannot be reached.
	MsgConnectionFailure = "Cannot connect to the API"
	// MsgTimeout is shown when a request exceeded its time budget.
	MsgTimeout = "The request timed out"
	// MsgTransport is shown for any other HTTP client failure.
	MsgTransport = "HTTP request failed"
	// MsgMalformedResponse is shown when a 2xx answer cannot be understood.
	MsgMalformedResponse = "Unexpected response from the API"
	// MsgInvalidInput prefixes a locally rejected value.
	MsgInvalidInput = "Invalid input"
	// MsgInvalidSelection is shown for a number outside the listed range.
	MsgInvalidSelection = "Invalid selection"
	// MsgNotANumber is shown when a selection is not a number.
	MsgNotANumber = "Invalid input, type the number only"
	// MsgNothingToSelect is shown when a list is empty or failed to load.
	MsgNothingToSelect = "Nothing to select"
	// MsgCancelled is shown when an operation is abandoned.
	MsgCancelled = "Operation cancelled"
	// MsgUnexpected prefixes any error without a dedicated notice.
	MsgUnexpected = "Unexpected error"

	// HintUnauthorized follows [MsgUnauthorized].
	HintUnauthorized = "Check your credentials or log in again"
	// HintForbidden follows [MsgForbidden].
	HintForbidden = "Your account has no permission for this operation"
	// HintNotFound follows [MsgNotFound]; %s is the requested endpoint.
	HintNotFound = "Check that the endpoint exists: %s"
	// HintServerError follows [MsgServerError].
	HintServerError = "Contact support or try again later"
	// HintConnectionFailure follows [MsgConnectionFailure]; %s is the API URL.
	HintConnectionFailure = "Check that the API at %s is running and reachable (set API_HOST to change it)"
	// HintTimeout follows [MsgTimeout].
	HintTimeout = "The API may be slow or unavailable"
	// HintMalformedResponse follows [MsgMalformedResponse].
	HintMalformedResponse = "Check that API_HOST points at the Qube API"
	// HintUnexpected follows [MsgUnexpected].
	HintUnexpected = "If the problem persists, report this error"
)

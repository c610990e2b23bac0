// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/adapter"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/app"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/validators"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/workflow"
)

// notice is the operator-facing form of an error.
type notice struct {
	message string
	details []string
	hint    string

	// unexpected is set for errors without a dedicated notice; they are
	// logged in full.
	unexpected bool
}

func describeError(err error, apiURL string) notice {
	if apiErr, ok := adapter.AsAPIError(err); ok {
		return describeAPIError(apiErr, apiURL)
	}

	switch {
	case workflow.IsCancelled(err), errors.Is(err, workflow.ErrDeclined):
		return notice{message: app.MsgCancelled}
	case errors.Is(err, workflow.ErrNotANumber):
		return notice{message: app.MsgNotANumber}
	case errors.Is(err, workflow.ErrInvalidSelection):
		return notice{message: app.MsgInvalidSelection}
	case errors.Is(err, workflow.ErrNothingToSelect):
		reason := strings.TrimPrefix(err.Error(), workflow.ErrNothingToSelect.Error()+": ")
		return notice{message: app.MsgNothingToSelect + ": " + reason}
	case isLocalValidation(err):
		return notice{message: app.MsgInvalidInput + ": " + innermost(err).Error()}
	}

	return notice{
		message:    app.MsgUnexpected + ": " + err.Error(),
		hint:       app.HintUnexpected,
		unexpected: true,
	}
}

func describeAPIError(e *adapter.APIError, apiURL string) notice {
	switch e.Kind {
	case adapter.KindUnauthorized:
		return notice{message: app.MsgUnauthorized + ": " + e.Detail, hint: app.HintUnauthorized}
	case adapter.KindForbidden:
		return notice{message: app.MsgForbidden + ": " + e.Detail, hint: app.HintForbidden}
	case adapter.KindNotFound:
		return notice{message: app.MsgNotFound + ": " + e.Detail, hint: fmt.Sprintf(app.HintNotFound, e.Endpoint)}
	case adapter.KindValidation:
		n := notice{message: app.MsgValidation}
		for _, issue := range e.Issues {
			n.details = append(n.details, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
		}
		return n
	case adapter.KindServerError:
		return notice{message: app.MsgServerError + ": " + e.Detail, hint: app.HintServerError}
	case adapter.KindUnknownStatus:
		return notice{message: fmt.Sprintf("%s (HTTP %d): %s", app.MsgUnexpectedStatus, e.Status, e.Detail)}
	case adapter.KindConnectionFailure:
		return notice{message: app.MsgConnectionFailure, hint: fmt.Sprintf(app.HintConnectionFailure, apiURL)}
	case adapter.KindTimeout:
		return notice{message: app.MsgTimeout, hint: app.HintTimeout}
	case adapter.KindTransport:
		return notice{message: app.MsgTransport + ": " + e.Detail}
	case adapter.KindMalformedResponse:
		return notice{message: app.MsgMalformedResponse, hint: app.HintMalformedResponse}
	default:
		return notice{message: app.MsgUnexpected + ": " + e.Error(), hint: app.HintUnexpected, unexpected: true}
	}
}

// localValidationErrors is ordered from the most to the least specific.
var localValidationErrors = []error{
	validators.ErrEmptyEmail,
	validators.ErrEmptyPassword,
	validators.ErrEmptyCredential,
	validators.ErrEmptyName,
	validators.ErrEmptyCompanyID,
	validators.ErrEmptyCurrentPassword,
	validators.ErrEmptyNewPassword,
	validators.ErrPasswordMismatch,
	validators.ErrPasswordTooShort,
	validators.ErrMissingUserID,
	validators.ErrMissingWorkerID,
}

func isLocalValidation(err error) bool {
	return innermost(err) != nil
}

// innermost returns the validator error behind the service wrapping, so
// the operator reads "password must be at least 8 characters" rather than
// the whole chain.
func innermost(err error) error {
	for _, target := range localValidationErrors {
		if errors.Is(err, target) {
			return target
		}
	}
	return nil
}

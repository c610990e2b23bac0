package adapter

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"syscall"

	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	unknownDetail  = "unknown error"
	unknownField   = "unknown"
	invalidRequest = "the request data is invalid"
)

// mapResponse turns an HTTP response into exactly one of Payload or error.
func mapResponse(resp *resty.Response, endpoint string) (Payload, error) {
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated:
		return newPayload(resp.Body()), nil
	case http.StatusNoContent:
		return Payload{Kind: PayloadEmpty}, nil
	}

	return Payload{}, mapHTTPError(resp.StatusCode(), resp.Body(), endpoint)
}

func mapHTTPError(status int, body []byte, endpoint string) error {
	apiErr := &APIError{Status: status, Endpoint: endpoint, Detail: extractDetail(body)}

	switch status {
	case http.StatusUnauthorized:
		apiErr.Kind = KindUnauthorized
	case http.StatusForbidden:
		apiErr.Kind = KindForbidden
	case http.StatusNotFound:
		apiErr.Kind = KindNotFound
	case http.StatusUnprocessableEntity:
		apiErr.Kind = KindValidation
		apiErr.Issues = extractIssues(body, apiErr.Detail)
	case http.StatusInternalServerError:
		apiErr.Kind = KindServerError
	default:
		apiErr.Kind = KindUnknownStatus
	}

	return apiErr
}

// extractDetail prefers the "detail" field, then "message", then the body
// itself.
func extractDetail(raw []byte) string {
	body := bytes.TrimSpace(raw)
	if len(body) == 0 {
		return unknownDetail
	}
	if !gjson.ValidBytes(body) {
		return string(body)
	}

	root := gjson.ParseBytes(body)
	if detail := root.Get("detail"); detail.Exists() {
		if detail.Type == gjson.String {
			return detail.String()
		}
		return detail.Raw
	}
	if message := root.Get("message"); message.Type == gjson.String {
		return message.String()
	}

	return string(body)
}

// extractIssues reads {"detail": [{"loc": [..., field], "msg": ...}]}. Bodies
// of any other shape collapse into one generic issue.
func extractIssues(raw []byte, detail string) []models.ValidationIssue {
	generic := []models.ValidationIssue{{Message: detail}}
	if detail == unknownDetail {
		generic[0].Message = invalidRequest
	}

	body := bytes.TrimSpace(raw)
	if !gjson.ValidBytes(body) {
		return generic
	}

	list := gjson.GetBytes(body, "detail")
	if !list.IsArray() {
		return generic
	}

	var issues []models.ValidationIssue
	for _, item := range list.Array() {
		if !item.IsObject() {
			return generic
		}

		issue := models.ValidationIssue{Field: unknownField, Message: unknownDetail}
		if loc := item.Get("loc").Array(); len(loc) > 0 {
			issue.Field = loc[len(loc)-1].String()
		}
		if msg := item.Get("msg"); msg.Exists() {
			issue.Message = msg.String()
		}
		issues = append(issues, issue)
	}

	if len(issues) == 0 {
		return generic
	}
	return issues
}

// mapTransportError classifies a failed exchange. Cancellation by the caller
// is returned as the bare context error so it is never mistaken for a
// failure of the API.
func mapTransportError(ctx context.Context, err error, endpoint string) error {
	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.Canceled) {
		return ctxErr
	}

	apiErr := &APIError{Kind: KindTransport, Endpoint: endpoint, Detail: err.Error(), Err: err}

	var (
		netErr net.Error
		opErr  *net.OpError
		dnsErr *net.DNSError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		apiErr.Kind = KindTimeout
	case errors.As(err, &dnsErr),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.As(err, &opErr) && opErr.Op == "dial":
		apiErr.Kind = KindConnectionFailure
	}

	return apiErr
}

package adapter

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns an upstream [SessionError] for a non-2xx response and
// nil otherwise.
func mapHTTPError(resp *resty.Response) *SessionError {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &SessionError{
		Kind:       KindUpstream,
		StatusCode: resp.StatusCode(),
		Reason:     reasonPhrase(resp.StatusCode(), resp.Status()),
		Body:       string(resp.Body()),
	}
}

// mapRequestError classifies an error returned before any response was
// observed. A done context always wins, so a cancelled dial is reported as
// cancellation rather than transport.
func mapRequestError(ctx context.Context, err error) *SessionError {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &SessionError{Kind: KindCancelled, Err: ctxErr}
	}
	return &SessionError{Kind: KindTransport, Err: err}
}

// reasonPhrase extracts the reason phrase from a status line such as
// "500 Internal Server Error", falling back to the canonical text.
func reasonPhrase(code int, status string) string {
	reason := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(status), strconv.Itoa(code)))
	if reason == "" {
		reason = http.StatusText(code)
	}
	return reason
}

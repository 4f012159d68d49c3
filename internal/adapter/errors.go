package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTransport reports that no HTTP response was obtained: connection
	// refused, DNS or TLS failure, client-level timeout.
	ErrTransport = errors.New("transport error")
	// ErrUpstream reports a non-2xx response from the gateway.
	ErrUpstream = errors.New("upstream error")
	// ErrParse reports a 2xx response whose body is not a single JSON value.
	ErrParse = errors.New("parse error")
	// ErrCancelled reports that the caller's context was cancelled or its
	// deadline passed before a response was observed.
	ErrCancelled = errors.New("request cancelled")
)

// ErrorKind classifies a [SessionError].
type ErrorKind int

const (
	KindTransport ErrorKind = iota + 1
	KindUpstream
	KindParse
	KindCancelled
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindUpstream:
		return "upstream"
	case KindParse:
		return "parse"
	case KindCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindTransport:
		return ErrTransport
	case KindUpstream:
		return ErrUpstream
	case KindParse:
		return ErrParse
	case KindCancelled:
		return ErrCancelled
	default:
		return nil
	}
}

// maxBodyInMessage bounds how much of a response body Error() repeats.
const maxBodyInMessage = 256

// SessionError is returned by [MerchantSessionClient.GetMerchantSession] for
// every failure.
type SessionError struct {
	Kind ErrorKind

	// StatusCode and Reason are set for upstream and parse errors.
	StatusCode int
	Reason     string

	// Body is the raw response body of upstream and parse errors.
	Body string

	// Err is the underlying cause, if any.
	Err error
}

func (e *SessionError) Error() string {
	var b strings.Builder
	b.WriteString("merchant session: ")
	if s := e.Kind.sentinel(); s != nil {
		b.WriteString(s.Error())
	} else {
		b.WriteString(e.Kind.String())
	}

	switch e.Kind {
	case KindUpstream:
		fmt.Fprintf(&b, ": %d %s", e.StatusCode, e.Reason)
	case KindParse:
		if e.Err != nil {
			fmt.Fprintf(&b, ": %v", e.Err)
		}
		fmt.Fprintf(&b, ": body %q", truncate(e.Body, maxBodyInMessage))
		return b.String()
	}

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is/As.
func (e *SessionError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

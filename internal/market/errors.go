package market

import (
    "errors"
    "fmt"
)

// Kind classifies a lookup failure.
type Kind int

const (
    KindUnknown Kind = iota
    // KindNetwork covers transport failures and timeouts.
    KindNetwork
    // KindAPI means the provider returned an explicit error status.
    KindAPI
    // KindNoData means the response was well-formed but carried no values.
    KindNoData
    // KindParse covers unexpected response structure.
    KindParse
    // KindValidation means the symbol failed local checks; no network call
    // was attempted.
    KindValidation
)

func (k Kind) String() string {
    switch k {
    case KindNetwork:
        return "network"
    case KindAPI:
        return "api"
    case KindNoData:
        return "no_data"
    case KindParse:
        return "parse"
    case KindValidation:
        return "validation"
    }
    return "unknown"
}

// Error is a lookup failure carrying its taxonomy kind and the symbol that
// triggered it. The message is surfaced verbatim to the user.
type Error struct {
    Kind    Kind
    Symbol  string
    Message string
    Err     error
}

func (e *Error) Error() string {
    if e.Err != nil {
        return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
    }
    return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func NewNetworkError(symbol string, err error) *Error {
    return &Error{Kind: KindNetwork, Symbol: symbol, Message: "network error", Err: err}
}

func NewAPIError(symbol, message string, err error) *Error {
    return &Error{Kind: KindAPI, Symbol: symbol, Message: message, Err: err}
}

func NewNoDataError(symbol string) *Error {
    return &Error{Kind: KindNoData, Symbol: symbol, Message: fmt.Sprintf("no data found for symbol %s", symbol)}
}

func NewParseError(symbol string, err error) *Error {
    return &Error{Kind: KindParse, Symbol: symbol, Message: "unexpected response structure", Err: err}
}

func NewValidationError(symbol, message string) *Error {
    return &Error{Kind: KindValidation, Symbol: symbol, Message: message}
}

// KindOf extracts the taxonomy kind from err, KindUnknown when err is not a
// *market.Error.
func KindOf(err error) Kind {
    var me *Error
    if errors.As(err, &me) {
        return me.Kind
    }
    return KindUnknown
}

package item

import "fmt"

// Code classifies item failures.
type Code int

const (
	// CodeInvalidArgument marks a construction that violated an invariant.
	CodeInvalidArgument Code = iota
	// CodeOutOfStock marks a sale attempted on an item that has no supply left.
	CodeOutOfStock
)

func (c Code) String() string {
	switch c {
	case CodeInvalidArgument:
		return "INVALID_ARGUMENT"
	case CodeOutOfStock:
		return "OUT_OF_STOCK"
	default:
		return "UNKNOWN"
	}
}

// Error is returned by constructors and by SellOne.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error carrying the same code, so callers can write
// errors.Is(err, item.ErrOutOfStock).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is; any *Error with the same Code matches.
var (
	ErrInvalidArgument = &Error{Code: CodeInvalidArgument, Message: "invalid argument"}
	ErrOutOfStock      = &Error{Code: CodeOutOfStock, Message: "item out of stock"}
)

func newInvalidArgument(format string, args ...interface{}) *Error {
	return &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func newOutOfStock(format string, args ...interface{}) *Error {
	return &Error{Code: CodeOutOfStock, Message: fmt.Sprintf(format, args...)}
}

package wallet

import "github.com/pkg/errors"

var (
	// ErrNoProvider means no wallet provider is configured
	ErrNoProvider = errors.New("no wallet provider detected")
	// ErrConnection covers a rejected or failed chain switch or account request
	ErrConnection = errors.New("wallet connection failed")
	// ErrTransaction covers a rejected or failed balance query or transfer
	ErrTransaction = errors.New("wallet transaction failed")
)

// Error is a provider failure classified as ErrConnection or ErrTransaction
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the error kind
func (e *Error) Is(target error) bool { return target == e.Kind }

func connectionError(op string, err error) error {
	return &Error{Kind: ErrConnection, Op: op, Err: errors.Wrap(err, op)}
}

func transactionError(op string, err error) error {
	return &Error{Kind: ErrTransaction, Op: op, Err: errors.Wrap(err, op)}
}

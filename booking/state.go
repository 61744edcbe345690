package booking

import (
	"strings"
	"time"

	"handylink-tui/helpers"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Status is the wallet connection status
type Status int

const (
	Disconnected Status = iota
	Connecting
	Connected
	ConnectFailed
)

// Connection is the wallet connection as the UI sees it
type Connection struct {
	Status  Status
	Account string // full address as returned by the provider
	Message string // failure message when Status is ConnectFailed
}

// Display returns the status line for the wallet section
func (c Connection) Display() string {
	switch c.Status {
	case Connecting:
		return "Connecting..."
	case Connected:
		return "Connected: " + helpers.ShortenAddr(c.Account)
	case ConnectFailed:
		return c.Message
	}
	return ""
}

// Phase is the booking flow phase
type Phase int

const (
	NoneSelected Phase = iota
	Selected
	Processing
	Confirmed
	Failed
)

func (p Phase) String() string {
	switch p {
	case NoneSelected:
		return "none-selected"
	case Selected:
		return "selected"
	case Processing:
		return "processing"
	case Confirmed:
		return "confirmed"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Booking is the snapshot taken at submit time. It is never modified by
// later form edits.
type Booking struct {
	Reference   string
	Service     Service
	Customer    CustomerInfo
	Account     string
	TxHash      string
	SubmittedAt time.Time
	ConfirmedAt time.Time
}

// Ticket is handed to the submit command. Its Token identifies the
// submission; results carrying an older token are dropped.
type Ticket struct {
	Token   uint64
	Booking Booking
}

// State holds everything the booking page renders. All mutation goes
// through the methods below.
type State struct {
	service    Service
	hasService bool
	customer   CustomerInfo
	conn       Connection
	phase      Phase
	errMsg     string

	pending   Booking
	confirmed Booking

	submission uint64
	connection uint64
}

// NewState returns an empty state with nothing selected
func NewState() State {
	return State{phase: NoneSelected}
}

// Service returns the active service, if any
func (s *State) Service() (Service, bool) { return s.service, s.hasService }

// Customer returns the current form values
func (s *State) Customer() CustomerInfo { return s.customer }

// Connection returns the wallet connection
func (s *State) Connection() Connection { return s.conn }

// Phase returns the booking phase
func (s *State) Phase() Phase { return s.phase }

// Err returns the inline error message, empty when there is none
func (s *State) Err() string { return s.errMsg }

// Processing reports whether a submission is in flight
func (s *State) Processing() bool { return s.phase == Processing }

// Confirmed returns the confirmed booking
func (s *State) Confirmed() (Booking, bool) {
	return s.confirmed, s.phase == Confirmed
}

// FormVisible reports whether the booking form should be shown
func (s *State) FormVisible() bool {
	return s.hasService && s.conn.Status == Connected && s.phase != Confirmed
}

// SelectService makes svc the active service and clears any previous
// confirmation, processing flag and error. An in-flight submission is
// abandoned.
func (s *State) SelectService(svc Service) {
	s.service = svc
	s.hasService = true
	s.phase = Selected
	s.errMsg = ""
	s.confirmed = Booking{}
	s.pending = Booking{}
	s.submission++
}

// SetField updates a single customer field
func (s *State) SetField(f Field, value string) {
	s.customer = s.customer.With(f, value)
}

// Validate checks the preconditions for a submission
func (s *State) Validate() error {
	if missing := s.customer.Missing(); len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, f := range missing {
			names = append(names, strings.ToLower(f.String()))
		}
		return errors.Wrapf(ErrValidation, "missing %s", strings.Join(names, ", "))
	}
	if s.conn.Status != Connected || s.conn.Account == "" {
		return errors.Wrap(ErrValidation, "no wallet connected")
	}
	return nil
}

// BeginSubmit enters Processing and returns the ticket for the submit
// command. Nothing changes when an error is returned.
func (s *State) BeginSubmit(now time.Time) (Ticket, error) {
	if s.phase == Processing {
		return Ticket{}, errors.New("a booking is already processing")
	}
	if !s.hasService {
		return Ticket{}, errors.Wrap(ErrValidation, "no service selected")
	}
	if err := s.Validate(); err != nil {
		return Ticket{}, err
	}

	s.submission++
	s.phase = Processing
	s.errMsg = ""
	s.pending = Booking{
		Reference:   uuid.NewString(),
		Service:     s.service,
		Customer:    s.customer,
		Account:     s.conn.Account,
		SubmittedAt: now,
	}
	return Ticket{Token: s.submission, Booking: s.pending}, nil
}

// Confirm completes the submission identified by token. It returns false
// when the token is stale and nothing was applied.
func (s *State) Confirm(token uint64, txHash string, now time.Time) bool {
	if token != s.submission || s.phase != Processing {
		return false
	}
	b := s.pending
	b.TxHash = txHash
	b.ConfirmedAt = now
	s.confirmed = b
	s.pending = Booking{}
	s.phase = Confirmed
	return true
}

// Fail ends the submission identified by token with an inline error. It
// returns false when the token is stale.
func (s *State) Fail(token uint64, err error) bool {
	if token != s.submission || s.phase != Processing {
		return false
	}
	var insufficient *InsufficientBalanceError
	if errors.As(err, &insufficient) {
		s.errMsg = insufficient.Error()
	} else {
		s.errMsg = TransactionFailedMessage
	}
	s.pending = Booking{}
	s.phase = Failed
	return true
}

// BeginConnect starts a wallet connection attempt. ok is false when a
// connection is already in progress or established.
func (s *State) BeginConnect() (token uint64, ok bool) {
	if s.conn.Status == Connecting || s.conn.Status == Connected {
		return 0, false
	}
	s.connection++
	s.conn = Connection{Status: Connecting}
	return s.connection, true
}

// ConnectSucceeded records the connected account
func (s *State) ConnectSucceeded(token uint64, account string) bool {
	if token != s.connection || s.conn.Status != Connecting {
		return false
	}
	s.conn = Connection{Status: Connected, Account: account}
	return true
}

// ConnectFailed records a failed attempt
func (s *State) ConnectFailed(token uint64, _ error) bool {
	if token != s.connection || s.conn.Status != Connecting {
		return false
	}
	s.conn = Connection{Status: ConnectFailed, Message: ConnectFailedMessage}
	return true
}

// Disconnect drops the wallet connection and abandons any pending
// connect or submit result
func (s *State) Disconnect() {
	s.connection++
	s.conn = Connection{Status: Disconnected}
	if s.phase == Processing {
		s.submission++
		s.pending = Booking{}
		s.phase = Selected
	}
}

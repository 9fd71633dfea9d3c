// Package contact holds the contact form fields and the submit button state
// machine: idle -> sending -> sent|error -> idle.
package contact

import (
	"strings"

	"github.com/cockroachdb/errors"

	"cinematch/internal/domain"
)

// Status is the state of the submit button
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSent
	StatusError
)

// Label returns the button text for the status
func (s Status) Label() string {
	switch s {
	case StatusSending:
		return "Sending..."
	case StatusSent:
		return "Message Sent!"
	case StatusError:
		return "Error!"
	default:
		return "Send Message"
	}
}

func (s Status) String() string {
	switch s {
	case StatusSending:
		return "sending"
	case StatusSent:
		return "sent"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// User-facing messages
const (
	MsgMissingFields = "Please fill in all fields"
	MsgSendFailed    = "Failed to send message. Please try again."
)

var (
	// ErrIncomplete is returned by Submit when a field is empty
	ErrIncomplete = errors.New(MsgMissingFields)
	// ErrBusy is returned by Submit unless the form is idle
	ErrBusy = errors.New("a message is already being sent")
)

// Field identifies one input of the form
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
)

// Fields lists the inputs in tab order
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	default:
		return "Message"
	}
}

// Form is the contact form state
type Form struct {
	values map[Field]string
	status Status
	alert  string
	token  uint64
}

// NewForm returns an empty idle form
func NewForm() *Form {
	return &Form{values: make(map[Field]string)}
}

// Set stores a field value
func (f *Form) Set(field Field, value string) {
	f.values[field] = value
}

// Value returns a field value
func (f *Form) Value(field Field) string {
	return f.values[field]
}

// Message builds the payload from the current values
func (f *Form) Message() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    f.values[FieldName],
		Email:   f.values[FieldEmail],
		Message: f.values[FieldMessage],
	}
}

// Status returns the button state
func (f *Form) Status() Status {
	return f.status
}

// Alert returns the pending blocking alert, if any
func (f *Form) Alert() string {
	return f.alert
}

// DismissAlert clears the alert
func (f *Form) DismissAlert() {
	f.alert = ""
}

// Submit validates the fields and moves to sending. Whitespace-only fields count as empty.
func (f *Form) Submit() (domain.ContactMessage, error) {
	if f.status != StatusIdle {
		return domain.ContactMessage{}, ErrBusy
	}
	msg := f.Message()
	trimmed := domain.ContactMessage{
		Name:    strings.TrimSpace(msg.Name),
		Email:   strings.TrimSpace(msg.Email),
		Message: strings.TrimSpace(msg.Message),
	}
	if !trimmed.Complete() {
		f.alert = MsgMissingFields
		return domain.ContactMessage{}, ErrIncomplete
	}
	f.status = StatusSending
	return msg, nil
}

// Complete records the server outcome and returns the token the delayed
// reset must present. errMsg is the server's error text, if any.
func (f *Form) Complete(success bool, errMsg string) uint64 {
	f.token++
	if success {
		f.status = StatusSent
		return f.token
	}
	f.status = StatusError
	if errMsg == "" {
		errMsg = MsgSendFailed
	}
	f.alert = errMsg
	return f.token
}

// Reset returns the button to idle after the delay. A successful send also
// clears the fields. Stale tokens are ignored.
func (f *Form) Reset(token uint64) bool {
	if token != f.token || (f.status != StatusSent && f.status != StatusError) {
		return false
	}
	if f.status == StatusSent {
		f.values = make(map[Field]string)
	}
	f.status = StatusIdle
	return true
}

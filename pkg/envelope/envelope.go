// Package envelope models the Slack Web API response wrapper and the
// payload shapes this client reads out of it.
package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// APIError carries the error field of a failed envelope verbatim.
type APIError struct {
	Reason string
}

func (e *APIError) Error() string {
	return e.Reason
}

// Envelope is a parsed API response. Payload keys vary by method, so
// everything beyond ok/error is kept raw and interpreted on demand: the
// accessor for each payload kind reports whether its key was present,
// and absent keys are simply skipped rather than treated as errors.
type Envelope struct {
	Ok    bool
	Error string

	raw    json.RawMessage
	fields map[string]json.RawMessage
}

// Parse decodes a raw API response body into an Envelope.
func Parse(data []byte) (*Envelope, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	env := &Envelope{
		raw:    append(json.RawMessage(nil), data...),
		fields: fields,
	}
	if v, ok := fields["ok"]; ok {
		_ = json.Unmarshal(v, &env.Ok)
	}
	if v, ok := fields["error"]; ok {
		_ = json.Unmarshal(v, &env.Error)
	}
	return env, nil
}

// Failure builds a synthetic failed envelope. The transport layer uses it
// to report faults in the same shape as API-level errors.
func Failure(reason string) *Envelope {
	raw, _ := json.Marshal(map[string]any{"ok": false, "error": reason})
	env, _ := Parse(raw)
	return env
}

// Err returns the failure carried by the envelope, if any. Callers must
// check it before reading payload: a failed envelope's payload keys are
// absent or untrustworthy.
func (e *Envelope) Err() error {
	if e.Ok {
		return nil
	}
	reason := e.Error
	if reason == "" {
		reason = "unknown error"
	}
	return &APIError{Reason: reason}
}

// JSON renders the envelope as indented JSON, byte-for-byte from the raw
// response, so no field is lost and non-ASCII text stays unescaped.
func (e *Envelope) JSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, e.raw, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HistoryMessages returns the flat messages array of a history or
// thread-replies response, in API order: reverse-chronological for
// history, chronological for replies. The order is never touched here.
// A search response, whose messages key is an object, reports false.
func (e *Envelope) HistoryMessages() ([]Message, bool) {
	raw, ok := e.payload("messages")
	if !ok {
		return nil, false
	}
	var msgs []Message
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, false
	}
	return msgs, true
}

// SearchMatches returns the matches nested inside a search response's
// messages object. A plain history array reports false.
func (e *Envelope) SearchMatches() ([]Message, bool) {
	raw, ok := e.payload("messages")
	if !ok {
		return nil, false
	}
	var wrap struct {
		Matches []Message `json:"matches"`
	}
	if err := json.Unmarshal(raw, &wrap); err != nil {
		return nil, false
	}
	return wrap.Matches, true
}

// Channels returns the channel list of a conversations.list response.
func (e *Envelope) Channels() ([]Channel, bool) {
	raw, ok := e.payload("channels")
	if !ok {
		return nil, false
	}
	var channels []Channel
	if err := json.Unmarshal(raw, &channels); err != nil {
		return nil, false
	}
	return channels, true
}

// Members returns the user directory page of a users.list response.
func (e *Envelope) Members() ([]User, bool) {
	raw, ok := e.payload("members")
	if !ok {
		return nil, false
	}
	var users []User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, false
	}
	return users, true
}

// UserInfo returns the single user record of a users.info response.
func (e *Envelope) UserInfo() (*User, bool) {
	raw, ok := e.payload("user")
	if !ok {
		return nil, false
	}
	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, false
	}
	return &user, true
}

// ChannelInfo returns the single channel record of a conversations.info
// response.
func (e *Envelope) ChannelInfo() (*Channel, bool) {
	raw, ok := e.payload("channel")
	if !ok {
		return nil, false
	}
	var channel Channel
	if err := json.Unmarshal(raw, &channel); err != nil {
		return nil, false
	}
	return &channel, true
}

func (e *Envelope) payload(key string) (json.RawMessage, bool) {
	if !e.Ok {
		return nil, false
	}
	raw, ok := e.fields[key]
	return raw, ok
}

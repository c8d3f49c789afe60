// Package content decodes campaign message payloads into one typed value per
// message type. Payloads are validated once, when a campaign is written.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"campaign-server/internal/store"
)

var (
	ErrInvalidContent     = errors.New("invalid message content")
	ErrUnknownMessageType = errors.New("unknown message type")
)

// Content is implemented by every message payload variant
type Content interface {
	Type() string
	validate() error
}

type Text struct {
	Text       string   `json:"text"`
	Variations []string `json:"variations,omitempty"`
}

// Media covers image, video, audio and document messages
type Media struct {
	Kind     string `json:"-"`
	URL      string `json:"url"`
	Caption  string `json:"caption,omitempty"`
	FileName string `json:"fileName,omitempty"`
}

// Step is one message inside a sequence
type Step struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content"`

	decoded Content
}

// Decoded returns the typed payload of the step
func (s Step) Decoded() Content {
	return s.decoded
}

type Sequence struct {
	Messages []Step `json:"messages"`
}

// AIPrompt is the payload of openai and groq messages. The text is generated per contact.
type AIPrompt struct {
	Kind         string   `json:"-"`
	Prompt       string   `json:"prompt"`
	SystemPrompt string   `json:"systemPrompt,omitempty"`
	Model        string   `json:"model,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	MaxTokens    int      `json:"maxTokens,omitempty"`
}

type Wait struct {
	Seconds int `json:"seconds"`
}

func (Text) Type() string       { return store.MessageTypeText }
func (m Media) Type() string    { return m.Kind }
func (Sequence) Type() string   { return store.MessageTypeSequence }
func (p AIPrompt) Type() string { return p.Kind }
func (Wait) Type() string       { return store.MessageTypeWait }

func (t Text) validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("text is required")
	}
	for i, v := range t.Variations {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("variation %d is empty", i)
		}
	}
	return nil
}

func (m Media) validate() error {
	if strings.TrimSpace(m.URL) == "" {
		return errors.New("url is required")
	}
	return nil
}

func (s Sequence) validate() error {
	if len(s.Messages) == 0 {
		return errors.New("a sequence needs at least one message")
	}
	return nil
}

func (p AIPrompt) validate() error {
	if strings.TrimSpace(p.Prompt) == "" {
		return errors.New("prompt is required")
	}
	if p.Temperature != nil && (*p.Temperature < 0 || *p.Temperature > 2) {
		return errors.New("temperature must be between 0 and 2")
	}
	if p.MaxTokens < 0 {
		return errors.New("maxTokens must not be negative")
	}
	return nil
}

func (w Wait) validate() error {
	if w.Seconds <= 0 {
		return errors.New("seconds must be positive")
	}
	return nil
}

// IsMediaType reports whether messageType carries a media URL
func IsMediaType(messageType string) bool {
	switch messageType {
	case store.MessageTypeImage, store.MessageTypeVideo, store.MessageTypeAudio, store.MessageTypeDocument:
		return true
	}
	return false
}

// IsAIType reports whether messageType is generated by a language model
func IsAIType(messageType string) bool {
	return messageType == store.MessageTypeOpenAI || messageType == store.MessageTypeGroq
}

// Decode parses raw as the payload of messageType. Every failure wraps ErrInvalidContent,
// except an unsupported type which wraps ErrUnknownMessageType.
func Decode(messageType string, raw []byte) (Content, error) {
	return decode(messageType, raw, false)
}

func decode(messageType string, raw []byte, nested bool) (Content, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: empty payload for %s", ErrInvalidContent, messageType)
	}

	var c Content
	switch {
	case messageType == store.MessageTypeText:
		var t Text
		if err := strictUnmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
		c = t
	case IsMediaType(messageType):
		var m Media
		if err := strictUnmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
		m.Kind = messageType
		c = m
	case messageType == store.MessageTypeSequence:
		if nested {
			return nil, fmt.Errorf("%w: sequences cannot be nested", ErrInvalidContent)
		}
		var s Sequence
		if err := strictUnmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
		for i := range s.Messages {
			step, err := decode(s.Messages[i].Type, s.Messages[i].Content, true)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			s.Messages[i].decoded = step
		}
		c = s
	case IsAIType(messageType):
		var p AIPrompt
		if err := strictUnmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
		p.Kind = messageType
		c = p
	case messageType == store.MessageTypeWait:
		var w Wait
		if err := strictUnmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
		c = w
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, messageType)
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidContent, messageType, err)
	}
	return c, nil
}

func strictUnmarshal(raw []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Encode renders c back to the JSON stored in message_content
func Encode(c Content) (store.RawJSON, error) {
	if seq, ok := c.(Sequence); ok {
		for i := range seq.Messages {
			if seq.Messages[i].decoded == nil {
				continue
			}
			b, err := json.Marshal(seq.Messages[i].decoded)
			if err != nil {
				return nil, fmt.Errorf("failed to encode step %d: %w", i, err)
			}
			seq.Messages[i].Type = seq.Messages[i].decoded.Type()
			seq.Messages[i].Content = b
		}
		c = seq
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message content: %w", err)
	}
	return store.RawJSON(b), nil
}

// DecodeLenient parses a stored payload for read paths. A malformed payload
// yields an empty JSON object instead of an error.
func DecodeLenient(raw []byte) (json.RawMessage, bool) {
	if len(raw) == 0 || !json.Valid(raw) {
		return json.RawMessage(`{}`), false
	}
	return json.RawMessage(raw), true
}

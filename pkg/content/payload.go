package content

import (
	"bytes"
	"encoding/json"
)

// Payload is one language's worth of page content.
// List fields are never nil after decoding: absent, null or non-array values
// become empty slices.
type Payload struct {
	Title           string   `json:"name"`
	Subtitle        string   `json:"subtitle"`
	SkillsTitle     string   `json:"skillsTitle"`
	Skills          []string `json:"skills"`
	AboutTitle      string   `json:"aboutTitle"`
	AboutParagraphs []string `json:"aboutText"`
}

type rawPayload struct {
	Title           json.RawMessage `json:"name"`
	Subtitle        json.RawMessage `json:"subtitle"`
	SkillsTitle     json.RawMessage `json:"skillsTitle"`
	Skills          json.RawMessage `json:"skills"`
	AboutTitle      json.RawMessage `json:"aboutTitle"`
	AboutParagraphs json.RawMessage `json:"aboutText"`
}

// UnmarshalJSON decodes leniently: the top level must be an object, but
// individual fields of the wrong shape degrade to empty values.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var raw rawPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Payload{
		Title:           text(raw.Title),
		Subtitle:        text(raw.Subtitle),
		SkillsTitle:     text(raw.SkillsTitle),
		Skills:          list(raw.Skills),
		AboutTitle:      text(raw.AboutTitle),
		AboutParagraphs: list(raw.AboutParagraphs),
	}
	return nil
}

// Normalized returns a copy with nil lists replaced by empty ones.
func (p Payload) Normalized() Payload {
	p.Skills = nonNil(p.Skills)
	p.AboutParagraphs = nonNil(p.AboutParagraphs)
	return p
}

// EmptyFallback is shown when content cannot be fetched for transport reasons.
// It is schema-valid with empty lists so the page still renders its sections.
func EmptyFallback() Payload {
	return Payload{
		Title:           "Catherine Petrenko",
		Subtitle:        "System-thinking PM",
		SkillsTitle:     "Skills",
		Skills:          []string{},
		AboutTitle:      "About",
		AboutParagraphs: []string{},
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// text renders a JSON scalar as text; objects, arrays and null become "".
func text(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		return ""
	case '{', '[', 'n':
		return ""
	default:
		// numbers and booleans keep their literal form
		return string(raw)
	}
}

func list(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] == '{' || item[0] == '[' {
			continue
		}
		out = append(out, text(item))
	}
	return out
}

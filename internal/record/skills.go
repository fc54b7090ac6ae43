package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SkillCategory is one named group of skills.
type SkillCategory struct {
	Name   string
	Skills []string
}

// Skills accepts two JSON shapes: a flat array of strings, or an object
// mapping category name to an array of strings. The object form keeps its
// key order, which is why decoding walks the token stream instead of
// unmarshalling into a map.
type Skills struct {
	List       []string
	Categories []SkillCategory
}

// UnmarshalJSON decodes either shape. Null decodes to the zero value.
func (s *Skills) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = Skills{}
		return nil
	}

	switch trimmed[0] {
	case '[':
		var list []string
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("skills list: %w", err)
		}
		*s = Skills{List: list}
		return nil
	case '{':
		cats, err := decodeOrderedCategories(trimmed)
		if err != nil {
			return fmt.Errorf("skills categories: %w", err)
		}
		*s = Skills{Categories: cats}
		return nil
	default:
		return fmt.Errorf("skills: expected array or object, got %s", string(trimmed[0]))
	}
}

func decodeOrderedCategories(data []byte) ([]SkillCategory, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	// Opening brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var cats []SkillCategory
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key token %v", keyTok)
		}
		var list []string
		if err := dec.Decode(&list); err != nil {
			return nil, fmt.Errorf("category %q: %w", key, err)
		}
		cats = append(cats, SkillCategory{Name: key, Skills: list})
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return cats, nil
}

// MarshalJSON re-emits the shape that was decoded.
func (s Skills) MarshalJSON() ([]byte, error) {
	if len(s.Categories) > 0 {
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, c := range s.Categories {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(c.Name)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(c.Skills)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	if s.List == nil {
		return []byte("null"), nil
	}
	return json.Marshal(s.List)
}

// IsZero reports whether no skills were provided in either shape.
func (s Skills) IsZero() bool {
	return len(s.List) == 0 && len(s.Categories) == 0
}

// Categorized reports whether the object shape was used.
func (s Skills) Categorized() bool {
	return len(s.Categories) > 0
}

// Flatten returns every skill as a single list, category order preserved.
func (s Skills) Flatten() []string {
	if !s.Categorized() {
		return s.List
	}
	var out []string
	for _, c := range s.Categories {
		out = append(out, c.Skills...)
	}
	return out
}

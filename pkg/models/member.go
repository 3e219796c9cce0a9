package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Roster struct {
	Members []Member `json:"members" yaml:"members"`
}

// Member is one roster entry. Social maps a platform key (x, linkedin,
// threads, facebook, wh, email) to a link.
type Member struct {
	ID     ID                `json:"id" yaml:"id"`
	Name   string            `json:"name" yaml:"name"`
	Role   string            `json:"role" yaml:"role"`
	Photo  string            `json:"photo" yaml:"photo"`
	Bio    string            `json:"bio" yaml:"bio"`
	URL    string            `json:"url" yaml:"url"`
	Social map[string]string `json:"social" yaml:"social"`
}

// ID is a member identifier. Rosters sometimes carry numeric ids; they are
// kept in their string form so they compare against front matter author ids.
type ID string

// UnmarshalJSON keeps numbers in their literal form; objects, arrays and
// null give an empty id so the member is skipped rather than the roster.
func (id *ID) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*id = ID(scalarString(raw))
	return nil
}

func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		*id = ""
		return nil
	}
	*id = ID(strings.TrimSpace(node.Value))
	return nil
}

func (id ID) String() string { return string(id) }

func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	case bool:
		return fmt.Sprint(val)
	default:
		return ""
	}
}

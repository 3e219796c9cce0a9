package services

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

const (
	yamlDelimiter = "---"
	tomlDelimiter = "+++"

	authorIDsKey = "author-ids"
)

// frontMatterBlock returns the lines between the opening marker on the first
// line and the next line starting with the same marker. closed is false when
// the block runs to the end of the input.
func frontMatterBlock(text string) (lines []string, delim string, closed bool) {
	all := strings.Split(text, "\n")
	first := strings.TrimSpace(strings.TrimPrefix(all[0], "\ufeff"))
	for _, d := range []string{yamlDelimiter, tomlDelimiter} {
		if strings.HasPrefix(first, d) {
			delim = d
			break
		}
	}
	if delim == "" {
		return nil, "", false
	}
	for i := 1; i < len(all); i++ {
		if strings.HasPrefix(strings.TrimSpace(all[i]), delim) {
			return all[1:i], delim, true
		}
	}
	return all[1:], delim, false
}

func separatorFor(delim string) string {
	if delim == tomlDelimiter {
		return "="
	}
	return ":"
}

// ReadFrontMatter extracts flat key/value pairs from the header block of a
// content file. Content without a header block, or that is not valid UTF-8,
// yields an empty map.
func ReadFrontMatter(content []byte) map[string]string {
	if !utf8.Valid(content) {
		return map[string]string{}
	}
	lines, delim, _ := frontMatterBlock(string(content))
	if delim == "" {
		return map[string]string{}
	}
	return parseKeyValueLines(lines, separatorFor(delim))
}

// ReadFrontMatterFile is ReadFrontMatter on a file; unreadable files yield an
// empty map.
func ReadFrontMatterFile(path string) map[string]string {
	content, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("front matter unreadable", "path", path, "error", err)
		return map[string]string{}
	}
	return ReadFrontMatter(content)
}

func parseKeyValueLines(lines []string, sep string) map[string]string {
	fm := make(map[string]string)
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, found := strings.Cut(line, sep)
		if !found {
			continue
		}
		fm[strings.TrimSpace(key)] = unquote(val)
	}
	return fm
}

func unquote(v string) string {
	v = strings.Trim(strings.TrimSpace(v), `"`)
	return strings.Trim(v, "'")
}

// ParseStructuredFrontMatter decodes a closed YAML or TOML header block,
// keeping nested lists. When the decoder rejects the block, only the
// author-ids line is recovered.
func ParseStructuredFrontMatter(content []byte) map[string]any {
	lines, delim, closed := frontMatterBlock(string(content))
	if delim == "" || !closed {
		return map[string]any{}
	}

	var fm map[string]any
	if _, err := frontmatter.Parse(bytes.NewReader(content), &fm); err != nil {
		slog.Debug("structured front matter rejected, falling back to author-ids line", "error", err)
		return map[string]any{authorIDsKey: authorIDsFromLines(lines, separatorFor(delim))}
	}

	return stringKeys(fm).(map[string]any)
}

func authorIDsFromLines(lines []string, sep string) []string {
	var ids []string
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, authorIDsKey) {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(line, authorIDsKey))
		if !strings.HasPrefix(rest, sep) {
			continue
		}
		ids = SplitIDList(rest[len(sep):])
	}
	return ids
}

// SplitIDList splits an inline list such as `[a, "b", 'c']` into its items.
func SplitIDList(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		id := strings.Trim(part, "[],'\" \t")
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// AuthorIDs normalizes an author-ids value to a list of strings. A single
// scalar counts as a one-element list.
func AuthorIDs(v any) []string {
	var items []any
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		for _, s := range val {
			items = append(items, s)
		}
	case []any:
		items = val
	default:
		items = []any{val}
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if s := StringValue(item); s != "" {
			ids = append(ids, s)
		}
	}
	return ids
}

// StringValue renders a decoded front matter value as a trimmed string.
// Decoded timestamps come back in ISO form.
func StringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format("2006-01-02T15:04:05")
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

// stringKeys rewrites the map[any]any values yaml.v2 decodes nested
// mappings into as map[string]any, at any depth.
func stringKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = stringKeys(inner)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[fmt.Sprint(k)] = stringKeys(inner)
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, inner := range val {
			out = append(out, stringKeys(inner))
		}
		return out
	}
	return v
}

// ConstructFileContent renders header as a YAML block followed by body.
func ConstructFileContent(header any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(yamlDelimiter + "\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(header); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteString(yamlDelimiter + "\n")

	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
	}
	return buf.Bytes(), nil
}

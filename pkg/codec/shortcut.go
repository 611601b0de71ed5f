package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Shortcut is a saved cleaning routine.
type Shortcut struct {
	ID      int
	Name    string
	Running bool
}

type wireShortcut struct {
	ID    flexInt `json:"id"`
	Name  string  `json:"name"`
	State flexInt `json:"state"`
}

// ParseShortcuts decodes the shortcut list. Names are base64 on the wire.
func ParseShortcuts(s string) ([]Shortcut, error) {
	if s == "" {
		return nil, nil
	}
	var raw []wireShortcut
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("parse shortcuts: %w", err)
	}
	out := make([]Shortcut, 0, len(raw))
	for _, r := range raw {
		name, err := base64.StdEncoding.DecodeString(r.Name)
		if err != nil {
			return nil, fmt.Errorf("shortcut %d: name: %w", r.ID, err)
		}
		out = append(out, Shortcut{ID: int(r.ID), Name: string(name), Running: r.State != 0})
	}
	return out, nil
}

// FormatShortcuts encodes a shortcut list.
func FormatShortcuts(list []Shortcut) (string, error) {
	type out struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		State string `json:"state"`
	}
	items := make([]out, len(list))
	for i, sc := range list {
		state := "0"
		if sc.Running {
			state = "1"
		}
		items[i] = out{ID: sc.ID, Name: base64.StdEncoding.EncodeToString([]byte(sc.Name)), State: state}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Package export models an exported chat-conversation file and extracts
// the user-authored message texts from it.
//
// An export is a JSON array of conversations. Each conversation carries a
// "mapping" object keyed by node ID; a node may hold a message whose
// content is a list of parts, the first of which is the message text.
// Missing or unexpected fields never contribute a message; they are
// skipped rather than treated as errors.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Author identifies who wrote a message.
type Author struct {
	Role string `json:"role"`
}

// Content holds the payload of a message. Parts is decoded loosely
// because exports mix plain strings with structured attachments; only
// string parts are analyzable text.
type Content struct {
	ContentType string `json:"content_type"`
	Parts       []any  `json:"parts"`
}

// Message is one utterance in a conversation.
type Message struct {
	ID      string  `json:"id"`
	Author  Author  `json:"author"`
	Content Content `json:"content"`
}

// Node is one entry in a conversation's mapping.
type Node struct {
	ID       string   `json:"id"`
	Message  *Message `json:"message"`
	Parent   string   `json:"parent"`
	Children []string `json:"children"`
}

// Conversation is a tree of nodes keyed by node ID. Traversal order over
// the mapping follows the order keys appear in the file, which is not
// guaranteed to be conversational chronology.
type Conversation struct {
	Title   string      `json:"title"`
	Mapping NodeMapping `json:"mapping"`
}

// NodeMapping is a node lookup that preserves the key order of the JSON
// object it was decoded from. Go maps discard that order, so the decoder
// records it explicitly.
type NodeMapping struct {
	order []string
	nodes map[string]Node
}

// NewNodeMapping builds a mapping from nodes in the given order. Intended
// for constructing fixtures; decoding normally populates mappings.
func NewNodeMapping(ids []string, nodes map[string]Node) NodeMapping {
	m := NodeMapping{nodes: make(map[string]Node, len(ids))}
	for _, id := range ids {
		node, ok := nodes[id]
		if !ok {
			continue
		}
		m.order = append(m.order, id)
		m.nodes[id] = node
	}
	return m
}

// Keys returns node IDs in file order.
func (m *NodeMapping) Keys() []string {
	return m.order
}

// Node looks up a node by ID.
func (m *NodeMapping) Node(id string) (Node, bool) {
	n, ok := m.nodes[id]
	return n, ok
}

// Len returns the number of nodes.
func (m *NodeMapping) Len() int {
	return len(m.order)
}

// UnmarshalJSON decodes the mapping object token by token so that key
// order survives. A JSON null decodes to an empty mapping.
func (m *NodeMapping) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("mapping: expected object, got %v", tok)
	}

	m.nodes = make(map[string]Node)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("mapping: expected string key, got %v", keyTok)
		}

		var node Node
		if err := dec.Decode(&node); err != nil {
			return fmt.Errorf("mapping node %q: %w", key, err)
		}
		m.order = append(m.order, key)
		m.nodes[key] = node
	}

	_, err = dec.Token() // closing brace
	return err
}

// Load reads and parses a conversation export file. A malformed file is a
// fatal parse error for the caller; there is no partial recovery.
func Load(path string) ([]Conversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var conversations []Conversation
	if err := json.Unmarshal(data, &conversations); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return conversations, nil
}

// UserMessages returns the text of every user-authored message across all
// conversations, as one flat sequence in mapping order. A node contributes
// only when it holds a message with role "user" whose first content part
// is a string.
func UserMessages(conversations []Conversation) []string {
	var messages []string
	for _, conv := range conversations {
		for _, id := range conv.Mapping.Keys() {
			node, ok := conv.Mapping.Node(id)
			if !ok {
				continue
			}
			msg := node.Message
			if msg == nil || msg.Author.Role != "user" {
				continue
			}
			if len(msg.Content.Parts) == 0 {
				continue
			}
			if text, ok := msg.Content.Parts[0].(string); ok {
				messages = append(messages, text)
			}
		}
	}
	return messages
}

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EmojiSettings are the picker options the UI writes back.
type EmojiSettings struct {
	DefaultSkinTone string
	RowWidth        int
}

// SaveEmojiSettings updates emoji.default_skin_tone and emoji.row_width in
// the config file. Comments and every other key are preserved by editing the
// yaml.Node tree instead of re-marshaling the struct.
func SaveEmojiSettings(configPath string, s EmojiSettings) error {
	doc, err := readDocument(configPath)
	if err != nil {
		return err
	}

	root := doc.Content[0]
	if s.DefaultSkinTone != "" {
		setScalar(root, []string{"emoji", "default_skin_tone"}, s.DefaultSkinTone, "!!str")
	}
	if s.RowWidth > 0 {
		setScalar(root, []string{"emoji", "row_width"}, strconv.Itoa(s.RowWidth), "!!int")
	}

	return writeDocument(configPath, doc)
}

func readDocument(configPath string) (*yaml.Node, error) {
	data, err := os.ReadFile(configPath) //nolint:gosec // G304: config path is chosen by the user
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
		}
	}
	if doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing config: top level must be a mapping")
	}
	return &doc, nil
}

// setScalar walks or creates the mapping path and sets the final key.
func setScalar(m *yaml.Node, path []string, value, tag string) {
	for i, key := range path {
		last := i == len(path)-1
		var child *yaml.Node
		for j := 0; j+1 < len(m.Content); j += 2 {
			if m.Content[j].Value == key {
				child = m.Content[j+1]
				break
			}
		}

		if last {
			if child != nil && child.Kind == yaml.ScalarNode {
				child.Value = value
				child.Tag = tag
				child.Style = 0
				return
			}
			scalar := &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
			if child != nil {
				*child = *scalar
				return
			}
			m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, scalar)
			return
		}

		if child == nil || child.Kind != yaml.MappingNode {
			next := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			if child != nil {
				*child = *next
				next = child
			} else {
				m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, next)
			}
			child = next
		}
		m = child
	}
}

// writeDocument writes atomically: temp file in the same dir, then rename.
func writeDocument(configPath string, doc *yaml.Node) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = enc.Close()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	temp, err := os.CreateTemp(dir, ".parley.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(buf.Bytes()); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

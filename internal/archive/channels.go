package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Channel is one entry of the archive-wide channels.json. Consumed by
// reporting only; no transformation logic depends on it.
type Channel struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Created    int64    `json:"created"`
	Creator    string   `json:"creator"`
	IsArchived bool     `json:"is_archived"`
	IsGeneral  bool     `json:"is_general"`
	Members    []string `json:"members"`
	Topic      Topic    `json:"topic"`
	Purpose    Topic    `json:"purpose"`
	Pins       []Pin    `json:"pins"`
}

// Topic is the topic/purpose object on a channel.
type Topic struct {
	Value   string `json:"value"`
	Creator string `json:"creator"`
	LastSet int64  `json:"last_set"`
}

// Pin is one pinned-item stub on a channel.
type Pin struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Created int64  `json:"created"`
	User    string `json:"user"`
	Owner   string `json:"owner"`
}

// LoadChannels reads channels.json from the archive root.
func LoadChannels(root string) ([]Channel, error) {
	path := filepath.Join(root, "channels.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var channels []Channel
	if err := json.Unmarshal(data, &channels); err != nil {
		if json.Valid(data) {
			return nil, &MalformedArchiveError{Path: path, Reason: "not a JSON array of channels"}
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	return channels, nil
}

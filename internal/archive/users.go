package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// User is one entry of the archive-wide users.json. Loaded once per run
// and shared read-only by downstream passes.
type User struct {
	ID                     string  `json:"id"`
	TeamID                 string  `json:"team_id"`
	Name                   string  `json:"name"`
	Deleted                bool    `json:"deleted"`
	Color                  string  `json:"color"`
	RealName               string  `json:"real_name"`
	TZ                     string  `json:"tz"`
	TZLabel                string  `json:"tz_label"`
	TZOffset               int     `json:"tz_offset"`
	Profile                Profile `json:"profile"`
	IsAdmin                bool    `json:"is_admin"`
	IsOwner                bool    `json:"is_owner"`
	IsPrimaryOwner         bool    `json:"is_primary_owner"`
	IsRestricted           bool    `json:"is_restricted"`
	IsUltraRestricted      bool    `json:"is_ultra_restricted"`
	IsBot                  bool    `json:"is_bot"`
	IsAppUser              bool    `json:"is_app_user"`
	Updated                int64   `json:"updated"`
	IsEmailConfirmed       bool    `json:"is_email_confirmed"`
	WhoCanShareContactCard string  `json:"who_can_share_contact_card"`
	IsInvitedUser          bool    `json:"is_invited_user"`
}

// Profile is the nested profile object inside a users.json entry.
type Profile struct {
	RealName           string `json:"real_name"`
	RealNameNormalized string `json:"real_name_normalized"`
	DisplayName        string `json:"display_name"`
	Title              string `json:"title"`
	Team               string `json:"team"`
}

// LoadUsers reads users.json from the archive root.
func LoadUsers(root string) ([]User, error) {
	path := filepath.Join(root, "users.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		if json.Valid(data) {
			return nil, &MalformedArchiveError{Path: path, Reason: "not a JSON array of users"}
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	return users, nil
}

// UserMaps returns the id-to-name and name-to-id lookups for a loaded
// user list. Later duplicates win, matching the export's own ordering.
func UserMaps(users []User) (namesByID, idsByName map[string]string) {
	namesByID = make(map[string]string, len(users))
	idsByName = make(map[string]string, len(users))
	for _, u := range users {
		namesByID[u.ID] = u.Name
		idsByName[u.Name] = u.ID
	}
	return namesByID, idsByName
}

// ABOUTME: Local user profile with login/register/logout semantics.
// ABOUTME: Stored as JSON under the XDG config directory.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
)

// Profile identifies the local user. There is no server account behind it;
// it exists so records and exports can carry an owner.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	DeviceID  string    `json:"device_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Dir returns the XDG config directory for gymtrack.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gymtrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gymtrack")
}

// Path returns the path to the profile file.
func Path() string {
	return filepath.Join(Dir(), "profile.json")
}

// Load reads the stored profile. Returns (nil, nil) when nobody is logged in.
func Load() (*Profile, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return &p, nil
}

// Save writes the profile to disk.
func (p *Profile) Save() error {
	if err := os.MkdirAll(Dir(), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(), data, 0600)
}

// Register creates and stores a new profile. Fails if one already exists.
func Register(name, email string) (*Profile, error) {
	if existing, err := Load(); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("already logged in as %s (%s)", existing.Name, existing.Email)
	}
	return Login(name, email)
}

// Login creates and stores a profile, replacing any existing one.
func Login(name, email string) (*Profile, error) {
	p := &Profile{
		ID:        ulid.Make().String(),
		Name:      name,
		Email:     email,
		DeviceID:  ulid.Make().String(),
		CreatedAt: time.Now(),
	}
	if err := p.Save(); err != nil {
		return nil, err
	}
	return p, nil
}

// Logout removes the stored profile. No-op when nobody is logged in.
func Logout() error {
	err := os.Remove(Path())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

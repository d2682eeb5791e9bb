// Package seed loads the initial makerspace state from a YAML fixture.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/MakeServer_Go/internal/apikey"
	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/store"
)

// Fixture is the on-disk shape of the initial state
type Fixture struct {
	Users     []domain.User          `yaml:"users"`
	Inventory []domain.InventoryItem `yaml:"inventory"`
	Quizzes   []domain.Quiz          `yaml:"quizzes"`
	Slots     []string               `yaml:"storage_slots"`
	Printers  []Printer              `yaml:"printers"`
	APIKeys   []APIKey               `yaml:"api_keys"`
}

// Printer registers a printer with the credential it embeds in its updates
type Printer struct {
	Name       string `yaml:"name"`
	Model      string `yaml:"model"`
	Credential string `yaml:"credential"`
}

// APIKey provisions one key. Roles are role names; UserID binds the key to a
// user so it also carries that user's auth level.
type APIKey struct {
	Key    string   `yaml:"key"`
	Label  string   `yaml:"label"`
	Roles  []string `yaml:"roles"`
	UserID *uint64  `yaml:"user_id"`
}

// Summary counts what a fixture populated
type Summary struct {
	Users     int
	Items     int
	Quizzes   int
	Slots     int
	Printers  int
	Keys      int
	AdminKeys int
}

// Load decodes a fixture. Unknown fields are rejected so typos surface at startup.
func Load(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &Fixture{}, nil
		}
		return nil, fmt.Errorf("failed to decode seed fixture: %w", err)
	}
	return &f, nil
}

// LoadFile opens and decodes the fixture at path
func LoadFile(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()
	return Load(file)
}

// Populate writes the fixture into the store in a single unit of work and then
// provisions its keys. Any invalid record aborts population.
func (f *Fixture) Populate(ctx context.Context, st *store.Store, keys *apikey.Registry) (Summary, error) {
	entries, err := f.keyEntries()
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	err = st.Update(ctx, func(tx *store.Tables) error {
		for _, u := range f.Users {
			if err := tx.Users.Add(u); err != nil {
				return fmt.Errorf("user %d: %w", u.CollegeID, err)
			}
		}
		for _, item := range f.Inventory {
			if err := tx.Inventory.Add(item); err != nil {
				return fmt.Errorf("item %q: %w", item.Name, err)
			}
		}
		for _, q := range f.Quizzes {
			if err := tx.Quizzes.Add(q); err != nil {
				return fmt.Errorf("quiz %q: %w", q.Name, err)
			}
		}
		for _, id := range f.Slots {
			if err := tx.StudentStorage.Add(id); err != nil {
				return fmt.Errorf("slot %q: %w", id, err)
			}
		}
		for _, p := range f.Printers {
			if err := tx.Printers.Register(domain.Printer{Name: p.Name, Model: p.Model}, p.Credential); err != nil {
				return fmt.Errorf("printer %q: %w", p.Name, err)
			}
		}
		for _, k := range f.APIKeys {
			if k.UserID != nil && !tx.Users.Exists(*k.UserID) {
				return fmt.Errorf("api key %q: %w", k.Label, domain.NewNotFound(domain.EntityUser, *k.UserID))
			}
		}
		return nil
	})
	if err != nil {
		return Summary{}, fmt.Errorf("failed to populate store: %w", err)
	}

	for i, k := range f.APIKeys {
		if err := keys.Grant(k.Key, entries[i]); err != nil {
			return Summary{}, fmt.Errorf("api key %q: %w", k.Label, err)
		}
		if entries[i].Roles.Has(domain.RoleAdmin) {
			sum.AdminKeys++
		}
	}

	sum.Users = len(f.Users)
	sum.Items = len(f.Inventory)
	sum.Quizzes = len(f.Quizzes)
	sum.Slots = len(f.Slots)
	sum.Printers = len(f.Printers)
	sum.Keys = len(f.APIKeys)
	return sum, nil
}

func (f *Fixture) keyEntries() ([]apikey.Entry, error) {
	out := make([]apikey.Entry, len(f.APIKeys))
	for i, k := range f.APIKeys {
		if k.Key == "" {
			return nil, fmt.Errorf("api key %q: %w", k.Label, apikey.ErrEmptyKey)
		}
		if len(k.Roles) == 0 && k.UserID == nil {
			return nil, fmt.Errorf("api key %q: %w: needs roles or a user", k.Label, domain.ErrInvalidInput)
		}
		roles := make([]domain.Role, 0, len(k.Roles))
		for _, name := range k.Roles {
			r, err := domain.ParseRole(name)
			if err != nil {
				return nil, fmt.Errorf("api key %q: %w", k.Label, err)
			}
			roles = append(roles, r)
		}
		out[i] = apikey.Entry{Roles: domain.NewRoleSet(roles...), UserID: k.UserID, Label: k.Label}
	}
	return out, nil
}

// Package profile names the unary ceilings that binaries can select.
//
// Profiles are registered process-wide. The built-in profiles are "host",
// "ptr32" and "ptr64"; programs may register more in init():
//
//	profile.MustRegister(profile.Profile{ ... })
package profile

import (
	"fmt"
	"math/big"
	"sort"
	"sync"

	"xdao.co/bij256/bij256"
)

// Profile is a named unary ceiling.
type Profile struct {
	Name        string
	Description string

	// Ceiling is the exclusive upper bound on unary lengths. Must be positive.
	Ceiling *big.Int
}

// Projector returns a projector bounded by the profile's ceiling.
func (p Profile) Projector(marker byte) *bij256.Projector {
	return &bij256.Projector{Marker: marker, Ceiling: new(big.Int).Set(p.Ceiling)}
}

var (
	mu       sync.RWMutex
	profiles = map[string]Profile{}
)

func init() {
	MustRegister(Profile{
		Name:        "host",
		Description: fmt.Sprintf("Ceiling for this host (%d-bit pointers)", bij256.PtrSize),
		Ceiling:     bij256.DefaultCeiling(),
	})
	MustRegister(Profile{
		Name:        "ptr32",
		Description: "Ceiling for 32-bit runtimes",
		Ceiling:     big.NewInt(bij256.Ceiling32),
	})
	MustRegister(Profile{
		Name:        "ptr64",
		Description: "Ceiling for 64-bit runtimes",
		Ceiling:     big.NewInt(bij256.Ceiling64),
	})
}

// Register registers a profile.
func Register(p Profile) error {
	if p.Name == "" {
		return fmt.Errorf("profile: name is required")
	}
	if p.Ceiling == nil || p.Ceiling.Sign() <= 0 {
		return fmt.Errorf("profile: %q needs a positive ceiling", p.Name)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := profiles[p.Name]; exists {
		return fmt.Errorf("profile: %q already registered", p.Name)
	}
	profiles[p.Name] = p.clone()
	return nil
}

// clone copies the ceiling so callers cannot reach registry state.
func (p Profile) clone() Profile {
	p.Ceiling = new(big.Int).Set(p.Ceiling)
	return p
}

// MustRegister is like Register but panics on error.
func MustRegister(p Profile) {
	if err := Register(p); err != nil {
		panic(err)
	}
}

// Lookup returns the named profile.
func Lookup(name string) (Profile, error) {
	mu.RLock()
	p, ok := profiles[name]
	mu.RUnlock()
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q", name)
	}
	return p.clone(), nil
}

// List returns all profiles, sorted by name.
func List() []Profile {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns profile names, sorted.
func Names() []string {
	ps := List()
	n := make([]string, 0, len(ps))
	for _, p := range ps {
		n = append(n, p.Name)
	}
	return n
}

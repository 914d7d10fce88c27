package profile

import (
	"flag"
	"fmt"
	"math/big"
	"strings"

	"xdao.co/bij256/bij256"
)

// Flags holds the projector settings parsed from a FlagSet.
type Flags struct {
	Profile string
	Ceiling string
	Marker  string
}

// RegisterFlags adds --profile, --ceiling and --marker to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Profile, "profile", "host", "Ceiling profile ("+strings.Join(Names(), ", ")+")")
	fs.StringVar(&f.Ceiling, "ceiling", "", "Explicit unary ceiling (decimal); overrides --profile")
	fs.StringVar(&f.Marker, "marker", string(bij256.DefaultMarker), "Unary marker (one ASCII character)")
	return f
}

// Projector builds the projector selected by the parsed flags.
func (f *Flags) Projector() (*bij256.Projector, error) {
	marker, err := parseMarker(f.Marker)
	if err != nil {
		return nil, err
	}
	if f.Ceiling != "" {
		c, ok := new(big.Int).SetString(f.Ceiling, 10)
		if !ok || c.Sign() <= 0 {
			return nil, fmt.Errorf("invalid --ceiling %q: want a positive decimal integer", f.Ceiling)
		}
		return &bij256.Projector{Marker: marker, Ceiling: c}, nil
	}
	name := f.Profile
	if name == "" {
		name = "host"
	}
	p, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return p.Projector(marker), nil
}

func parseMarker(s string) (byte, error) {
	if s == "" {
		return bij256.DefaultMarker, nil
	}
	if len(s) != 1 || s[0] == 0 || s[0] > 0x7f {
		return 0, fmt.Errorf("invalid --marker %q: want one ASCII character", s)
	}
	return s[0], nil
}

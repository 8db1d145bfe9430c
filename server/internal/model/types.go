package model

import (
	"fmt"
	"strings"
)

// Settings is the device configuration exposed at /api/settings. Every field
// is required on write.
type Settings struct {
	Noise       *int `json:"noise"`
	Compression *int `json:"compression"`
	LoFreqHue   *int `json:"loFreqHue"`
	HiFreqHue   *int `json:"hiFreqHue"`
	LedCount    *int `json:"ledCount"`
}

// DefaultSettings returns the values a fresh device starts with.
func DefaultSettings() Settings {
	return NewSettings(10, 90, 55, 200, 50)
}

// NewSettings builds a fully populated Settings.
func NewSettings(noise, compression, loFreqHue, hiFreqHue, ledCount int) Settings {
	return Settings{
		Noise:       &noise,
		Compression: &compression,
		LoFreqHue:   &loFreqHue,
		HiFreqHue:   &hiFreqHue,
		LedCount:    &ledCount,
	}
}

// Validate reports every missing field at once.
func (s Settings) Validate() error {
	var missing []string
	for _, f := range []struct {
		name string
		v    *int
	}{
		{"noise", s.Noise},
		{"compression", s.Compression},
		{"loFreqHue", s.LoFreqHue},
		{"hiFreqHue", s.HiFreqHue},
		{"ledCount", s.LedCount},
	} {
		if f.v == nil {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: field required: %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

func (s Settings) String() string {
	v := func(p *int) string {
		if p == nil {
			return "None"
		}
		return fmt.Sprint(*p)
	}
	return fmt.Sprintf("noise=%s compression=%s loFreqHue=%s hiFreqHue=%s ledCount=%s",
		v(s.Noise), v(s.Compression), v(s.LoFreqHue), v(s.HiFreqHue), v(s.LedCount))
}

// Pattern names a lighting pattern the device can run.
type Pattern string

const (
	PatternTrail    Pattern = "trail"
	PatternBlank    Pattern = "blank"
	PatternConfetti Pattern = "confetti"
	PatternSolid    Pattern = "solid"
	PatternPixFreq  Pattern = "pix_freq"
	PatternBands    Pattern = "bands"
	PatternComet    Pattern = "comet"
	PatternVBar     Pattern = "vbar"
)

// DefaultPattern is the pattern a fresh device runs.
const DefaultPattern = PatternTrail

var patterns = []Pattern{
	PatternTrail,
	PatternBlank,
	PatternConfetti,
	PatternSolid,
	PatternPixFreq,
	PatternBands,
	PatternComet,
	PatternVBar,
}

// Patterns returns every known pattern in display order.
func Patterns() []Pattern {
	out := make([]Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// Valid reports whether p is a known pattern.
func (p Pattern) Valid() bool {
	for _, k := range patterns {
		if p == k {
			return true
		}
	}
	return false
}

// Control is the body of PUT /api/pattern.
type Control struct {
	Pattern *Pattern `json:"pattern"`
}

func (c Control) Validate() error {
	if c.Pattern == nil {
		return fmt.Errorf("%w: pattern: field required", ErrValidation)
	}
	if !c.Pattern.Valid() {
		names := make([]string, len(patterns))
		for i, p := range patterns {
			names[i] = "'" + string(p) + "'"
		}
		return fmt.Errorf("%w: pattern: value is not a valid enumeration member; permitted: %s",
			ErrValidation, strings.Join(names, ", "))
	}
	return nil
}

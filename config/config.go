// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/axiscale/renderer"
	"github.com/katalvlaran/axiscale/scale"
	"github.com/katalvlaran/axiscale/timeunit"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for loading and validation.
var (
	// ErrFormat indicates a file extension that is neither YAML nor TOML.
	ErrFormat = errors.New("config: unsupported format")

	// ErrInvalid indicates a configuration value outside its domain.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrDuplicateName indicates two axes or two series with the same name.
	ErrDuplicateName = errors.New("config: duplicate name")
)

// Format is a configuration file syntax.
type Format int

const (
	// FormatYAML is decoded with gopkg.in/yaml.v3.
	FormatYAML Format = iota
	// FormatTOML is decoded with github.com/BurntSushi/toml.
	FormatTOML
)

// String returns "yaml" or "toml".
func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return FormatYAML, fmt.Errorf("%s: %w", path, ErrFormat)
}

// File is the root of a configuration file.
type File struct {
	Axes   []AxisSpec   `yaml:"axes" toml:"axes"`
	Series []SeriesSpec `yaml:"series" toml:"series"`
}

// AxisSpec describes one axis. Kind selects which of the kind-specific
// fields apply.
type AxisSpec struct {
	Name string `yaml:"name" toml:"name"`
	// Kind is value (the default), date, category or duration.
	Kind string `yaml:"kind" toml:"kind"`

	Min      *float64      `yaml:"min" toml:"min"`
	Max      *float64      `yaml:"max" toml:"max"`
	MinDate  string        `yaml:"min_date" toml:"min_date"`
	MaxDate  string        `yaml:"max_date" toml:"max_date"`
	Strict   bool          `yaml:"strict" toml:"strict"`
	Zoom     []float64     `yaml:"zoom" toml:"zoom"`
	Breaks   []BreakSpec   `yaml:"breaks" toml:"breaks"`
	Renderer *RendererSpec `yaml:"renderer" toml:"renderer"`

	GridCount     int     `yaml:"grid_count" toml:"grid_count"`
	MaxZoomFactor float64 `yaml:"max_zoom_factor" toml:"max_zoom_factor"`
	AnimationMs   int     `yaml:"animation_ms" toml:"animation_ms"`

	// value
	Logarithmic  bool   `yaml:"logarithmic" toml:"logarithmic"`
	MaxPrecision *int   `yaml:"max_precision" toml:"max_precision"`
	NumberStyle  string `yaml:"number_style" toml:"number_style"`
	Unit         string `yaml:"unit" toml:"unit"`

	// date
	BaseInterval        string            `yaml:"base_interval" toml:"base_interval"`
	GridIntervals       []string          `yaml:"grid_intervals" toml:"grid_intervals"`
	DateFormats         map[string]string `yaml:"date_formats" toml:"date_formats"`
	PeriodChangeFormats map[string]string `yaml:"period_change_formats" toml:"period_change_formats"`
	MarkUnitChange      *bool             `yaml:"mark_unit_change" toml:"mark_unit_change"`
	Location            string            `yaml:"location" toml:"location"`
	SkipEmptyPeriods    *float64          `yaml:"skip_empty_periods" toml:"skip_empty_periods"`
	DetectBaseInterval  bool              `yaml:"detect_base_interval" toml:"detect_base_interval"`

	// category
	Categories    []string `yaml:"categories" toml:"categories"`
	StartLocation *float64 `yaml:"start_location" toml:"start_location"`
	EndLocation   *float64 `yaml:"end_location" toml:"end_location"`

	// duration
	BaseUnit string `yaml:"base_unit" toml:"base_unit"`
}

// BreakSpec describes one break. Dates may be given instead of values on
// date axes.
type BreakSpec struct {
	Start     float64 `yaml:"start" toml:"start"`
	End       float64 `yaml:"end" toml:"end"`
	StartDate string  `yaml:"start_date" toml:"start_date"`
	EndDate   string  `yaml:"end_date" toml:"end_date"`
	Size      float64 `yaml:"size" toml:"size"`
}

// RendererSpec configures a headless linear renderer.
type RendererSpec struct {
	Length          float64 `yaml:"length" toml:"length"`
	MinGridDistance float64 `yaml:"min_grid_distance" toml:"min_grid_distance"`
	Orientation     string  `yaml:"orientation" toml:"orientation"`
	Inversed        bool    `yaml:"inversed" toml:"inversed"`
}

// SeriesSpec describes a generated or literal series.
type SeriesSpec struct {
	Name string `yaml:"name" toml:"name"`
	// Kind is one of pulse, chirp, ohlc, dated or xy.
	Kind string `yaml:"kind" toml:"kind"`

	N         int       `yaml:"n" toml:"n"`
	Seed      int64     `yaml:"seed" toml:"seed"`
	Amplitude float64   `yaml:"amplitude" toml:"amplitude"`
	Noise     float64   `yaml:"noise" toml:"noise"`
	Trend     float64   `yaml:"trend" toml:"trend"`
	Start     string    `yaml:"start" toml:"start"`
	Interval  string    `yaml:"interval" toml:"interval"`
	GapRate   float64   `yaml:"gap_rate" toml:"gap_rate"`
	GapLength int       `yaml:"gap_length" toml:"gap_length"`
	X         []float64 `yaml:"x" toml:"x"`
	Y         []float64 `yaml:"y" toml:"y"`
	XAxis     string    `yaml:"x_axis" toml:"x_axis"`
	YAxis     string    `yaml:"y_axis" toml:"y_axis"`
	Ignore    bool      `yaml:"ignore_min_max" toml:"ignore_min_max"`
}

// Load reads and validates the file at path.
func Load(path string) (*File, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, format)
}

// Parse decodes data in the given format and validates it. Unknown keys are
// rejected.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("config: toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("config: toml: unknown key %q: %w", undecoded[0].String(), ErrInvalid)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: yaml: %w", err)
		}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks names, kinds and the ranges of numeric fields.
func (f *File) Validate() error {
	seen := make(map[string]bool, len(f.Axes))
	for i := range f.Axes {
		a := &f.Axes[i]
		if a.Name == "" {
			return fmt.Errorf("config: axis #%d has no name: %w", i, ErrInvalid)
		}
		if seen[a.Name] {
			return fmt.Errorf("config: axis %q: %w", a.Name, ErrDuplicateName)
		}
		seen[a.Name] = true
		if err := a.Validate(); err != nil {
			return err
		}
	}

	seen = make(map[string]bool, len(f.Series))
	for i := range f.Series {
		s := &f.Series[i]
		if s.Name == "" {
			return fmt.Errorf("config: series #%d has no name: %w", i, ErrInvalid)
		}
		if seen[s.Name] {
			return fmt.Errorf("config: series %q: %w", s.Name, ErrDuplicateName)
		}
		seen[s.Name] = true
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func invalid(owner, name, format string, args ...interface{}) error {
	return fmt.Errorf("config: %s %q: %s: %w", owner, name, fmt.Sprintf(format, args...), ErrInvalid)
}

// ScaleKind parses Kind; an empty Kind is a value axis.
func (a *AxisSpec) ScaleKind() (scale.Kind, error) {
	if strings.TrimSpace(a.Kind) == "" {
		return scale.Value, nil
	}
	return scale.ParseKind(a.Kind)
}

// Validate checks one axis.
func (a *AxisSpec) Validate() error {
	kind, err := a.ScaleKind()
	if err != nil {
		return fmt.Errorf("config: axis %q: %w", a.Name, err)
	}
	if len(a.Zoom) != 0 && len(a.Zoom) != 2 {
		return invalid("axis", a.Name, "zoom needs [start, end]")
	}
	for _, v := range append([]float64{ptr(a.Min), ptr(a.Max), a.MaxZoomFactor}, a.Zoom...) {
		if !scale.IsFinite(v) {
			return invalid("axis", a.Name, "non-finite value %g", v)
		}
	}
	if a.GridCount < 0 {
		return invalid("axis", a.Name, "grid_count %d", a.GridCount)
	}
	if a.MaxZoomFactor != 0 && a.MaxZoomFactor < 1 {
		return invalid("axis", a.Name, "max_zoom_factor %g", a.MaxZoomFactor)
	}
	if a.AnimationMs < 0 {
		return invalid("axis", a.Name, "animation_ms %d", a.AnimationMs)
	}
	if a.MaxPrecision != nil && *a.MaxPrecision < 0 {
		return invalid("axis", a.Name, "max_precision %d", *a.MaxPrecision)
	}
	for _, b := range a.Breaks {
		if b.Size < 0 || b.Size > 1 {
			return invalid("axis", a.Name, "break size %g", b.Size)
		}
	}
	if r := a.Renderer; r != nil {
		if r.Length < 0 || r.MinGridDistance < 0 {
			return invalid("axis", a.Name, "renderer length %g, min grid distance %g", r.Length, r.MinGridDistance)
		}
		if r.Orientation != "" {
			if _, err := renderer.ParseOrientation(strings.ToLower(r.Orientation)); err != nil {
				return fmt.Errorf("config: axis %q: %v: %w", a.Name, err, ErrInvalid)
			}
		}
	}
	for _, d := range []string{a.MinDate, a.MaxDate} {
		if d != "" {
			if _, err := ParseTime(d); err != nil {
				return fmt.Errorf("config: axis %q: %w", a.Name, err)
			}
		}
	}
	if s := a.SkipEmptyPeriods; s != nil && (*s < 0 || *s > 1) {
		return invalid("axis", a.Name, "skip_empty_periods %g", *s)
	}
	for _, p := range []*float64{a.StartLocation, a.EndLocation} {
		if p != nil && (*p < 0 || *p > 1) {
			return invalid("axis", a.Name, "location %g", *p)
		}
	}
	if kind == scale.Date {
		if a.BaseInterval != "" {
			if _, err := ParseGranularity(a.BaseInterval); err != nil {
				return fmt.Errorf("config: axis %q: base_interval: %w", a.Name, err)
			}
		}
		for _, s := range a.GridIntervals {
			if _, err := ParseGranularity(s); err != nil {
				return fmt.Errorf("config: axis %q: grid_intervals: %w", a.Name, err)
			}
		}
		for u := range a.DateFormats {
			if _, err := timeunit.ParseUnit(u); err != nil {
				return fmt.Errorf("config: axis %q: date_formats: %w", a.Name, err)
			}
		}
		for u := range a.PeriodChangeFormats {
			if _, err := timeunit.ParseUnit(u); err != nil {
				return fmt.Errorf("config: axis %q: period_change_formats: %w", a.Name, err)
			}
		}
		if a.Location != "" {
			if _, err := time.LoadLocation(a.Location); err != nil {
				return fmt.Errorf("config: axis %q: location: %w", a.Name, err)
			}
		}
	}
	if kind == scale.Duration && a.BaseUnit != "" {
		if _, err := timeunit.ParseUnit(a.BaseUnit); err != nil {
			return fmt.Errorf("config: axis %q: base_unit: %w", a.Name, err)
		}
	}
	return nil
}

func ptr(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Validate checks one series.
func (s *SeriesSpec) Validate() error {
	switch strings.ToLower(s.Kind) {
	case "xy":
		if len(s.X) != len(s.Y) {
			return invalid("series", s.Name, "%d x vs %d y", len(s.X), len(s.Y))
		}
		return nil
	case "pulse", "chirp", "ohlc", "dated":
	default:
		return invalid("series", s.Name, "unknown kind %q", s.Kind)
	}
	if s.N < 1 {
		return invalid("series", s.Name, "n %d", s.N)
	}
	if s.Amplitude < 0 || s.Noise < 0 {
		return invalid("series", s.Name, "amplitude %g, noise %g", s.Amplitude, s.Noise)
	}
	if s.GapRate < 0 || s.GapRate > 1 || s.GapLength < 0 {
		return invalid("series", s.Name, "gap_rate %g, gap_length %d", s.GapRate, s.GapLength)
	}
	if s.Interval != "" {
		if _, err := ParseGranularity(s.Interval); err != nil {
			return fmt.Errorf("config: series %q: interval: %w", s.Name, err)
		}
	}
	if s.Start != "" {
		if _, err := ParseTime(s.Start); err != nil {
			return fmt.Errorf("config: series %q: start: %w", s.Name, err)
		}
	}
	return nil
}

// ParseGranularity reads "day", "1 day" or "5 minutes".
func ParseGranularity(s string) (timeunit.Granularity, error) {
	fields := strings.Fields(s)
	count := 1
	switch len(fields) {
	case 1:
	case 2:
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return timeunit.Granularity{}, fmt.Errorf("%q: %w", s, ErrInvalid)
		}
		count = n
		fields = fields[1:]
	default:
		return timeunit.Granularity{}, fmt.Errorf("%q: %w", s, ErrInvalid)
	}
	u, err := timeunit.ParseUnit(fields[0])
	if err != nil {
		return timeunit.Granularity{}, err
	}
	g := timeunit.Of(u, count)
	if err := g.Validate(); err != nil {
		return timeunit.Granularity{}, err
	}
	return g, nil
}

// ParseTime reads an RFC 3339 instant or a plain 2006-01-02 date (UTC).
func ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalid)
	}
	return t, nil
}

package theme

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/controls/pkg/errors"
	"github.com/go-drift/controls/pkg/graphics"
	"github.com/go-drift/controls/pkg/selection"
)

// SupportedVersion is the newest theme file version this package reads.
// Files must share its major version and not be newer.
const SupportedVersion = "v1.2.0"

// Format is a theme file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	default:
		return FormatYAML, false
	}
}

// File is the on-disk shape of a theme. Colors are "#RRGGBB" or "#AARRGGBB".
type File struct {
	Version    string            `yaml:"version" toml:"version"`
	Brightness string            `yaml:"brightness" toml:"brightness"`
	Colors     map[string]string `yaml:"colors" toml:"colors"`
	RadioPanel *RadioPanelFile   `yaml:"radioPanel" toml:"radioPanel"`
	ThreeWay   *ThreeWayFile     `yaml:"threeWay" toml:"threeWay"`
	Resources  map[string]string `yaml:"resources" toml:"resources"`
}

// RadioPanelFile overrides RadioPanelThemeData fields.
type RadioPanelFile struct {
	Template        string   `yaml:"template" toml:"template"`
	CornerRadius    *float64 `yaml:"cornerRadius" toml:"cornerRadius"`
	UnderlineHeight *float64 `yaml:"underlineHeight" toml:"underlineHeight"`
	ActiveColor     string   `yaml:"activeColor" toml:"activeColor"`
	InactiveColor   string   `yaml:"inactiveColor" toml:"inactiveColor"`
	BackgroundColor string   `yaml:"backgroundColor" toml:"backgroundColor"`
	TextColor       string   `yaml:"textColor" toml:"textColor"`
	ActiveTextColor string   `yaml:"activeTextColor" toml:"activeTextColor"`
}

// ThreeWayFile overrides ThreeWayThemeData fields.
type ThreeWayFile struct {
	CornerRadius    *float64 `yaml:"cornerRadius" toml:"cornerRadius"`
	SelectorWidth   *float64 `yaml:"selectorWidth" toml:"selectorWidth"`
	BorderThickness *float64 `yaml:"borderThickness" toml:"borderThickness"`
	OnColor         string   `yaml:"onColor" toml:"onColor"`
	OffColor        string   `yaml:"offColor" toml:"offColor"`
	NeutralColor    string   `yaml:"neutralColor" toml:"neutralColor"`
	BorderColor     string   `yaml:"borderColor" toml:"borderColor"`
	TextColor       string   `yaml:"textColor" toml:"textColor"`
}

// Load reads a theme file, choosing the decoder from its extension.
func Load(path string) (*ThemeData, error) {
	format, ok := FormatFromPath(path)
	if !ok {
		return nil, errors.WithPath("theme.Load", errors.KindConfig, path,
			fmt.Errorf("unknown theme extension %q", filepath.Ext(path)))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithPath("theme.Load", errors.KindConfig, path, err)
	}
	th, err := Parse(data, format)
	if err != nil {
		var ce *errors.ControlError
		if stderrors.As(err, &ce) {
			ce.Path = path
		}
		return nil, err
	}
	return th, nil
}

// Parse decodes and resolves a theme file. Unknown keys are rejected.
func Parse(data []byte, format Format) (*ThemeData, error) {
	f, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return f.Resolve()
}

// Decode decodes a theme file without resolving it.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.New("theme.Decode", errors.KindParsing, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New("theme.Decode", errors.KindParsing,
				fmt.Errorf("unknown keys: %v", undecoded))
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return nil, errors.New("theme.Decode", errors.KindParsing, err)
		}
	}
	return &f, nil
}

// Resolve validates the file and builds ThemeData on top of the default
// theme for its brightness.
func (f *File) Resolve() (*ThemeData, error) {
	if err := checkVersion(f.Version); err != nil {
		return nil, errors.New("theme.Resolve", errors.KindConfig, err)
	}

	var th *ThemeData
	switch strings.ToLower(f.Brightness) {
	case "", "light":
		th = DefaultLightTheme()
	case "dark":
		th = DefaultDarkTheme()
	default:
		return nil, errors.New("theme.Resolve", errors.KindConfig,
			fmt.Errorf("unknown brightness %q", f.Brightness))
	}

	var r resolver
	r.scheme(&th.ColorScheme, f.Colors)

	if f.RadioPanel != nil {
		rp := DefaultRadioPanelTheme(th.ColorScheme)
		if f.RadioPanel.Template != "" {
			v, ok := selection.ParseVariant(f.RadioPanel.Template)
			if !ok {
				r.fail(fmt.Errorf("radioPanel.template: unknown template %q", f.RadioPanel.Template))
			}
			rp.Template = v
		}
		setFloat(&rp.CornerRadius, f.RadioPanel.CornerRadius)
		setFloat(&rp.UnderlineHeight, f.RadioPanel.UnderlineHeight)
		r.color(&rp.ActiveColor, "radioPanel.activeColor", f.RadioPanel.ActiveColor)
		r.color(&rp.InactiveColor, "radioPanel.inactiveColor", f.RadioPanel.InactiveColor)
		r.color(&rp.BackgroundColor, "radioPanel.backgroundColor", f.RadioPanel.BackgroundColor)
		r.color(&rp.TextColor, "radioPanel.textColor", f.RadioPanel.TextColor)
		r.color(&rp.ActiveTextColor, "radioPanel.activeTextColor", f.RadioPanel.ActiveTextColor)
		th.RadioPanelTheme = &rp
	}

	if f.ThreeWay != nil {
		tw := DefaultThreeWayTheme(th.ColorScheme)
		setFloat(&tw.CornerRadius, f.ThreeWay.CornerRadius)
		setFloat(&tw.SelectorWidth, f.ThreeWay.SelectorWidth)
		setFloat(&tw.BorderThickness, f.ThreeWay.BorderThickness)
		r.color(&tw.OnColor, "threeWay.onColor", f.ThreeWay.OnColor)
		r.color(&tw.OffColor, "threeWay.offColor", f.ThreeWay.OffColor)
		r.color(&tw.NeutralColor, "threeWay.neutralColor", f.ThreeWay.NeutralColor)
		r.color(&tw.BorderColor, "threeWay.borderColor", f.ThreeWay.BorderColor)
		r.color(&tw.TextColor, "threeWay.textColor", f.ThreeWay.TextColor)
		th.ThreeWayTheme = &tw
	}

	if len(f.Resources) > 0 {
		th.Resources = make(map[string]graphics.Color, len(f.Resources))
		for _, key := range sortedKeys(f.Resources) {
			var c graphics.Color
			r.color(&c, "resources."+key, f.Resources[key])
			th.Resources[key] = c
		}
	}

	if r.err != nil {
		return nil, errors.New("theme.Resolve", errors.KindConfig, r.err)
	}
	return th, nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a semantic version", v)
	}
	if semver.Major(v) != semver.Major(SupportedVersion) || semver.Compare(v, SupportedVersion) > 0 {
		return fmt.Errorf("version %s is not supported (newest supported: %s)", v, SupportedVersion)
	}
	return nil
}

// resolver keeps the first error so one pass reports the earliest problem.
type resolver struct {
	err error
}

func (r *resolver) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *resolver) color(dst *graphics.Color, field, value string) {
	if value == "" {
		return
	}
	c, err := graphics.ParseHex(value)
	if err != nil {
		r.fail(fmt.Errorf("%s: %w", field, err))
		return
	}
	*dst = c
}

func (r *resolver) scheme(cs *ColorScheme, colors map[string]string) {
	fields := map[string]*graphics.Color{
		"primary":        &cs.Primary,
		"onPrimary":      &cs.OnPrimary,
		"surface":        &cs.Surface,
		"onSurface":      &cs.OnSurface,
		"surfaceVariant": &cs.SurfaceVariant,
		"outline":        &cs.Outline,
		"background":     &cs.Background,
		"onBackground":   &cs.OnBackground,
		"positive":       &cs.Positive,
		"negative":       &cs.Negative,
	}
	for _, key := range sortedKeys(colors) {
		dst, ok := fields[key]
		if !ok {
			r.fail(fmt.Errorf("colors.%s: unknown color", key))
			continue
		}
		r.color(dst, "colors."+key, colors[key])
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

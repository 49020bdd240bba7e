package theme_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/go-drift/controls/pkg/errors"
	"github.com/go-drift/controls/pkg/graphics"
	"github.com/go-drift/controls/pkg/selection"
	"github.com/go-drift/controls/pkg/theme"
)

func TestDefaultThemesDeriveComponentThemes(t *testing.T) {
	light := theme.DefaultLightTheme()
	rp := light.RadioPanelThemeOf()
	if rp.ActiveColor != light.ColorScheme.Primary {
		t.Errorf("ActiveColor = %s, want primary", rp.ActiveColor.Hex())
	}
	tw := light.ThreeWayThemeOf()
	if tw.OnColor != light.ColorScheme.Positive || tw.OffColor != light.ColorScheme.Negative {
		t.Error("three-way colors not derived from the scheme")
	}

	custom := theme.RadioPanelThemeData{Template: selection.VariantSegmented}
	light.RadioPanelTheme = &custom
	if got := light.RadioPanelThemeOf().Template; got != selection.VariantSegmented {
		t.Errorf("explicit component theme ignored, got %v", got)
	}

	var nilTheme *theme.ThemeData
	if nilTheme.RadioPanelThemeOf().ActiveColor != theme.LightColorScheme().Primary {
		t.Error("nil theme should fall back to light defaults")
	}
	if _, ok := nilTheme.Resource("accent"); ok {
		t.Error("nil theme returned a resource")
	}
}

func TestLoadYAML(t *testing.T) {
	th, err := theme.Load(filepath.Join("testdata", "ocean.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if th.Brightness != theme.BrightnessDark {
		t.Errorf("Brightness = %v, want dark", th.Brightness)
	}
	if th.ColorScheme.Primary != graphics.RGB(0x02, 0x88, 0xD1) {
		t.Errorf("Primary = %s", th.ColorScheme.Primary.Hex())
	}
	if th.ColorScheme.Surface != theme.DarkColorScheme().Surface {
		t.Error("unspecified scheme colors should keep dark defaults")
	}

	rp := th.RadioPanelThemeOf()
	want := selection.SharedStyle{Variant: selection.VariantUnderline, CornerRadius: 3, UnderlineHeight: 4}
	if rp.SharedStyle() != want {
		t.Errorf("radio SharedStyle = %+v, want %+v", rp.SharedStyle(), want)
	}
	if rp.InactiveColor != th.ColorScheme.Outline {
		t.Error("unspecified radio colors should derive from the scheme")
	}

	tw := th.ThreeWayThemeOf()
	if tw.CornerRadius != 8 || tw.SelectorWidth != 40 || tw.BorderThickness != 2 {
		t.Errorf("three-way theme = %+v", tw)
	}
	if tw.OnColor != graphics.RGB(0x66, 0xBB, 0x6A) {
		t.Errorf("OnColor = %s, want the overridden positive color", tw.OnColor.Hex())
	}

	if got := th.ResourceOr("focusRing", 0); got != graphics.RGBA8(0x21, 0x96, 0xF3, 0x80) {
		t.Errorf("focusRing = %s", got.Hex())
	}
	if got := th.ResourceOr("missing", graphics.ColorBlack); got != graphics.ColorBlack {
		t.Errorf("ResourceOr fallback = %s", got.Hex())
	}
}

func TestLoadTOMLMatchesYAML(t *testing.T) {
	fromYAML, err := theme.Load(filepath.Join("testdata", "ocean.yaml"))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	fromTOML, err := theme.Load(filepath.Join("testdata", "ocean.toml"))
	if err != nil {
		t.Fatalf("toml: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, fromTOML) {
		t.Errorf("toml theme differs from yaml theme:\n%+v\n%+v", fromTOML, fromYAML)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind errors.ErrorKind
		want string
	}{
		{"newer minor", "version: v1.3.0\n", errors.KindConfig, "not supported"},
		{"newer major", "version: v2.0.0\n", errors.KindConfig, "not supported"},
		{"not semver", "version: latest\n", errors.KindConfig, "semantic version"},
		{"brightness", "brightness: dim\n", errors.KindConfig, "brightness"},
		{"color key", "colors:\n  tertiary: \"#000000\"\n", errors.KindConfig, "colors.tertiary"},
		{"color value", "colors:\n  primary: blue\n", errors.KindConfig, "colors.primary"},
		{"template", "radioPanel:\n  template: fancy\n", errors.KindConfig, "fancy"},
		{"unknown field", "shadows: true\n", errors.KindParsing, "shadows"},
		{"syntax", "colors: [\n", errors.KindParsing, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := theme.Parse([]byte(tt.src), theme.FormatYAML)
			if err == nil {
				t.Fatal("Parse() succeeded")
			}
			var ce *errors.ControlError
			if !stderrors.As(err, &ce) {
				t.Fatalf("error %T is not a ControlError", err)
			}
			if ce.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", ce.Kind, tt.kind)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseTOMLRejectsUnknownKeys(t *testing.T) {
	_, err := theme.Parse([]byte("version = \"v1.0.0\"\nglow = 3\n"), theme.FormatTOML)
	if err == nil || !strings.Contains(err.Error(), "glow") {
		t.Errorf("Parse() error = %v, want unknown key glow", err)
	}
}

func TestParseEmptyYieldsLightDefaults(t *testing.T) {
	th, err := theme.Parse(nil, theme.FormatYAML)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	if !reflect.DeepEqual(th, theme.DefaultLightTheme()) {
		t.Errorf("Parse(nil) = %+v", th)
	}
}

func TestLoadErrorsCarryPath(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("version: v9.0.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := theme.Load(bad)
	var ce *errors.ControlError
	if !stderrors.As(err, &ce) || ce.Path != bad {
		t.Errorf("Load() error = %v, want ControlError with path", err)
	}

	if _, err := theme.Load(filepath.Join(dir, "theme.json")); err == nil {
		t.Error("Load() accepted an unknown extension")
	}
	if _, err := theme.Load(filepath.Join(dir, "missing.toml")); !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() missing file error = %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	if f, ok := theme.FormatFromPath("a/b.YML"); !ok || f != theme.FormatYAML {
		t.Error("yml not detected")
	}
	if f, ok := theme.FormatFromPath("b.toml"); !ok || f != theme.FormatTOML || f.String() != "toml" {
		t.Error("toml not detected")
	}
	if _, ok := theme.FormatFromPath("b.ini"); ok {
		t.Error("ini detected")
	}
}

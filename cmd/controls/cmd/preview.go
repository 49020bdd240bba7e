package cmd

import (
	"fmt"
	"image"
	"strconv"

	"github.com/go-drift/controls/cmd/controls/internal/scene"
	"github.com/go-drift/controls/pkg/preview"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Render a scene to PNG",
		Long: `Render the control described by a scene file to a PNG image.

The theme file may be YAML or TOML; without one the light default is used.
Scripted activations in the scene are replayed before rendering.

Flags:
  --scene FILE    Scene file (required)
  --out FILE      Output PNG (required)
  --theme FILE    Theme file
  --scale N       Pixel scale (default 1)`,
		Usage: "controls preview --scene scene.yaml --out out.png [--theme theme.yaml] [--scale 2]",
		Run:   runPreview,
	})
}

type previewOptions struct {
	scene string
	out   string
	theme string
	scale float64
}

func parsePreviewArgs(args []string) (previewOptions, error) {
	opts := previewOptions{scale: 1}
	for i := 0; i < len(args); i++ {
		matched := false
		for _, f := range []struct {
			name string
			dst  *string
		}{
			{"scene", &opts.scene},
			{"out", &opts.out},
			{"theme", &opts.theme},
		} {
			v, skip, ok, err := flagValue(args, i, f.name)
			if err != nil {
				return opts, err
			}
			if ok {
				*f.dst = v
				i += skip
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		v, skip, ok, err := flagValue(args, i, "scale")
		if err != nil {
			return opts, err
		}
		if !ok {
			return opts, fmt.Errorf("unknown argument %q", args[i])
		}
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 {
			return opts, fmt.Errorf("--scale: invalid value %q", v)
		}
		opts.scale = scale
		i += skip
	}
	if opts.scene == "" {
		return opts, fmt.Errorf("--scene is required")
	}
	if opts.out == "" {
		return opts, fmt.Errorf("--out is required")
	}
	return opts, nil
}

func runPreview(args []string) error {
	opts, err := parsePreviewArgs(args)
	if err != nil {
		return err
	}

	th, err := loadTheme(opts.theme)
	if err != nil {
		return err
	}
	s, err := scene.Load(opts.scene)
	if err != nil {
		return err
	}
	built, err := s.Build(th)
	if err != nil {
		return err
	}

	r := preview.NewRenderer(th)
	r.Scale = opts.scale
	var img *image.RGBA
	if built.ThreeWay != nil {
		img = r.RenderThreeWay(built.ThreeWay)
	} else {
		img = r.RenderRadioPanel(built.Panel)
	}
	if err := preview.WritePNG(opts.out, img); err != nil {
		return err
	}

	b := img.Bounds()
	fmt.Printf("Wrote %s (%dx%d)\n", opts.out, b.Dx(), b.Dy())
	return nil
}

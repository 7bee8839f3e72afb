package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/malinduGamage/FRACTALIS/fractal"
	"github.com/malinduGamage/FRACTALIS/misc"
	"github.com/malinduGamage/FRACTALIS/service"
)

var (
	alphaGamma, cIm, cRe, fadeBlack, rotation, xOffset, yOffset, zoom float64
	height, maxIterations, width                                      int
	background, outFile, settingsFile, variantName                    string
	colors                                                            []string
	transparent                                                       bool
)

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single frame to a png file",
		Args:  cobra.ExactArgs(0),
		RunE:  runRender,
	}

	cmd.Flags().Float64Var(&alphaGamma, "alphaGamma", 1.0, "Exponent shaping the alpha falloff curve")
	cmd.Flags().StringVar(&background, "background", "#000000", "Background color for opaque renders")
	cmd.Flags().Float64Var(&cIm, "cIm", 0.156, "Imaginary part of the Julia constant")
	cmd.Flags().Float64Var(&cRe, "cRe", -0.8, "Real part of the Julia constant")
	cmd.Flags().StringSliceVar(&colors, "colors", []string{"#000000", "#404040", "#808080", "#c0c0c0", "#ffffff"}, "Up to five gradient stops as hex colors")
	cmd.Flags().Float64Var(&fadeBlack, "fadeBlack", 0, "Brightness floor below which pixels fade out")
	cmd.Flags().IntVar(&height, "height", 1080, "Height of resulting image")
	cmd.Flags().IntVar(&maxIterations, "maxIterations", 1000, "Iterations to run before a point counts as inside the set")
	cmd.Flags().StringVar(&outFile, "out", "fractal.png", "Output file name")
	cmd.Flags().Float64Var(&rotation, "rotation", 0, "Rotation of the view in degrees")
	cmd.Flags().BoolVar(&transparent, "transparent", false, "Emit straight alpha instead of blending over the background")
	cmd.Flags().StringVar(&variantName, "variant", "standard", "Fractal variant: standard, ship, tricorn, celtic or cosine")
	cmd.Flags().IntVar(&width, "width", 1920, "Width of resulting image")
	cmd.Flags().Float64Var(&xOffset, "xOffset", 0, "Pan offset along the real axis")
	cmd.Flags().Float64Var(&yOffset, "yOffset", 0, "Pan offset along the imaginary axis")
	cmd.Flags().Float64Var(&zoom, "zoom", 1.0, "Magnification of the view")

	return cmd
}

func runRender(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	logger := bslogger.NewLogger("Render", bslogger.Normal, nil)

	settings := fractal.Settings{
		AlphaGamma:    alphaGamma,
		Background:    parseColor(background, logger),
		CIm:           cIm,
		CRe:           cRe,
		FadeBlack:     fadeBlack,
		Height:        height,
		MaxIterations: maxIterations,
		Rotation:      rotation,
		Stops:         parseStops(colors, logger),
		Transparent:   transparent,
		Variant:       parseVariant(variantName),
		Width:         width,
		XOffset:       xOffset,
		YOffset:       yOffset,
		Zoom:          zoom,
	}
	misc.CheckError(settings.Verify(), logger, misc.Fatal)

	buffer := fractal.Render(settings)
	img := &image.RGBA{
		Pix:    buffer,
		Stride: settings.Width * 4,
		Rect:   image.Rect(0, 0, settings.Width, settings.Height),
	}

	file, err := os.Create(outFile)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	logger.Infof("Rendered %dx%d %s frame to %s", settings.Width, settings.Height, settings.Variant, outFile)
	return nil
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve frames to remote callers over tcp rpc",
		Args:  cobra.ExactArgs(0),
		RunE:  runServe,
	}

	cmd.Flags().StringVar(&settingsFile, "settings", "", "Json file with renderer settings")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	renderer := service.NewRenderer(settingsFile)
	if err := renderer.Run(); err != nil {
		return err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	return renderer.Stop()
}

func parseVariant(name string) fractal.Variant {
	switch strings.ToLower(name) {
	case "ship":
		return fractal.Ship
	case "tricorn":
		return fractal.Tricorn
	case "celtic":
		return fractal.Celtic
	case "cosine":
		return fractal.Cosine
	}
	return fractal.Standard
}

func parseColor(hex string, logger bslogger.Logger) color.RGBA {
	parsed, err := colorful.Hex(hex)
	if err != nil {
		logger.Warningf("Ignoring bad color %q: %s", hex, err)
		return color.RGBA{A: 255}
	}
	r, g, b := parsed.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func parseStops(hexes []string, logger bslogger.Logger) []color.RGBA {
	stops := make([]color.RGBA, 0, fractal.MaxStops)
	for _, hex := range hexes {
		parsed, err := colorful.Hex(hex)
		if err != nil {
			logger.Warningf("Skipping bad gradient stop %q: %s", hex, err)
			continue
		}
		r, g, b := parsed.RGB255()
		stops = append(stops, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return stops
}

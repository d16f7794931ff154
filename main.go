package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/output"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
	"github.com/df07/go-sphere-raytracer/web/server"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand builds the CLI. Settings resolve in order: flags,
// SPHERE_* environment variables, --config file, built-in defaults.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	defaults := renderer.DefaultConfig()

	root := &cobra.Command{
		Use:           "sphere-raytracer",
		Short:         "Render a sphere under a sky gradient",
		Long:          "Renders a single sphere lit by a sky gradient and writes the image as PPM (default), PNG, BMP or TIFF.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfigFile(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := renderConfig(v)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), config, v.GetString("format"), v.GetString("output"), stdout, newLogger(v, stderr))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	persistent := root.PersistentFlags()
	persistent.String("config", "", "Config file (yaml, toml or json)")
	persistent.Bool("quiet", false, "Suppress progress logging")

	flags := root.Flags()
	flags.Int("width", defaults.ImageWidth, "Image width in pixels")
	flags.Float64("aspect-ratio", defaults.AspectRatio, "Image width divided by height")
	flags.Float64("viewport-height", defaults.ViewportHeight, "Viewport height in world units")
	flags.Float64("focal-length", defaults.FocalLength, "Distance from the camera to the viewport")
	flags.Int("workers", defaults.Workers, "Row bands rendered in parallel (0 = CPU count)")
	flags.Float64("t-min", defaults.TMin, "Smallest accepted ray parameter")
	flags.String("format", "", "Output format: ppm, png, bmp or tiff (default: from --output extension, else ppm)")
	flags.StringP("output", "o", "", "Output file (default: stdout)")

	root.AddCommand(newServeCommand(v, stderr))

	v.BindPFlags(persistent)
	v.BindPFlags(flags)
	v.SetEnvPrefix("SPHERE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return root
}

// newServeCommand runs the HTTP render endpoint
func newServeCommand(v *viper.Viper, stderr io.Writer) *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve renders over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(v, stderr)
			port := v.GetInt("port")
			logger.Printf("Visit http://localhost:%d/api/render to render\n", port)
			return server.NewServer(port, logger).Start()
		},
	}
	serve.Flags().Int("port", 8080, "Port to serve on")
	v.BindPFlags(serve.Flags())
	return serve
}

// loadConfigFile reads the --config file when one is given
func loadConfigFile(v *viper.Viper) error {
	path := v.GetString("config")
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// renderConfig decodes and validates the render settings
func renderConfig(v *viper.Viper) (renderer.Config, error) {
	config := renderer.DefaultConfig()
	if err := v.Unmarshal(&config); err != nil {
		return renderer.Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return renderer.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// resolveFormat picks the explicit format, else the output extension, else PPM
func resolveFormat(format, outputPath string) (output.Format, error) {
	if format != "" {
		return output.ParseFormat(format)
	}
	if outputPath != "" {
		return output.FormatFromPath(outputPath), nil
	}
	return output.FormatPPM, nil
}

func newLogger(v *viper.Viper, stderr io.Writer) core.Logger {
	if v.GetBool("quiet") {
		return core.NopLogger{}
	}
	return log.New(stderr, "", 0)
}

// runRender renders the default scene and writes it to outputPath, or stdout when empty
func runRender(ctx context.Context, config renderer.Config, format, outputPath string, stdout io.Writer, logger core.Logger) error {
	imageFormat, err := resolveFormat(format, outputPath)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(scene.NewDefaultScene(), config, logger)
	img, _, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if outputPath == "" {
		return output.Encode(stdout, img, imageFormat)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := output.Encode(file, img, imageFormat); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	logger.Printf("Render saved as %s\n", outputPath)
	return nil
}

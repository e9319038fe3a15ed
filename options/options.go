package options

import "flag"

// Modes lists every value accepted by -mode.
var Modes = []string{
	"list", "presets", "glsl", "check", "bake", "export", "swatch", "schema",
	"share", "save", "library", "preview", "record", "serve",
}

type Options struct {
	Help *bool
	Mode *string

	// Recipe is a JSON file, a share string or an http(s) URL. Preset is
	// used when Recipe is empty.
	Recipe *string
	Preset *string

	Out      *string
	Format   *string
	Width    *int
	Height   *int
	FPS      *int
	Duration *float64
	Codec    *string
	FFmpeg   *string
	Software *bool
	Headless *bool
	Scale    *float64

	Addr  *string
	Watch *bool

	Library *string
	Name    *string

	// Export overrides
	FunctionName *string
	Texture      *bool
	Async        *bool
}

// Register defines every flag on fs.
func Register(fs *flag.FlagSet) *Options {
	return &Options{
		Help: fs.Bool("help", false, "Show help message"),
		Mode: fs.String("mode", "preview", "One of list, presets, glsl, check, bake, export, swatch, schema, share, save, library, preview, record, serve"),

		Recipe: fs.String("recipe", "", "Recipe JSON file, share string or http(s) URL"),
		Preset: fs.String("preset", "", "Preset id used when -recipe is empty"),

		Out:      fs.String("out", "", "Output file, stdout when empty"),
		Format:   fs.String("format", "", "Output format: ts or html for export, gif, webm, mp4, mov or mkv for record"),
		Width:    fs.Int("width", 1280, "Width of the output"),
		Height:   fs.Int("height", 720, "Height of the output"),
		FPS:      fs.Int("fps", 60, "Frames per second for recording"),
		Duration: fs.Float64("duration", 10.0, "Duration to record in seconds"),
		Codec:    fs.String("codec", "h264", "Video codec for recording: h264 or hevc"),
		FFmpeg:   fs.String("ffmpeg", "", "Path to ffmpeg executable"),
		Software: fs.Bool("software", false, "Use a software encoder instead of the platform hardware encoder"),
		Headless: fs.Bool("headless", false, "Record through an EGL pbuffer instead of a hidden window (linux)"),
		Scale:    fs.Float64("scale", 1.0, "Playback time scale"),

		Addr:  fs.String("addr", "localhost:8080", "Listen address for serve mode"),
		Watch: fs.Bool("watch", false, "Reload -recipe when the file changes (serve mode)"),

		Library: fs.String("library", "", "Library file, defaults to the user config directory"),
		Name:    fs.String("name", "", "Recipe name, or library entry id for library mode"),

		FunctionName: fs.String("fn", "", "Exported function name"),
		Texture:      fs.Bool("texture", false, "Exported function binds a texture to u_texture"),
		Async:        fs.Bool("async", false, "Export an async function"),
	}
}

// ValidMode reports whether m is one of Modes.
func ValidMode(m string) bool {
	for _, mode := range Modes {
		if mode == m {
			return true
		}
	}
	return false
}

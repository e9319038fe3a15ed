package export

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strings"
	"text/template"
	"unicode"

	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/recipe"
	"github.com/olzn/glint-studio/shader"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"literal": templateLiteral,
	"comment": lineComment,
}).ParseFS(templateFS, "templates/*.tmpl"))

var functionName = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Config is the input of the artifact generators. Sources are expected to
// be baked already.
type Config struct {
	FunctionName   string
	VertexSource   string
	FragmentSource string
	UsesTexture    bool
	Async          bool
	Title          string
}

// Bake composes st and inlines every parameter, color and stop, leaving a
// shader whose only uniforms are u_resolution and u_time.
func Bake(st recipe.State, reg *effects.Registry) string {
	res := st.Compose(reg)
	return shader.Bake(res, st.Values, st.Colors, st.Stops)
}

// FromState builds the generator config for a recipe.
func FromState(st recipe.State, reg *effects.Registry) Config {
	return Config{
		FunctionName:   st.Export.FunctionName,
		VertexSource:   shader.VertexSource,
		FragmentSource: Bake(st, reg),
		UsesTexture:    st.Export.UsesTexture,
		Async:          st.Export.Async,
		Title:          st.Name,
	}
}

func (c Config) normalized() (Config, error) {
	c.FunctionName = strings.TrimSpace(c.FunctionName)
	if c.FunctionName == "" {
		c.FunctionName = recipe.DefaultFunctionName
	}
	if !functionName.MatchString(c.FunctionName) {
		return c, fmt.Errorf("invalid function name %q", c.FunctionName)
	}
	if strings.TrimSpace(c.Title) == "" {
		c.Title = "Untitled shader"
	}
	return c, nil
}

// Module renders a TypeScript module exporting one render function.
func Module(cfg Config) (string, error) {
	return render("module.ts.tmpl", cfg)
}

// HTML renders a standalone page that runs the shader full screen.
func HTML(cfg Config) (string, error) {
	return render("page.html.tmpl", cfg)
}

func render(name string, cfg Config) (string, error) {
	cfg, err := cfg.normalized()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, cfg); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// ModuleFilename is the download name of the module for cfg.
func ModuleFilename(cfg Config) string {
	name := strings.TrimSpace(cfg.FunctionName)
	if name == "" {
		name = recipe.DefaultFunctionName
	}
	return name + ".ts"
}

var unsafeFileChars = regexp.MustCompile(`[\\/:*?"<>|\x00-\x1f]+`)

// HTMLFilename is the download name of the page, derived from the title.
func HTMLFilename(cfg Config) string {
	name := strings.TrimSpace(unsafeFileChars.ReplaceAllString(cfg.Title, "-"))
	if name == "" || name == "." || name == ".." {
		name = "shader"
	}
	return name + ".html"
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"${", "\\${",
	"</", `<\/`,
)

// templateLiteral escapes s for use inside a JavaScript template literal
// that may itself sit inside a script element.
func templateLiteral(s string) string {
	return literalEscaper.Replace(s)
}

// lineComment flattens s so it cannot end a // comment early. JavaScript
// also treats U+2028 and U+2029 as line terminators.
func lineComment(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '\u2028' || r == '\u2029' {
			return ' '
		}
		return r
	}, s)
}

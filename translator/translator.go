package translator

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

// Diagnostic is one compiler error mapped to a source line. Line is 0 when
// the message could not be attributed to a line.
type Diagnostic struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	return d.Message
}

var (
	once       sync.Once
	translator *gst.ShaderTranslator
	initErr    error

	// the translator module is not safe for concurrent calls
	mu sync.Mutex
)

// GetTranslator returns the process-wide translator, creating it on first
// use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	once.Do(func() {
		translator, initErr = gst.NewShaderTranslator(context.Background())
		if initErr != nil {
			initErr = fmt.Errorf("create shader translator: %w", initErr)
		}
	})
	return translator, initErr
}

// Translate converts WebGL2 (GLSL ES 3.00) source of the given stage
// ("vertex" or "fragment") into desktop GLSL 4.10.
func Translate(src, stage string) (*gst.Shader, error) {
	t, err := GetTranslator()
	if err != nil {
		return nil, err
	}
	mu.Lock()
	defer mu.Unlock()
	return t.TranslateShader(src, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
}

// Validate compiles both stages without a GL context. An empty result
// means both stages are valid.
func Validate(vs, fs string) []Diagnostic {
	var out []Diagnostic
	if _, err := Translate(vs, "vertex"); err != nil {
		for _, d := range FromError(err) {
			d.Message = "vertex: " + d.Message
			out = append(out, d)
		}
	}
	if _, err := Translate(fs, "fragment"); err != nil {
		out = append(out, FromError(err)...)
	}
	return out
}

var diagLine = regexp.MustCompile(`(?m)ERROR:\s*\d+:(\d+):\s*(.*?)\s*$`)

// ParseDiagnostics extracts "ERROR: 0:<line>: <message>" entries from a
// compiler info log.
func ParseDiagnostics(infoLog string) []Diagnostic {
	var out []Diagnostic
	for _, m := range diagLine.FindAllStringSubmatch(infoLog, -1) {
		line, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out = append(out, Diagnostic{Line: line, Message: m[2]})
	}
	return out
}

// FromError turns a translation or compile error into diagnostics. Errors
// without recognisable line information become a single line-0 entry.
func FromError(err error) []Diagnostic {
	if err == nil {
		return nil
	}
	if d := ParseDiagnostics(err.Error()); len(d) > 0 {
		return d
	}
	return []Diagnostic{{Message: strings.TrimSpace(err.Error())}}
}

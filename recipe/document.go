package recipe

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/shader"
)

const (
	DocumentVersion = 1

	MaxEffects = 32
	MaxValues  = 256
	MaxNameLen = 120

	// SharePrefix marks a share string embedded in a URL fragment.
	SharePrefix = "#s="
)

var (
	instanceIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{0,31}$`)
	jsIdent           = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// nameProblem describes why name cannot title a recipe, or returns "".
// Names end up in generated comments and file names, so line breaks and
// other control characters are refused.
func nameProblem(name string) string {
	if n := len([]rune(name)); n > MaxNameLen {
		return fmt.Sprintf("%d characters, max %d", n, MaxNameLen)
	}
	if strings.ContainsFunc(name, unicode.IsControl) {
		return "contains control characters"
	}
	return ""
}

// Document is the persisted and shared form of a recipe.
type Document struct {
	Version int `json:"version" jsonschema:"minimum=1"`
	State
}

func NewDocument(st State) Document {
	return Document{Version: DocumentVersion, State: st.Clone()}
}

// Normalize fills defaults and repairs stops that do not match the colors.
// Values already present are left alone.
func (d *Document) Normalize() {
	if d.Version == 0 {
		d.Version = DocumentVersion
	}
	if d.Values == nil {
		d.Values = map[string]effects.Value{}
	}
	if d.Export.FunctionName == "" {
		d.Export.FunctionName = DefaultFunctionName
	}
	d.repairStops()
}

// Validate checks d against reg. The first problem is returned as a
// *ValidationError.
func (d *Document) Validate(reg *effects.Registry) error {
	if msg := nameProblem(d.Name); msg != "" {
		return invalid("name", "%s", msg)
	}
	if len(d.Effects) > MaxEffects {
		return invalid("effects", "%d effects, max %d", len(d.Effects), MaxEffects)
	}
	seen := make(map[string]bool, len(d.Effects))
	for i, ae := range d.Effects {
		field := fmt.Sprintf("effects[%d]", i)
		if !instanceIDPattern.MatchString(ae.InstanceID) {
			return invalid(field+".instanceId", "%q is not identifier-safe", ae.InstanceID)
		}
		if seen[ae.InstanceID] {
			return invalid(field+".instanceId", "duplicate %q", ae.InstanceID)
		}
		seen[ae.InstanceID] = true
		if _, ok := reg.Get(ae.BlockID); !ok {
			return invalid(field+".blockId", "unknown effect %q", ae.BlockID)
		}
	}

	if len(d.Colors) > MaxColors {
		return invalid("colors", "%d colors, max %d", len(d.Colors), MaxColors)
	}
	for i, c := range d.Colors {
		if !shader.HexColor.MatchString(c) {
			return invalid(fmt.Sprintf("colors[%d]", i), "%q is not #rrggbb", c)
		}
	}
	for i, s := range d.Stops {
		if math.IsNaN(s) || s < 0 || s > 1 {
			return invalid(fmt.Sprintf("stops[%d]", i), "%v outside [0,1]", s)
		}
	}

	if len(d.Values) > MaxValues {
		return invalid("values", "%d values, max %d", len(d.Values), MaxValues)
	}
	for key, v := range d.Values {
		field := "values." + key
		i, param := d.OwnerOf(key)
		if i < 0 {
			return invalid(field, "no instance owns this key")
		}
		block, _ := reg.Get(d.Effects[i].BlockID)
		spec, ok := block.Param(param)
		if !ok {
			return invalid(field, "%s has no parameter %q", block.ID, param)
		}
		if err := checkValue(spec, v); err != nil {
			return invalid(field, "%v", err)
		}
	}

	if d.Export.FunctionName != "" && !jsIdent.MatchString(d.Export.FunctionName) {
		return invalid("export.functionName", "%q is not an identifier", d.Export.FunctionName)
	}
	return nil
}

// DecodeDocument parses, normalizes and validates a JSON document.
func DecodeDocument(data []byte, reg *effects.Registry) (Document, error) {
	var d Document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&d); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	d.Normalize()
	if err := d.Validate(reg); err != nil {
		return Document{}, err
	}
	return d, nil
}

// EncodeShare encodes d as unpadded base64url JSON.
func EncodeShare(d Document) (string, error) {
	d.Normalize()
	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("encode share: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeShare reverses EncodeShare. A leading "#s=" and trailing padding
// are accepted.
func DecodeShare(s string, reg *effects.Registry) (Document, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, SharePrefix)
	s = strings.TrimRight(s, "=")
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Document{}, fmt.Errorf("%w: share string: %v", ErrInvalidPayload, err)
	}
	return DecodeDocument(data, reg)
}

// ShareURL appends the share fragment of d to base.
func ShareURL(base string, d Document) (string, error) {
	enc, err := EncodeShare(d)
	if err != nil {
		return "", err
	}
	if i := strings.IndexByte(base, '#'); i >= 0 {
		base = base[:i]
	}
	return base + SharePrefix + enc, nil
}

package effects

// Category decides where a block's template lands inside the composed main().
type Category string

const (
	UVTransform Category = "uv-transform"
	Generator   Category = "generator"
	Post        Category = "post"
)

// Categories lists every category in emission order.
var Categories = []Category{UVTransform, Generator, Post}

// Priority is the position of the category in emission order, or -1.
func (c Category) Priority() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return -1
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c.Priority() >= 0
}

// ParamType is the control type of a parameter.
type ParamType string

const (
	Float  ParamType = "float"
	Bool   ParamType = "bool"
	Color  ParamType = "color"
	Vec2   ParamType = "vec2"
	Select ParamType = "select"
)

// GLSLType returns the uniform type used to carry values of this parameter type.
// Bools and selects travel as floats.
func (t ParamType) GLSLType() string {
	switch t {
	case Color:
		return "vec3"
	case Vec2:
		return "vec2"
	default:
		return "float"
	}
}

// Degrees marks a parameter edited in degrees and uploaded in radians.
const Degrees = "deg"

// Option is one entry of a select parameter.
type Option struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ParamSpec describes one tunable parameter of an effect block. ID is
// unscoped: it is unique within the block and becomes instance-scoped
// when the block is placed.
type ParamSpec struct {
	ID          string
	Label       string
	Type        ParamType
	Default     Value
	Min         float64
	Max         float64
	Step        float64
	Options     []Option
	DisplayUnit string
	Group       string
}

// EffectBlock is an immutable catalog entry. GLSLBody and PostMixGLSL
// reference parameters as $paramId tokens.
type EffectBlock struct {
	ID            string
	Name          string
	Description   string
	Category      Category
	Order         int // catalog display only
	RequiredUtils []Util
	Params        []ParamSpec
	GLSLBody      string
	PostMixGLSL   string // generators only
}

// Param looks up a parameter by its unscoped id.
func (b *EffectBlock) Param(id string) (ParamSpec, bool) {
	for _, p := range b.Params {
		if p.ID == id {
			return p, true
		}
	}
	return ParamSpec{}, false
}

// ActiveEffect places a block in a recipe. The ordered list of these is
// the recipe; InstanceID scopes the placement's uniforms.
type ActiveEffect struct {
	InstanceID string `json:"instanceId"`
	BlockID    string `json:"blockId"`
	Enabled    bool   `json:"enabled"`
}

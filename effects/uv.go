package effects

var pixelateBlock = &EffectBlock{
	ID:          "pixelate",
	Name:        "Pixelate",
	Description: "Snap UV coordinates to a pixel grid",
	Category:    UVTransform,
	Order:       10,
	Params: []ParamSpec{
		{ID: "size", Label: "Pixel Size", Type: Float, Default: Number(32), Min: 2, Max: 128, Step: 1, Group: "transform"},
	},
	GLSLBody: `{
  float _px = $size / u_resolution.x;
  float _py = $size / u_resolution.y;
  uv = vec2(floor(uv.x / _px) * _px, floor(uv.y / _py) * _py);
  st = uv * vec2(aspect, 1.0);
}`,
}

var kaleidoscopeBlock = &EffectBlock{
	ID:          "kaleidoscope",
	Name:        "Kaleidoscope",
	Description: "N-fold radial mirror symmetry",
	Category:    UVTransform,
	Order:       25,
	Params: []ParamSpec{
		{ID: "segments", Label: "Segments", Type: Float, Default: Number(6), Min: 2, Max: 12, Step: 1, Group: "transform"},
		{ID: "rotation", Label: "Rotation", Type: Float, Default: Number(0), Min: 0, Max: 360, Step: 1, DisplayUnit: Degrees, Group: "transform"},
	},
	GLSLBody: `{
  vec2 _center = uv - 0.5;
  float _angle = atan(_center.y, _center.x) + $rotation;
  float _dist = length(_center);
  float _seg = 6.28318 / $segments;
  _angle = mod(_angle, _seg);
  if (_angle > _seg * 0.5) { _angle = _seg - _angle; }
  uv = vec2(cos(_angle), sin(_angle)) * _dist + 0.5;
  st = uv * vec2(aspect, 1.0);
}`,
}

var diffuseBlurBlock = &EffectBlock{
	ID:            "diffuse-blur",
	Name:          "Diffuse Blur",
	Description:   "Noise-driven coordinate jitter for a frosted, diffused look",
	Category:      UVTransform,
	Order:         15,
	RequiredUtils: []Util{Hash, Noise},
	Params: []ParamSpec{
		{ID: "amount", Label: "Amount", Type: Float, Default: Number(0.05), Min: 0, Max: 0.3, Step: 0.005, Group: "transform"},
		{ID: "scale", Label: "Grain Scale", Type: Float, Default: Number(15), Min: 1, Max: 60, Step: 0.5, Group: "transform"},
		{ID: "speed", Label: "Speed", Type: Float, Default: Number(0.1), Min: 0, Max: 2, Step: 0.01, Group: "animation"},
	},
	GLSLBody: `{
  vec2 _dp = uv * $scale + t * $speed;
  vec2 _off = vec2(noise(_dp), noise(_dp + vec2(17.3, 9.1))) - 0.5;
  uv += _off * $amount;
  st = uv * vec2(aspect, 1.0);
}`,
}

var polarBlock = &EffectBlock{
	ID:          "polar",
	Name:        "Polar",
	Description: "Wrap coordinates around the center into angle and radius",
	Category:    UVTransform,
	Order:       30,
	Params: []ParamSpec{
		{ID: "scale", Label: "Radial Scale", Type: Float, Default: Number(1), Min: 0.25, Max: 8, Step: 0.05, Group: "transform"},
		{ID: "rotation", Label: "Rotation", Type: Float, Default: Number(0), Min: 0, Max: 360, Step: 1, DisplayUnit: Degrees, Group: "transform"},
	},
	GLSLBody: `{
  vec2 _pc = (uv - 0.5) * vec2(aspect, 1.0);
  float _pr = length(_pc) * $scale;
  float _pa = atan(_pc.y, _pc.x) + $rotation;
  uv = vec2(fract(_pa / 6.28318 + 0.5), _pr);
  st = uv * vec2(aspect, 1.0);
}`,
}

package effects

var gradientBlock = &EffectBlock{
	ID:          "gradient",
	Name:        "Gradient",
	Description: "Linear gradient between two colors",
	Category:    Generator,
	Order:       100,
	Params: []ParamSpec{
		{ID: "angle", Label: "Angle", Type: Float, Default: Number(0), Min: 0, Max: 360, Step: 1, DisplayUnit: Degrees, Group: "gradient"},
		{ID: "midpoint", Label: "Midpoint", Type: Float, Default: Number(0.5), Min: 0, Max: 1, Step: 0.01, Group: "gradient"},
		{ID: "softness", Label: "Softness", Type: Float, Default: Number(0.5), Min: 0.01, Max: 1, Step: 0.01, Group: "gradient"},
	},
	GLSLBody: `{
  float _ca = cos($angle);
  float _sa = sin($angle);
  float _grad = (uv.x - 0.5) * _ca + (uv.y - 0.5) * _sa + 0.5;
  mixFactor = smoothstep($midpoint - $softness * 0.5, $midpoint + $softness * 0.5, _grad);
}`,
}

var noiseBlock = &EffectBlock{
	ID:            "noise",
	Name:          "Noise",
	Description:   "Animated FBM noise field",
	Category:      Generator,
	Order:         110,
	RequiredUtils: []Util{Hash, Noise, FBM},
	Params: []ParamSpec{
		{ID: "scale", Label: "Scale", Type: Float, Default: Number(3), Min: 0.1, Max: 10, Step: 0.05, Group: "noise"},
		{ID: "speed", Label: "Speed", Type: Float, Default: Number(0.3), Min: 0, Max: 2, Step: 0.01, Group: "noise"},
	},
	GLSLBody: `{
  vec2 _np = st * $scale + t * $speed;
  mixFactor = fbm(_np);
}`,
}

var voronoiBlock = &EffectBlock{
	ID:            "voronoi",
	Name:          "Voronoi",
	Description:   "Animated cell patterns with shifting boundaries",
	Category:      Generator,
	Order:         115,
	RequiredUtils: []Util{Hash},
	Params: []ParamSpec{
		{ID: "scale", Label: "Scale", Type: Float, Default: Number(4), Min: 1, Max: 15, Step: 0.5, Group: "voronoi"},
		{ID: "speed", Label: "Speed", Type: Float, Default: Number(0.3), Min: 0, Max: 2, Step: 0.05, Group: "voronoi"},
		{ID: "jitter", Label: "Jitter", Type: Float, Default: Number(0.8), Min: 0, Max: 1, Step: 0.05, Group: "voronoi"},
		{ID: "edgeWidth", Label: "Edge Width", Type: Float, Default: Number(0.15), Min: 0.01, Max: 0.5, Step: 0.01, Group: "voronoi"},
	},
	GLSLBody: `{
  vec2 _p = st * $scale;
  vec2 _motion = vec2(sin(t * $speed * 0.7), cos(t * $speed)) * 0.5;
  _p += _motion;
  vec2 _cell = floor(_p);
  vec2 _frac = fract(_p);
  float _md = 8.0;
  float _md2 = 8.0;
  for (int j = -1; j <= 1; j++) {
    for (int i = -1; i <= 1; i++) {
      vec2 _nb = vec2(float(i), float(j));
      vec2 _id = _cell + _nb;
      vec2 _pt = vec2(hash(_id), hash(_id + vec2(57.0, 113.0)));
      _pt = 0.5 + $jitter * 0.5 * sin(t * $speed * 0.5 + 6.2831 * _pt);
      float _d = length(_nb + _pt - _frac);
      if (_d < _md) { _md2 = _md; _md = _d; }
      else if (_d < _md2) { _md2 = _d; }
    }
  }
  float _edge = _md2 - _md;
  mixFactor = smoothstep(0.0, $edgeWidth, _edge);
}`,
}

var causticsBlock = &EffectBlock{
	ID:            "caustics",
	Name:          "Caustics",
	Description:   "Swimming pool light caustics with layered Voronoi ridges",
	Category:      Generator,
	Order:         116,
	RequiredUtils: []Util{Hash, Noise},
	Params: []ParamSpec{
		{ID: "scale", Label: "Scale", Type: Float, Default: Number(5), Min: 1, Max: 15, Step: 0.5, Group: "caustics"},
		{ID: "speed", Label: "Speed", Type: Float, Default: Number(0.4), Min: 0, Max: 2, Step: 0.05, Group: "caustics"},
		{ID: "intensity", Label: "Intensity", Type: Float, Default: Number(1.5), Min: 0.5, Max: 5, Step: 0.1, Group: "caustics"},
		{ID: "sharpness", Label: "Sharpness", Type: Float, Default: Number(8), Min: 1, Max: 20, Step: 0.5, Group: "caustics"},
		{ID: "jitter", Label: "Jitter", Type: Float, Default: Number(0.8), Min: 0, Max: 1, Step: 0.05, Group: "caustics"},
		{ID: "distortion", Label: "Distortion", Type: Float, Default: Number(0.3), Min: 0, Max: 1, Step: 0.05, Group: "caustics"},
	},
	GLSLBody: `{
  // Noise-based UV distortion for organic water warping
  vec2 _cuv = st * $scale;
  vec2 _warp = vec2(
    noise(_cuv * 0.5 + vec2(t * $speed * 0.3, 0.0)),
    noise(_cuv * 0.5 + vec2(0.0, t * $speed * 0.3) + vec2(5.2, 1.3))
  );
  _cuv += (_warp - 0.5) * $distortion * 2.0;

  float _caustic = 1.0;

  // Layer 0: 1.0x scale
  {
    vec2 _p0 = _cuv;
    vec2 _motion0 = vec2(sin(t * $speed * 0.7), cos(t * $speed)) * 0.5;
    _p0 += _motion0;
    vec2 _cell0 = floor(_p0);
    vec2 _frac0 = fract(_p0);
    float _d1_0 = 8.0;
    float _d2_0 = 8.0;
    for (int j = -1; j <= 1; j++) {
      for (int i = -1; i <= 1; i++) {
        vec2 _nb0 = vec2(float(i), float(j));
        vec2 _id0 = _cell0 + _nb0;
        vec2 _pt0 = vec2(hash(_id0), hash(_id0 + vec2(57.0, 113.0)));
        _pt0 = 0.5 + $jitter * 0.5 * sin(t * $speed * 0.5 + 6.2831 * _pt0);
        float _dd0 = length(_nb0 + _pt0 - _frac0);
        if (_dd0 < _d1_0) { _d2_0 = _d1_0; _d1_0 = _dd0; }
        else if (_dd0 < _d2_0) { _d2_0 = _dd0; }
      }
    }
    float _ridge0 = _d2_0 - _d1_0;
    _caustic *= 1.0 / (1.0 + pow(_ridge0 * $sharpness, 2.0));
  }

  // Layer 1: 0.7x scale, offset in space and time
  {
    vec2 _p1 = _cuv * 0.7 + vec2(3.7, 1.9);
    vec2 _motion1 = vec2(cos(t * $speed * 0.9 + 1.0), sin(t * $speed * 0.6 + 2.0)) * 0.5;
    _p1 += _motion1;
    vec2 _cell1 = floor(_p1);
    vec2 _frac1 = fract(_p1);
    float _d1_1 = 8.0;
    float _d2_1 = 8.0;
    for (int j = -1; j <= 1; j++) {
      for (int i = -1; i <= 1; i++) {
        vec2 _nb1 = vec2(float(i), float(j));
        vec2 _id1 = _cell1 + _nb1;
        vec2 _pt1 = vec2(hash(_id1), hash(_id1 + vec2(57.0, 113.0)));
        _pt1 = 0.5 + $jitter * 0.5 * sin(t * $speed * 0.6 + 6.2831 * _pt1 + 1.5);
        float _dd1 = length(_nb1 + _pt1 - _frac1);
        if (_dd1 < _d1_1) { _d2_1 = _d1_1; _d1_1 = _dd1; }
        else if (_dd1 < _d2_1) { _d2_1 = _dd1; }
      }
    }
    float _ridge1 = _d2_1 - _d1_1;
    _caustic *= 1.0 / (1.0 + pow(_ridge1 * $sharpness, 2.0));
  }

  // Layer 2: 0.45x scale, different offset
  {
    vec2 _p2 = _cuv * 0.45 + vec2(7.1, 4.3);
    vec2 _motion2 = vec2(sin(t * $speed * 0.5 + 3.0), cos(t * $speed * 0.8 + 4.0)) * 0.5;
    _p2 += _motion2;
    vec2 _cell2 = floor(_p2);
    vec2 _frac2 = fract(_p2);
    float _d1_2 = 8.0;
    float _d2_2 = 8.0;
    for (int j = -1; j <= 1; j++) {
      for (int i = -1; i <= 1; i++) {
        vec2 _nb2 = vec2(float(i), float(j));
        vec2 _id2 = _cell2 + _nb2;
        vec2 _pt2 = vec2(hash(_id2), hash(_id2 + vec2(57.0, 113.0)));
        _pt2 = 0.5 + $jitter * 0.5 * sin(t * $speed * 0.7 + 6.2831 * _pt2 + 3.0);
        float _dd2 = length(_nb2 + _pt2 - _frac2);
        if (_dd2 < _d1_2) { _d2_2 = _d1_2; _d1_2 = _dd2; }
        else if (_dd2 < _d2_2) { _d2_2 = _dd2; }
      }
    }
    float _ridge2 = _d2_2 - _d1_2;
    _caustic *= 1.0 / (1.0 + pow(_ridge2 * $sharpness, 2.0));
  }

  // Sqrt re-expands compressed range from multiplying 3 layers
  _caustic = pow(_caustic, 0.5) * $intensity;
  mixFactor = clamp(_caustic, 0.0, 1.0);
}`,
}

var chladniBlock = &EffectBlock{
	ID:            "chladni",
	Name:          "Chladni",
	Description:   "Standing wave nodal patterns that morph between modes",
	Category:      Generator,
	Order:         118,
	RequiredUtils: []Util{Hash},
	Params: []ParamSpec{
		{ID: "modeA", Label: "Mode A", Type: Float, Default: Number(5), Min: 1, Max: 12, Step: 0.1, Group: "modes"},
		{ID: "modeB", Label: "Mode B", Type: Float, Default: Number(3), Min: 1, Max: 12, Step: 0.1, Group: "modes"},
		{ID: "morph", Label: "Morph Speed", Type: Float, Default: Number(0.15), Min: 0, Max: 1, Step: 0.01, Group: "animation"},
		{ID: "lineWidth", Label: "Line Width", Type: Float, Default: Number(0.06), Min: 0.01, Max: 0.3, Step: 0.005, Group: "style"},
		{ID: "glow", Label: "Glow", Type: Float, Default: Number(0.4), Min: 0, Max: 1, Step: 0.01, Group: "style"},
		{ID: "layers", Label: "Dual Layer", Type: Bool, Default: Number(1), Group: "style"},
	},
	GLSLBody: `{
  // Center UVs to [-1, 1] range
  vec2 _p = (uv - 0.5) * 2.0;
  _p.x *= aspect;

  // Morph modes over time: cycle through mode combinations
  float _mt = t * $morph;
  // Smoothly vary the effective mode numbers around the base values
  float _n1 = $modeA + sin(_mt * 0.7) * 1.5;
  float _m1 = $modeB + cos(_mt * 0.9) * 1.5;

  // Chladni pattern: sin(n*pi*x)*sin(m*pi*y) + sin(m*pi*x)*sin(n*pi*y)
  // Nodal lines are where this equals zero
  float _pi = 3.14159265;
  float _chladni1 = sin(_n1 * _pi * _p.x) * sin(_m1 * _pi * _p.y)
                   + sin(_m1 * _pi * _p.x) * sin(_n1 * _pi * _p.y);

  // Convert to bright nodal lines: thin bright lines where pattern ~ 0
  float _dist1 = abs(_chladni1);
  float _line1 = 1.0 / (1.0 + pow(_dist1 / $lineWidth, 2.0));

  // Soft glow around the lines
  float _glow1 = $glow * 0.5 / (1.0 + _dist1 * _dist1 * 8.0);

  float _pattern = _line1 + _glow1;

  // Optional second layer with offset modes for complexity
  if ($layers > 0.5) {
    float _n2 = $modeA + cos(_mt * 0.5 + 2.0) * 2.0;
    float _m2 = $modeB + sin(_mt * 0.6 + 1.5) * 2.0;

    // Antisymmetric mode (minus instead of plus) for visual variety
    float _chladni2 = sin(_n2 * _pi * _p.x) * sin(_m2 * _pi * _p.y)
                     - sin(_m2 * _pi * _p.x) * sin(_n2 * _pi * _p.y);

    float _dist2 = abs(_chladni2);
    float _line2 = 1.0 / (1.0 + pow(_dist2 / ($lineWidth * 0.7), 2.0));
    float _glow2 = $glow * 0.3 / (1.0 + _dist2 * _dist2 * 8.0);

    // Screen blend the two layers
    float _layer2 = (_line2 + _glow2) * 0.6;
    _pattern = _pattern + _layer2 - _pattern * _layer2;
  }

  mixFactor = clamp(_pattern, 0.0, 1.0);
}`,
}

var domainWarpBlock = &EffectBlock{
	ID:            "domain-warp",
	Name:          "Domain Warp",
	Description:   "Warped FBM noise with organic flow",
	Category:      Generator,
	Order:         120,
	RequiredUtils: []Util{Hash, Noise, FBM},
	Params: []ParamSpec{
		{ID: "noiseScale", Label: "Noise Scale", Type: Float, Default: Number(0.8), Min: 0.1, Max: 5, Step: 0.05, Group: "noise"},
		{ID: "warpIntensity", Label: "Warp Intensity", Type: Float, Default: Number(4), Min: 0, Max: 10, Step: 0.1, Group: "noise"},
		{ID: "rotation", Label: "Rotation", Type: Float, Default: Number(40), Min: 0, Max: 360, Step: 1, DisplayUnit: Degrees, Group: "transform"},
		{ID: "driftSpeed1", Label: "Drift Speed X", Type: Float, Default: Number(0.03), Min: 0, Max: 0.2, Step: 0.001, Group: "animation"},
		{ID: "driftSpeed2", Label: "Drift Speed Y", Type: Float, Default: Number(0.04), Min: 0, Max: 0.2, Step: 0.001, Group: "animation"},
		{ID: "mixLow", Label: "Mix Low", Type: Float, Default: Number(0.25), Min: 0, Max: 1, Step: 0.01, Group: "blending"},
		{ID: "mixHigh", Label: "Mix High", Type: Float, Default: Number(0.75), Min: 0, Max: 1, Step: 0.01, Group: "blending"},
	},
	GLSLBody: `{
  float _ca = cos($rotation);
  float _sa = sin($rotation);
  vec2 _rot = vec2(st.x * _ca - st.y * _sa, st.x * _sa + st.y * _ca);

  vec2 _drift1 = vec2(sin(t * $driftSpeed1) * 0.5, cos(t * $driftSpeed2) * 0.5);
  vec2 _drift2 = vec2(cos(t * 0.025) * 0.5, sin(t * 0.035) * 0.5);
  float _drift3 = sin(t * 0.02) * 0.5;

  vec2 _q = vec2(
    fbm(_rot * $noiseScale + vec2(0.0, 0.0) + _drift1),
    fbm(_rot * $noiseScale + vec2(5.2, 1.3) + _drift1.yx)
  );

  vec2 _r = vec2(
    fbm(_rot * $noiseScale + $warpIntensity * _q + vec2(1.7, 9.2) + _drift2),
    fbm(_rot * $noiseScale + $warpIntensity * _q + vec2(8.3, 2.8) + _drift2.yx)
  );

  float _f = fbm(_rot * $noiseScale + $warpIntensity * _r + _drift3);
  mixFactor = smoothstep($mixLow, $mixHigh, _f);
  mixFactor += 0.15 * (_q.x - 0.5);
  mixFactor = clamp(mixFactor, 0.0, 1.0);
}`,
	PostMixGLSL: `{
  color *= 0.85 + 0.15 * smoothstep(0.0, 0.5, mixFactor);
}`,
}

var waveBlock = &EffectBlock{
	ID:          "wave",
	Name:        "Wave",
	Description: "Animated sinusoidal wave pattern",
	Category:    Generator,
	Order:       130,
	Params: []ParamSpec{
		{ID: "frequency", Label: "Frequency", Type: Float, Default: Number(4), Min: 0.5, Max: 20, Step: 0.1, Group: "waves"},
		{ID: "amplitude", Label: "Amplitude", Type: Float, Default: Number(0.3), Min: 0, Max: 1, Step: 0.01, Group: "waves"},
		{ID: "speed", Label: "Speed", Type: Float, Default: Number(0.5), Min: 0, Max: 3, Step: 0.01, Group: "waves"},
		{ID: "angle", Label: "Direction", Type: Float, Default: Number(0), Min: 0, Max: 360, Step: 1, DisplayUnit: Degrees, Group: "waves"},
	},
	GLSLBody: `{
  float _ca = cos($angle);
  float _sa = sin($angle);
  float _coord = st.x * _ca + st.y * _sa;
  float _wave = sin(_coord * $frequency - t * $speed) * $amplitude;
  mixFactor = 0.5 + _wave;
}`,
}

var glowWavesBlock = &EffectBlock{
	ID:            "glow-waves",
	Name:          "Glow Waves",
	Description:   "Sine-wave displacement with breathing glow",
	Category:      Generator,
	Order:         140,
	RequiredUtils: []Util{Hash, Noise, FBM},
	Params: []ParamSpec{
		{ID: "maskStart", Label: "Mask Start", Type: Float, Default: Number(0.45), Min: 0, Max: 1, Step: 0.01, Group: "mask"},
		{ID: "waveFreq", Label: "Wave Frequency", Type: Float, Default: Number(5), Min: 1, Max: 20, Step: 0.1, Group: "waves"},
		{ID: "waveSpeed", Label: "Wave Speed", Type: Float, Default: Number(0.25), Min: 0, Max: 2, Step: 0.01, Group: "waves"},
		{ID: "displacement", Label: "Displacement", Type: Float, Default: Number(0.3), Min: 0, Max: 0.8, Step: 0.01, Group: "waves"},
		{ID: "brightness", Label: "Brightness Pulse", Type: Float, Default: Number(0.3), Min: 0, Max: 1, Step: 0.01, Group: "effects"},
		{ID: "breathColor", Label: "Glow Tint", Type: Color, Default: Text("#1a0a00"), Group: "colors"},
	},
	GLSLBody: `{
  vec2 _guv = uv;
  _guv.y = 1.0 - _guv.y;
  float _mask = smoothstep($maskStart, 1.0, _guv.y);
  float _intensity = _mask * _mask;

  float _w1 = sin(st.x * $waveFreq - t * $waveSpeed + st.y * 0.8);
  float _w2 = sin(st.x * 3.2 + t * 0.18 + 1.4) * 0.7;
  float _w3 = sin(st.x * 8.0 - t * 0.30 - st.y * 1.2 + 2.8) * 0.4;
  float _w4 = sin(st.x * 1.8 + t * 0.12 + st.y * 0.5 + 4.1) * 0.5;
  float _w5 = sin(st.x * 6.3 - t * 0.14 + st.y * 1.7 + 0.9) * 0.35;
  float _w6 = sin(st.x * 2.1 + t * 0.23 - st.y * 0.6 + 5.7) * 0.55;
  float _w7 = sin(st.x * 11.0 - t * 0.08 + st.y * 2.3 + 3.1) * 0.2;
  float _w8 = sin(st.x * 0.9 + t * 0.07 + st.y * 0.3 + 7.4) * 0.65;
  float _wave = (_w1 + _w2 + _w3 + _w4 + _w5 + _w6 + _w7 + _w8) / 4.35;

  float _displaceAmount = _intensity * $displacement;
  float _yDisplace = _wave * _displaceAmount;

  float _gradY = _guv.y + _yDisplace;
  _gradY = clamp(_gradY, 0.0, 1.0);

  float _gradientPos = mix(_guv.y, _gradY, _mask);
  mixFactor = _gradientPos;
}`,
	PostMixGLSL: `{
  vec2 _guv2 = uv;
  _guv2.y = 1.0 - _guv2.y;
  float _mask2 = smoothstep($maskStart, 1.0, _guv2.y);
  float _intensity2 = _mask2 * _mask2;

  float _w1b = sin(st.x * $waveFreq - t * $waveSpeed + st.y * 0.8);
  float _w2b = sin(st.x * 3.2 + t * 0.18 + 1.4) * 0.7;
  float _w3b = sin(st.x * 8.0 - t * 0.30 - st.y * 1.2 + 2.8) * 0.4;
  float _w4b = sin(st.x * 1.8 + t * 0.12 + st.y * 0.5 + 4.1) * 0.5;
  float _waveb = (_w1b + _w2b + _w3b + _w4b) / 2.6;

  float _brightPulse = 0.5 + 0.5 * _waveb;
  float _brightnessBoost = 1.0 + _intensity2 * $brightness * _brightPulse;
  color *= mix(1.0, _brightnessBoost, _mask2);

  float _breath = smoothstep(-0.2, 0.5, _waveb);
  color += _intensity2 * $breathColor * _breath;
}`,
}

var spiralBlock = &EffectBlock{
	ID:          "spiral",
	Name:        "Spiral",
	Description: "Layered spiral arms with glow and interference",
	Category:    Generator,
	Order:       150,
	Params: []ParamSpec{
		{ID: "arms", Label: "Arms", Type: Float, Default: Number(4), Min: 1, Max: 12, Step: 1, Group: "spiral"},
		{ID: "tightness", Label: "Tightness", Type: Float, Default: Number(8), Min: 1, Max: 30, Step: 0.5, Group: "spiral"},
		{ID: "speed", Label: "Speed", Type: Float, Default: Number(0.5), Min: 0, Max: 3, Step: 0.1, Group: "spiral"},
		{ID: "lineWidth", Label: "Line Width", Type: Float, Default: Number(0.06), Min: 0.01, Max: 0.3, Step: 0.005, Group: "look"},
		{ID: "glow", Label: "Glow", Type: Float, Default: Number(0.4), Min: 0, Max: 1, Step: 0.01, Group: "look"},
	},
	GLSLBody: `{
  vec2 _center = st - vec2(aspect * 0.5, 0.5);
  float _angle = atan(_center.y, _center.x);
  float _dist = length(_center);

  // Primary spiral: Lorentzian line profile
  float _s1 = sin($arms * _angle + _dist * $tightness - t * $speed);
  float _line1 = 1.0 / (1.0 + pow(abs(_s1) / $lineWidth, 2.0));

  // Secondary spiral: offset arms, thinner, counter-rotating
  float _s2 = sin($arms * _angle - _dist * $tightness * 0.7 + t * $speed * 0.6 + 1.57);
  float _line2 = 1.0 / (1.0 + pow(abs(_s2) / ($lineWidth * 0.5), 2.0)) * 0.5;

  // Radial ripple modulation: pulses outward along the spiral
  float _ripple = 0.5 + 0.5 * sin(_dist * 12.0 - t * $speed * 2.0);
  _ripple = mix(1.0, _ripple, 0.3);

  // Glow halo per spiral
  float _glow1 = $glow * 0.4 / (1.0 + _s1 * _s1 * 6.0);
  float _glow2 = $glow * 0.2 / (1.0 + _s2 * _s2 * 6.0);

  // Screen blend both spirals
  float _primary = (_line1 + _glow1) * _ripple;
  float _secondary = _line2 + _glow2;
  float _pattern = _primary + _secondary - _primary * _secondary;

  // Radial fade: brightest near center, fading outward
  float _radialFade = 1.0 / (1.0 + _dist * _dist * 0.8);

  mixFactor = clamp(_pattern * _radialFade, 0.0, 1.0);
}`,
}

var ledBarsBlock = &EffectBlock{
	ID:            "led-bars",
	Name:          "LED Bars",
	Description:   "Segmented equalizer columns bouncing on layered sine levels",
	Category:      Generator,
	Order:         160,
	RequiredUtils: []Util{Hash},
	Params: []ParamSpec{
		{ID: "bars", Label: "Bars", Type: Float, Default: Number(24), Min: 4, Max: 64, Step: 1, Group: "grid"},
		{ID: "segments", Label: "Segments", Type: Float, Default: Number(16), Min: 4, Max: 48, Step: 1, Group: "grid"},
		{ID: "gap", Label: "Gap", Type: Float, Default: Number(0.2), Min: 0, Max: 0.6, Step: 0.01, Group: "grid"},
		{ID: "speed", Label: "Speed", Type: Float, Default: Number(0.6), Min: 0, Max: 3, Step: 0.05, Group: "animation"},
	},
	GLSLBody: `{
  vec2 _lc = vec2(uv.x * $bars, uv.y * $segments);
  vec2 _lid = floor(_lc);
  vec2 _lf = fract(_lc);
  float _level = 0.5 + 0.35 * sin(_lid.x * 0.7 + t * $speed * 3.0) + 0.15 * sin(_lid.x * 1.9 - t * $speed * 5.0);
  _level += (hash(vec2(_lid.x, floor(t * $speed * 8.0))) - 0.5) * 0.2;
  float _lit = step(_lid.y / $segments, _level);
  float _half = $gap * 0.5;
  float _mask = step(_half, _lf.x) * step(_lf.x, 1.0 - _half) * step(_half, _lf.y) * step(_lf.y, 1.0 - _half);
  mixFactor = _lit * _mask * (0.4 + 0.6 * uv.y);
}`,
}

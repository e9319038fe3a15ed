package effects

var dotLattice3dBlock = &EffectBlock{
	ID:            "dot-lattice-3d",
	Name:          "Dot Lattice 3D",
	Description:   "Perspective dot grid with cymatic wave interference",
	Category:      Generator,
	Order:         170,
	RequiredUtils: []Util{Hash},
	Params: []ParamSpec{
		{ID: "density", Label: "Density", Type: Float, Default: Number(20), Min: 5, Max: 50, Step: 1, Group: "grid"},
		{ID: "perspective", Label: "Perspective", Type: Float, Default: Number(0.5), Min: 0, Max: 1, Step: 0.01, Group: "grid"},
		{ID: "dotSize", Label: "Dot Size", Type: Float, Default: Number(0.04), Min: 0.01, Max: 0.12, Step: 0.005, Group: "grid"},
		{ID: "waveFreq", Label: "Wave Frequency", Type: Float, Default: Number(8), Min: 2, Max: 30, Step: 0.5, Group: "cymatic"},
		{ID: "waveSpeed", Label: "Wave Speed", Type: Float, Default: Number(0.3), Min: 0, Max: 2, Step: 0.05, Group: "cymatic"},
		{ID: "twinkle", Label: "Twinkle", Type: Float, Default: Number(0.3), Min: 0, Max: 1, Step: 0.01, Group: "cymatic"},
		{ID: "accentColor", Label: "Accent Color", Type: Color, Default: Text("#ff2020"), Group: "color"},
		{ID: "accentEnabled", Label: "Accent Dots", Type: Bool, Default: Number(1), Group: "color"},
	},
	GLSLBody: `{
  vec2 _uvc = (uv - 0.5) * vec2(aspect, 1.0);

  // Camera above origin, looking down at an angle
  // perspective=0 -> steep (nearly top-down), perspective=1 -> shallow (dramatic depth)
  float _tilt = 0.8 - $perspective * 0.5;
  vec3 _ro = vec3(0.0, 3.0, 0.0);
  vec3 _fwd = vec3(0.0, -_tilt, sqrt(1.0 - _tilt * _tilt));
  vec3 _rgt = vec3(1.0, 0.0, 0.0);
  vec3 _up = normalize(cross(_fwd, _rgt));
  vec3 _rd = normalize(_fwd + _uvc.x * _rgt + _uvc.y * _up);

  // Wave source positions: orbit slowly for pattern morphing
  float _morphT = t * $waveSpeed * 0.15;
  vec2 _src1 = vec2(sin(_morphT * 1.1) * 5.0, cos(_morphT * 0.9) * 5.0);
  vec2 _src2 = vec2(cos(_morphT * 0.7) * 6.0, sin(_morphT * 1.3) * 4.0);
  vec2 _dir3 = vec2(cos(_morphT * 0.5), sin(_morphT * 0.5));

  float _accum = 0.0;

  // March through 8 horizontal planes below the camera
  for (int _i = 0; _i < 8; _i++) {
    float _planeY = -float(_i) * 0.5;

    // Ray-plane intersection: skip if ray is nearly horizontal
    if (_rd.y < -0.001) {
      float _t = (_planeY - _ro.y) / _rd.y;

      if (_t > 0.0) {
        vec3 _hit = _ro + _rd * _t;
        float _dist = length(_hit - _ro);

        // Grid cell at hit point
        vec2 _gp = _hit.xz * $density;
        vec2 _cell = floor(_gp);
        vec2 _frac = fract(_gp) - 0.5;

        float _h = hash(_cell);
        float _dotDist = length(_frac);

        // Distance-scaled dot size (closer = bigger)
        float _dSize = $dotSize * 3.0 / max(_dist, 0.1);
        float _dot = 1.0 - smoothstep(_dSize * 0.5, _dSize, _dotDist);

        // Cymatic interference: 3 wave sources
        vec2 _cw = _cell / $density;
        float _w1 = sin(length(_cw - _src1) * $waveFreq - t * $waveSpeed);
        float _w2 = sin(length(_cw - _src2) * $waveFreq * 1.2 - t * $waveSpeed * 0.8);
        float _w3 = sin(dot(_cw, _dir3) * $waveFreq * 0.8 - t * $waveSpeed * 1.1);
        float _interference = (_w1 + _w2 + _w3) / 3.0;
        float _cymatic = smoothstep(-0.1, 0.3, _interference);

        // Per-dot twinkle shimmer
        float _twinklePhase = _h * 6.2832;
        float _twinkleAmt = $twinkle * 0.4;
        float _shimmer = 1.0 - _twinkleAmt + _twinkleAmt * sin(t * $twinkle * 6.0 + _twinklePhase);

        // Inverse-square distance fade
        float _fade = 3.0 / (_dist * _dist * 0.1 + 1.0);
        _fade = min(_fade, 1.0);

        _accum += _dot * _cymatic * _shimmer * _fade;
      }
    }
  }

  mixFactor = clamp(_accum, 0.0, 1.0);
}`,
	PostMixGLSL: `{
  if ($accentEnabled > 0.5) {
    vec2 _uvc2 = (uv - 0.5) * vec2(aspect, 1.0);
    float _tilt2 = 0.8 - $perspective * 0.5;
    vec3 _ro2 = vec3(0.0, 3.0, 0.0);
    vec3 _fwd2 = vec3(0.0, -_tilt2, sqrt(1.0 - _tilt2 * _tilt2));
    vec3 _rgt2 = vec3(1.0, 0.0, 0.0);
    vec3 _up2 = normalize(cross(_fwd2, _rgt2));
    vec3 _rd2 = normalize(_fwd2 + _uvc2.x * _rgt2 + _uvc2.y * _up2);

    if (_rd2.y < -0.001) {
      float _t2 = (-_ro2.y) / _rd2.y;
      if (_t2 > 0.0) {
        vec3 _hit2 = _ro2 + _rd2 * _t2;
        vec2 _gp2 = _hit2.xz * $density;
        vec2 _cell2 = floor(_gp2);

        float _isAccent = step(0.98, hash(_cell2 + vec2(73.0, 159.0)));
        float _lum = dot(color, vec3(0.299, 0.587, 0.114));
        color = mix(color, $accentColor * _lum * 2.5, _isAccent * step(0.05, _lum));
      }
    }
  }
}`,
}

var moireFieldsBlock = &EffectBlock{
	ID:            "moire-fields",
	Name:          "Moire Fields",
	Description:   "Overlapping rotated line grids creating shimmering moire interference",
	Category:      Generator,
	Order:         175,
	RequiredUtils: []Util{Hash, Noise},
	Params: []ParamSpec{
		{ID: "lineCount", Label: "Line Count", Type: Float, Default: Number(40), Min: 10, Max: 80, Step: 1, Group: "pattern"},
		{ID: "lineWidth", Label: "Line Width", Type: Float, Default: Number(0.06), Min: 0.01, Max: 0.2, Step: 0.005, Group: "pattern"},
		{ID: "rotation", Label: "Rotation", Type: Float, Default: Number(0), Min: 0, Max: 360, Step: 1, DisplayUnit: Degrees, Group: "pattern"},
		{ID: "warp", Label: "Warp", Type: Float, Default: Number(0.15), Min: 0, Max: 0.5, Step: 0.01, Group: "pattern"},
		{ID: "drift", Label: "Drift Speed", Type: Float, Default: Number(0.08), Min: 0, Max: 0.5, Step: 0.01, Group: "animation"},
		{ID: "glow", Label: "Glow", Type: Float, Default: Number(0.4), Min: 0, Max: 1, Step: 0.01, Group: "look"},
	},
	GLSLBody: `{
  vec2 _ctr = (uv - 0.5) * vec2(aspect, 1.0);
  float _freq = $lineCount;
  float _lw = $lineWidth;

  // Noise-based spatial warping: breaks the uniform grid
  vec2 _warpOff = vec2(
    noise(_ctr * 2.0 + vec2(t * 0.05, 0.0)),
    noise(_ctr * 2.0 + vec2(0.0, t * 0.05) + vec2(5.2, 1.3))
  );
  vec2 _warped = _ctr + (_warpOff - 0.5) * $warp;

  // Three grid angles: 0 deg, 60 deg, 120 deg relative to global rotation
  // Each drifts at different speed for continuously shifting interference
  float _baseAngle = $rotation;
  float _drift1 = t * $drift;
  float _drift2 = t * $drift * 1.37;
  float _drift3 = t * $drift * 0.73;

  float _a1 = _baseAngle + _drift1;
  float _a2 = _baseAngle + 1.0472 + _drift2;
  float _a3 = _baseAngle + 2.0944 + _drift3;

  // Rotated projections through warped space
  float _p1 = _warped.x * cos(_a1) + _warped.y * sin(_a1);
  float _p2 = _warped.x * cos(_a2) + _warped.y * sin(_a2);
  float _p3 = _warped.x * cos(_a3) + _warped.y * sin(_a3);

  // Raw sine stripes
  float _s1 = sin(_p1 * _freq * 6.2832);
  float _s2 = sin(_p2 * _freq * 6.2832);
  float _s3 = sin(_p3 * _freq * 6.2832);

  // Lorentzian line profile: luminous soft glow like Chladni
  float _sharp = _lw * 2.0;
  float _line1 = 1.0 / (1.0 + pow((1.0 - abs(_s1)) / _sharp, 2.0));
  float _line2 = 1.0 / (1.0 + pow((1.0 - abs(_s2)) / _sharp, 2.0));
  float _line3 = 1.0 / (1.0 + pow((1.0 - abs(_s3)) / _sharp, 2.0));

  // Interference: multiply grids for moire, add glow halos
  float _moire = _line1 * _line2 * _line3;
  _moire = pow(_moire, 0.5);

  // Soft glow from individual grids bleeding through
  float _glowSum = (_line1 + _line2 + _line3) / 3.0;
  float _halo = $glow * _glowSum * 0.4;

  // Radial density falloff: pattern fades gently at edges
  float _radial = 1.0 - smoothstep(0.3, 0.8, length(_ctr));

  mixFactor = clamp((_moire + _halo) * _radial, 0.0, 1.0);
}`,
}

var starfieldBlock = &EffectBlock{
	ID:            "starfield",
	Name:          "Starfield",
	Description:   "Multi-layer parallax starfield with depth and motion streaking",
	Category:      Generator,
	Order:         180,
	RequiredUtils: []Util{Hash, Noise},
	Params: []ParamSpec{
		{ID: "layers", Label: "Layers", Type: Select, Default: Number(6), Options: []Option{{"4 Layers", 4}, {"6 Layers", 6}, {"8 Layers", 8}}, Group: "field"},
		{ID: "density", Label: "Density", Type: Float, Default: Number(15), Min: 5, Max: 30, Step: 1, Group: "field"},
		{ID: "speed", Label: "Speed", Type: Float, Default: Number(0.1), Min: 0, Max: 0.5, Step: 0.01, Group: "animation"},
		{ID: "streak", Label: "Streak", Type: Float, Default: Number(0.3), Min: 0, Max: 1, Step: 0.01, Group: "look"},
		{ID: "twinkle", Label: "Twinkle", Type: Float, Default: Number(0.5), Min: 0, Max: 1, Step: 0.01, Group: "look"},
		{ID: "brightness", Label: "Brightness", Type: Float, Default: Number(1.5), Min: 0.5, Max: 3, Step: 0.05, Group: "look"},
		{ID: "nebula", Label: "Nebula", Type: Float, Default: Number(0.3), Min: 0, Max: 1, Step: 0.01, Group: "look"},
	},
	GLSLBody: `{
  float _accum = 0.0;
  vec2 _ctr = (uv - 0.5) * vec2(aspect, 1.0);
  float _layers = $layers;

  // Nebula density field: large-scale noise structure
  float _neb1 = noise(_ctr * 1.5 + vec2(t * 0.01, 0.0));
  float _neb2 = noise(_ctr * 3.0 + vec2(0.0, t * 0.015) + vec2(5.2, 1.3));
  float _nebula = (_neb1 * 0.6 + _neb2 * 0.4);
  _nebula = smoothstep(0.25, 0.75, _nebula);

  // Unrolled 8-layer loop
  for (int _i = 0; _i < 8; _i++) {
    if (float(_i) >= _layers) break;

    float _depth = 1.0 + float(_i) * 0.5;
    float _layerScale = $density * _depth;
    float _layerSpeed = $speed * (1.0 / _depth);

    // Scrolling UV per layer: each drifts in a slightly different direction
    float _h0 = float(_i) * 0.37;
    vec2 _scroll = vec2(
      sin(_h0 * 5.0) * 0.3 + 0.1,
      cos(_h0 * 3.7) * 0.2 - 0.5
    ) * _layerSpeed * t;

    vec2 _suv = _ctr * _layerScale + _scroll;
    vec2 _cell = floor(_suv);
    vec2 _frac = fract(_suv) - 0.5;

    // Star properties from hash
    float _h1 = hash(_cell + float(_i) * 100.0);
    float _h2 = hash(_cell + float(_i) * 100.0 + vec2(31.0, 97.0));
    float _h3 = hash(_cell + float(_i) * 100.0 + vec2(73.0, 13.0));

    // Skip dim stars in sparse regions (nebula-driven density)
    float _densityThreshold = (1.0 - $nebula) * 0.3;
    float _localDensity = noise(vec2(_cell * 0.1) + float(_i) * 7.0);
    float _nebulaBoost = mix(1.0, _nebula * 1.5 + 0.5, $nebula);
    if (_h3 < _densityThreshold * (1.0 - _localDensity)) continue;

    // Jitter star position within cell
    vec2 _starPos = vec2(_h1 - 0.5, _h2 - 0.5) * 0.8;
    vec2 _delta = _frac - _starPos;

    // Motion streak: elongate along scroll direction
    float _streakLen = $streak * _layerSpeed * 3.0;
    vec2 _streakDir = normalize(_scroll + vec2(0.001));
    float _along = abs(dot(_delta, _streakDir));
    float _perp = abs(dot(_delta, vec2(-_streakDir.y, _streakDir.x)));
    float _starDist = sqrt(_perp * _perp + _along * _along / (1.0 + _streakLen * 10.0));

    // Star size: varies with hash and depth, big stars are rare
    float _sizeBase = mix(0.06, 0.25, _h3 * _h3);
    float _size = _sizeBase / _depth;

    // Lorentzian glow: brighter core, wider halo than Gaussian
    float _r2 = _starDist * _starDist;
    float _s2 = _size * _size * 0.015;
    float _glow = _s2 / (_r2 + _s2);

    // Twinkle
    float _phase = _h1 * 6.2832;
    float _twinkleVal = 1.0 - $twinkle * 0.5 + $twinkle * 0.5 * sin(t * (2.0 + _h2 * 4.0) + _phase);

    // Depth fade
    float _depthFade = 1.0 / (_depth * 0.5);

    _accum += _glow * _twinkleVal * _depthFade * $brightness * _nebulaBoost;
  }

  // Add subtle nebula background glow
  float _nebBg = _nebula * $nebula * 0.15;
  _accum += _nebBg;

  mixFactor = clamp(_accum, 0.0, 1.0);
}`,
}

var waveMeshBlock = &EffectBlock{
	ID:          "wave-mesh",
	Name:        "Wave Mesh",
	Description: "Perspective wireframe grid with wave displacement",
	Category:    Generator,
	Order:       185,
	Params: []ParamSpec{
		{ID: "gridSize", Label: "Grid Size", Type: Float, Default: Number(20), Min: 5, Max: 40, Step: 1, Group: "grid"},
		{ID: "perspective", Label: "Perspective", Type: Float, Default: Number(0.6), Min: 0.1, Max: 1, Step: 0.01, Group: "grid"},
		{ID: "waveFreq", Label: "Wave Frequency", Type: Float, Default: Number(4), Min: 1, Max: 10, Step: 0.1, Group: "wave"},
		{ID: "waveAmp", Label: "Wave Amplitude", Type: Float, Default: Number(0.15), Min: 0, Max: 0.5, Step: 0.01, Group: "wave"},
		{ID: "waveSpeed", Label: "Wave Speed", Type: Float, Default: Number(0.12), Min: 0, Max: 0.5, Step: 0.01, Group: "animation"},
		{ID: "lineWidth", Label: "Line Width", Type: Float, Default: Number(0.015), Min: 0.005, Max: 0.05, Step: 0.001, Group: "look"},
	},
	GLSLBody: `{
  vec2 _uvc = (uv - 0.5) * vec2(aspect, 1.0);

  // Camera setup: same pattern as dot-lattice-3d
  float _tilt = 0.8 - $perspective * 0.5;
  vec3 _ro = vec3(0.0, 3.0, 0.0);
  vec3 _fwd = vec3(0.0, -_tilt, sqrt(1.0 - _tilt * _tilt));
  vec3 _rgt = vec3(1.0, 0.0, 0.0);
  vec3 _up = normalize(cross(_fwd, _rgt));
  vec3 _rd = normalize(_fwd + _uvc.x * _rgt + _uvc.y * _up);

  float _grid = 0.0;

  // Intersect single ground plane (y=0)
  if (_rd.y < -0.001) {
    float _t = -_ro.y / _rd.y;

    if (_t > 0.0) {
      vec3 _hit = _ro + _rd * _t;
      float _dist = length(_hit - _ro);

      // World grid coordinates
      vec2 _wp = _hit.xz * $gridSize;

      // Wave displacement: three crossing sine waves for organic irregularity
      float _wt = t * $waveSpeed * 6.2832;
      float _waveX = sin(_hit.x * $waveFreq + _wt) * $waveAmp
                    + sin(_hit.x * $waveFreq * 1.7 + _hit.z * 0.5 + _wt * 0.8) * $waveAmp * 0.3;
      float _waveZ = sin(_hit.z * $waveFreq * 0.7 + _wt * 1.3) * $waveAmp * 0.7
                    + sin(_hit.z * $waveFreq * 1.4 + _hit.x * 0.3 - _wt * 0.6) * $waveAmp * 0.25;

      // Displace both axes for proper ocean mesh feel
      _wp.x += _waveZ * $gridSize * 0.3;
      _wp.y += _waveX * $gridSize * 0.5;

      // Grid lines: both axes
      vec2 _gf = abs(fract(_wp) - 0.5);

      // Perspective-aware line width: thinner further away
      float _lw = $lineWidth * 50.0 / max(_dist, 0.5);
      _lw = min(_lw, 0.48);

      float _lineX = 1.0 - smoothstep(_lw - _lw * 0.3, _lw + _lw * 0.3, _gf.x);
      float _lineZ = 1.0 - smoothstep(_lw - _lw * 0.3, _lw + _lw * 0.3, _gf.y);
      float _lines = max(_lineX, _lineZ);

      // Distance fade
      float _fade = 4.0 / (_dist * _dist * 0.08 + 1.0);
      _fade = min(_fade, 1.0);

      _grid = _lines * _fade;
    }
  }

  mixFactor = clamp(_grid, 0.0, 1.0);
}`,
	PostMixGLSL: `{
  // Glow bloom: bright lines bloom outward
  float _lum = dot(color, vec3(0.299, 0.587, 0.114));
  float _bloom = smoothstep(0.2, 0.7, _lum);
  color += color * _bloom * 0.4;
  // Slight highlight boost at bright intersections
  color += vec3(1.0) * pow(_lum, 4.0) * 0.15;
}`,
}

var interferenceRingsBlock = &EffectBlock{
	ID:            "interference-rings",
	Name:          "Interference Rings",
	Description:   "Concentric wave sources creating constructive/destructive interference",
	Category:      Generator,
	Order:         190,
	RequiredUtils: []Util{Hash},
	Params: []ParamSpec{
		{ID: "sources", Label: "Sources", Type: Select, Default: Number(4), Options: []Option{{"3 Sources", 3}, {"4 Sources", 4}, {"5 Sources", 5}}, Group: "waves"},
		{ID: "frequency", Label: "Frequency", Type: Float, Default: Number(20), Min: 5, Max: 40, Step: 1, Group: "waves"},
		{ID: "speed", Label: "Speed", Type: Float, Default: Number(0.15), Min: 0, Max: 0.5, Step: 0.01, Group: "animation"},
		{ID: "damping", Label: "Damping", Type: Float, Default: Number(1.5), Min: 0.5, Max: 3, Step: 0.05, Group: "waves"},
		{ID: "lineWidth", Label: "Line Width", Type: Float, Default: Number(0.06), Min: 0.01, Max: 0.3, Step: 0.005, Group: "look"},
		{ID: "glow", Label: "Glow", Type: Float, Default: Number(0.4), Min: 0, Max: 1, Step: 0.01, Group: "look"},
	},
	GLSLBody: `{
  vec2 _ctr = (uv - 0.5) * vec2(aspect, 1.0);
  float _sources = $sources;
  float _spd = $speed;
  float _damp = $damping;

  // 5 source positions: varied orbit radii for spatial interest
  vec2 _p0 = vec2(sin(t * 0.11) * 0.15, cos(t * 0.13) * 0.12);
  vec2 _p1 = vec2(cos(t * 0.07 + 1.5) * 0.35, sin(t * 0.09 + 1.5) * 0.3);
  vec2 _p2 = vec2(sin(t * 0.13 + 3.0) * 0.25, cos(t * 0.08 + 3.0) * 0.4);
  vec2 _p3 = vec2(cos(t * 0.06 + 4.5) * 0.42, sin(t * 0.11 + 4.5) * 0.2);
  vec2 _p4 = vec2(sin(t * 0.09 + 6.0) * 0.18, cos(t * 0.14 + 6.0) * 0.38);

  // Slightly detuned frequencies per source: richer interference
  float _f0 = $frequency;
  float _f1 = $frequency * 1.07;
  float _f2 = $frequency * 0.93;
  float _f3 = $frequency * 1.13;
  float _f4 = $frequency * 0.87;

  float _pattern = 0.0;
  float _glowAccum = 0.0;

  // Source 0: always active
  {
    float _d = length(_ctr - _p0);
    float _att = 1.0 / (1.0 + _d * _d * _damp);
    float _wave = sin(_d * _f0 - t * _spd * 10.0);
    float _dist = abs(_wave);
    float _ring = _att / (1.0 + pow(_dist / $lineWidth, 2.0));
    float _halo = _att * $glow * 0.3 / (1.0 + _dist * _dist * 4.0);
    _pattern += _ring;
    _glowAccum += _halo;
  }
  // Source 1
  {
    float _d = length(_ctr - _p1);
    float _att = 1.0 / (1.0 + _d * _d * _damp);
    float _wave = sin(_d * _f1 - t * _spd * 10.0 + 1.0);
    float _dist = abs(_wave);
    float _ring = _att / (1.0 + pow(_dist / $lineWidth, 2.0));
    float _halo = _att * $glow * 0.3 / (1.0 + _dist * _dist * 4.0);
    _pattern += _ring;
    _glowAccum += _halo;
  }
  // Source 2
  {
    float _d = length(_ctr - _p2);
    float _att = 1.0 / (1.0 + _d * _d * _damp);
    float _wave = sin(_d * _f2 - t * _spd * 10.0 + 2.0);
    float _dist = abs(_wave);
    float _ring = _att / (1.0 + pow(_dist / $lineWidth, 2.0));
    float _halo = _att * $glow * 0.3 / (1.0 + _dist * _dist * 4.0);
    _pattern += _ring;
    _glowAccum += _halo;
  }
  // Source 3: active if sources >= 4
  if (_sources >= 3.5) {
    float _d = length(_ctr - _p3);
    float _att = 1.0 / (1.0 + _d * _d * _damp);
    float _wave = sin(_d * _f3 - t * _spd * 10.0 + 3.0);
    float _dist = abs(_wave);
    float _ring = _att / (1.0 + pow(_dist / $lineWidth, 2.0));
    float _halo = _att * $glow * 0.3 / (1.0 + _dist * _dist * 4.0);
    _pattern += _ring;
    _glowAccum += _halo;
  }
  // Source 4: active if sources >= 5
  if (_sources >= 4.5) {
    float _d = length(_ctr - _p4);
    float _att = 1.0 / (1.0 + _d * _d * _damp);
    float _wave = sin(_d * _f4 - t * _spd * 10.0 + 4.0);
    float _dist = abs(_wave);
    float _ring = _att / (1.0 + pow(_dist / $lineWidth, 2.0));
    float _halo = _att * $glow * 0.3 / (1.0 + _dist * _dist * 4.0);
    _pattern += _ring;
    _glowAccum += _halo;
  }

  // Screen blend rings + glow
  float _result = _pattern + _glowAccum - _pattern * _glowAccum;
  mixFactor = clamp(_result, 0.0, 1.0);
}`,
}

var hexLatticeBlock = &EffectBlock{
	ID:            "hex-lattice",
	Name:          "Hex Lattice",
	Description:   "Honeycomb grid with glowing edges, cell pulse propagation, and breathing fill",
	Category:      Generator,
	Order:         195,
	RequiredUtils: []Util{Hash},
	Params: []ParamSpec{
		{ID: "density", Label: "Density", Type: Float, Default: Number(12), Min: 5, Max: 30, Step: 1, Group: "grid"},
		{ID: "perspective", Label: "Perspective", Type: Float, Default: Number(0.6), Min: 0.1, Max: 1, Step: 0.01, Group: "grid"},
		{ID: "edgeWidth", Label: "Edge Width", Type: Float, Default: Number(0.06), Min: 0.01, Max: 0.2, Step: 0.005, Group: "look"},
		{ID: "glow", Label: "Glow", Type: Float, Default: Number(0.5), Min: 0, Max: 1, Step: 0.01, Group: "look"},
		{ID: "cellFill", Label: "Cell Fill", Type: Float, Default: Number(0.3), Min: 0, Max: 1, Step: 0.01, Group: "look"},
		{ID: "pulseSpeed", Label: "Pulse Speed", Type: Float, Default: Number(0.15), Min: 0, Max: 0.5, Step: 0.01, Group: "animation"},
		{ID: "pulseFreq", Label: "Pulse Frequency", Type: Float, Default: Number(5), Min: 1, Max: 10, Step: 0.5, Group: "animation"},
		{ID: "accentColor", Label: "Accent Color", Type: Color, Default: Text("#ff6600"), Group: "color"},
		{ID: "accentEnabled", Label: "Accent Cells", Type: Bool, Default: Number(0), Group: "color"},
	},
	GLSLBody: `{
  vec2 _uvc = (uv - 0.5) * vec2(aspect, 1.0);

  // Camera setup
  float _tilt = 0.8 - $perspective * 0.5;
  vec3 _ro = vec3(0.0, 3.0, 0.0);
  vec3 _fwd = vec3(0.0, -_tilt, sqrt(1.0 - _tilt * _tilt));
  vec3 _rgt = vec3(1.0, 0.0, 0.0);
  vec3 _up = normalize(cross(_fwd, _rgt));
  vec3 _rd = normalize(_fwd + _uvc.x * _rgt + _uvc.y * _up);

  float _accum = 0.0;

  // Single ground plane intersection (honeycomb is flat, not layered like dots)
  if (_rd.y < -0.001) {
    float _t = -_ro.y / _rd.y;

    if (_t > 0.0) {
      vec3 _hit = _ro + _rd * _t;
      float _dist = length(_hit - _ro);

      // Hex grid coordinates: pointy-top hexagons
      float _scale = $density;
      vec2 _wp = _hit.xz * _scale;

      // Convert to axial hex coordinates
      float _hexH = 0.866025; // sqrt(3)/2
      float _q = (2.0 / 3.0) * _wp.x;
      float _r = (-1.0 / 3.0) * _wp.x + (1.0 / _hexH) * _wp.y * 0.5;

      // Cube round for nearest hex center
      float _s = -_q - _r;
      float _rq = floor(_q + 0.5);
      float _rr = floor(_r + 0.5);
      float _rs = floor(_s + 0.5);
      float _dq = abs(_rq - _q);
      float _dr = abs(_rr - _r);
      float _ds = abs(_rs - _s);
      if (_dq > _dr && _dq > _ds) {
        _rq = -_rr - _rs;
      } else if (_dr > _ds) {
        _rr = -_rq - _rs;
      }

      // Hex center in world space
      vec2 _hexCenter = vec2(_rq * 1.5, (_rq * 0.5 + _rr) * _hexH * 2.0);
      vec2 _local = _wp - _hexCenter;

      // Hex SDF: distance from center to edge of unit hexagon
      vec2 _al = abs(_local);
      float _hexDist = max(_al.x, _al.x * 0.5 + _al.y * _hexH);
      float _hexRadius = 0.98; // slight inset for clean edges

      // Normalized: 0 at center, 1 at edge
      float _edgeNorm = _hexDist / _hexRadius;

      // Per-cell hash for variation
      vec2 _cellId = vec2(_rq, _rr);
      float _h = hash(_cellId);
      float _h2 = hash(_cellId + vec2(31.0, 97.0));

      // Pulse propagation: radial wave from origin through cells
      float _cellR = length(_cellId) / _scale;
      float _pulse = sin(_cellR * $pulseFreq * 6.0 - t * $pulseSpeed * 6.2832);
      float _pulseMod = 0.5 + 0.5 * _pulse;

      // Second wave source: offset, different speed for interference
      float _pulse2 = sin((_cellR + _h * 0.3) * $pulseFreq * 4.0 + t * $pulseSpeed * 4.0 + 2.0);
      _pulseMod = _pulseMod * 0.7 + (0.5 + 0.5 * _pulse2) * 0.3;

      // Per-cell breathing: each cell has its own phase
      float _breathPhase = _h * 6.2832;
      float _breath = 0.7 + 0.3 * sin(t * 1.5 + _breathPhase + _pulse * 2.0);

      // Edge glow: Lorentzian profile at hex boundary
      float _edgeFalloff = 1.0 - _edgeNorm;
      float _ew = $edgeWidth;
      float _edgeProximity = max(1.0 - _edgeFalloff, 0.0); // 0 at center, 1 at edge
      float _edgeGlow = 1.0 / (1.0 + pow(_edgeFalloff / _ew, 2.0));

      // Broader halo around edges
      float _edgeHalo = $glow * 0.4 / (1.0 + _edgeFalloff * _edgeFalloff / (_ew * _ew * 4.0));

      // Cell fill: fades from center outward, modulated by pulse
      float _fill = $cellFill * (1.0 - _edgeNorm * _edgeNorm) * _pulseMod * _breath;

      // Combine edges + fill
      float _cell = (_edgeGlow * 0.7 + _edgeHalo) * _pulseMod + _fill;

      // Distance fade
      float _fade = 4.0 / (_dist * _dist * 0.08 + 1.0);
      _fade = min(_fade, 1.0);

      // Perspective-aware edge width compensation
      float _perspComp = min(3.0 / max(_dist, 0.5), 2.0);
      _cell *= _perspComp;

      _accum = _cell * _fade;
    }
  }

  mixFactor = clamp(_accum, 0.0, 1.0);
}`,
	PostMixGLSL: `{
  if ($accentEnabled > 0.5) {
    vec2 _uvc2 = (uv - 0.5) * vec2(aspect, 1.0);
    float _tilt2 = 0.8 - $perspective * 0.5;
    vec3 _ro2 = vec3(0.0, 3.0, 0.0);
    vec3 _fwd2 = vec3(0.0, -_tilt2, sqrt(1.0 - _tilt2 * _tilt2));
    vec3 _rgt2 = vec3(1.0, 0.0, 0.0);
    vec3 _up2 = normalize(cross(_fwd2, _rgt2));
    vec3 _rd2 = normalize(_fwd2 + _uvc2.x * _rgt2 + _uvc2.y * _up2);

    if (_rd2.y < -0.001) {
      float _t2 = (-_ro2.y) / _rd2.y;
      if (_t2 > 0.0) {
        vec3 _hit2 = _ro2 + _rd2 * _t2;
        vec2 _wp2 = _hit2.xz * $density;

        // Axial hex rounding
        float _hexH2 = 0.866025;
        float _q2 = (2.0 / 3.0) * _wp2.x;
        float _r2 = (-1.0 / 3.0) * _wp2.x + (1.0 / _hexH2) * _wp2.y * 0.5;
        float _s2 = -_q2 - _r2;
        float _rq2 = floor(_q2 + 0.5);
        float _rr2 = floor(_r2 + 0.5);
        float _rs2 = floor(_s2 + 0.5);
        float _dq2 = abs(_rq2 - _q2);
        float _dr2 = abs(_rr2 - _r2);
        float _ds2 = abs(_rs2 - _s2);
        if (_dq2 > _dr2 && _dq2 > _ds2) {
          _rq2 = -_rr2 - _rs2;
        } else if (_dr2 > _ds2) {
          _rr2 = -_rq2 - _rs2;
        }
        vec2 _cell2 = vec2(_rq2, _rr2);

        float _isAccent = step(0.93, hash(_cell2 + vec2(73.0, 159.0)));
        float _lum = dot(color, vec3(0.299, 0.587, 0.114));
        color = mix(color, $accentColor * _lum * 2.5, _isAccent * step(0.05, _lum));
      }
    }
  }
  // Subtle bloom on bright honeycomb edges
  float _lum2 = dot(color, vec3(0.299, 0.587, 0.114));
  float _bloom = smoothstep(0.3, 0.8, _lum2);
  color += color * _bloom * $glow * 0.3;
}`,
}

package shader

import "strconv"

// ColorUniform is the vec3 uniform of the i-th gradient color.
func ColorUniform(i int) string { return "u_color" + strconv.Itoa(i) }

// StopUniform is the float uniform of the i-th gradient stop.
func StopUniform(i int) string { return "u_stop" + strconv.Itoa(i) }

// EqualStops spaces n stops evenly over [0,1].
func EqualStops(n int) []float64 {
	stops := make([]float64, n)
	if n == 1 {
		return stops
	}
	for i := range stops {
		stops[i] = float64(i) / float64(n-1)
	}
	return stops
}

// appendColorRamp emits colorRamp(t). Stops are uniforms, so the sort by
// stop position happens in the shader.
func appendColorRamp(b []byte, n int) []byte {
	switch n {
	case 0:
		return append(b, "vec3 colorRamp(float t) {\n  return vec3(clamp(t, 0.0, 1.0));\n}\n"...)
	case 1:
		b = append(b, "vec3 colorRamp(float t) {\n  return "...)
		b = append(b, ColorUniform(0)...)
		return append(b, ";\n}\n"...)
	}
	count := strconv.Itoa(n)
	last := strconv.Itoa(n - 1)

	b = append(b, "vec3 colorRamp(float t) {\n"...)
	b = append(b, "  vec3 cols["+count+"];\n"...)
	b = append(b, "  float stops["+count+"];\n"...)
	for i := 0; i < n; i++ {
		idx := strconv.Itoa(i)
		b = append(b, "  cols["+idx+"] = "+ColorUniform(i)+";\n"...)
		b = append(b, "  stops["+idx+"] = "+StopUniform(i)+";\n"...)
	}
	b = append(b, `  for (int i = 1; i < `+count+`; i++) {
    for (int j = `+last+`; j >= i; j--) {
      if (stops[j - 1] > stops[j]) {
        float ts = stops[j - 1]; stops[j - 1] = stops[j]; stops[j] = ts;
        vec3 tc = cols[j - 1]; cols[j - 1] = cols[j]; cols[j] = tc;
      }
    }
  }
  if (t <= stops[0]) return cols[0];
  for (int i = 1; i < `+count+`; i++) {
    if (t <= stops[i]) {
      float span = max(stops[i] - stops[i - 1], 1e-5);
      return mix(cols[i - 1], cols[i], clamp((t - stops[i - 1]) / span, 0.0, 1.0));
    }
  }
  return cols[`+last+`];
}
`...)
	return b
}

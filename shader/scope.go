package shader

// Sigil prefixes parameter references inside block templates.
const Sigil = '$'

// ScopedID is the key under which an instance's parameter value is stored.
func ScopedID(instanceID, paramID string) string {
	return instanceID + "_" + paramID
}

// UniformName is the GLSL uniform carrying an instance's parameter.
func UniformName(instanceID, paramID string) string {
	return "u_" + ScopedID(instanceID, paramID)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// Substitute replaces every $name token of src found in names with
// names[name] in a single left to right pass. A token always extends over
// the longest run of identifier characters, so $scale never matches the
// front of $scale2. Unknown tokens are copied through unchanged and left
// for the GLSL compiler to report.
func Substitute(src string, names map[string]string) string {
	return string(AppendSubstitute(make([]byte, 0, len(src)+len(src)/4), src, names))
}

// AppendSubstitute is Substitute appending to dst.
func AppendSubstitute(dst []byte, src string, names map[string]string) []byte {
	for i := 0; i < len(src); {
		c := src[i]
		if c != Sigil {
			dst = append(dst, c)
			i++
			continue
		}
		j := i + 1
		for j < len(src) && isIdentByte(src[j]) {
			j++
		}
		if repl, ok := names[src[i+1:j]]; ok && j > i+1 {
			dst = append(dst, repl...)
		} else {
			dst = append(dst, src[i:j]...)
		}
		i = j
	}
	return dst
}

// replaceIdents swaps whole GLSL identifiers found in repl. Identifiers are
// scanned with the same longest-match rule as Substitute, so u_a_x is never
// rewritten inside u_a_x2.
func replaceIdents(dst []byte, src string, repl map[string]string) []byte {
	for i := 0; i < len(src); {
		c := src[i]
		if !isIdentStart(c) {
			// skip numeric literals whole so 1e5 or 2u are not split
			if c >= '0' && c <= '9' {
				j := i + 1
				for j < len(src) && (isIdentByte(src[j]) || src[j] == '.') {
					j++
				}
				dst = append(dst, src[i:j]...)
				i = j
				continue
			}
			dst = append(dst, c)
			i++
			continue
		}
		j := i + 1
		for j < len(src) && isIdentByte(src[j]) {
			j++
		}
		if r, ok := repl[src[i:j]]; ok {
			dst = append(dst, r...)
		} else {
			dst = append(dst, src[i:j]...)
		}
		i = j
	}
	return dst
}

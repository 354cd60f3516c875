package domain

import "regexp"

var macroPattern = regexp.MustCompile(`\$\{([A-Za-z0-9_.]+)\}|\$([A-Za-z0-9_]+)`)

// ReplaceMacro expands ${NAME} and $NAME references in s using vars.
// Only the braced form may contain '.'.
// References to names missing from vars are left untouched.
func ReplaceMacro(s string, vars map[string]string) string {
	if len(vars) == 0 {
		return s
	}
	return macroPattern.ReplaceAllStringFunc(s, func(ref string) string {
		m := macroPattern.FindStringSubmatch(ref)
		key := m[1]
		if key == "" {
			key = m[2]
		}
		if v, ok := vars[key]; ok {
			return v
		}
		return ref
	})
}

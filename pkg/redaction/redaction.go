// Package redaction masks plugin tokens in log output. The token is the
// only credential this tool handles; it must never reach stderr.
package redaction

import (
	"regexp"
	"strings"
)

// Replacement is the string substituted for redacted values.
const Replacement = "[REDACTED]"

// tokenPattern matches token-bearing key/value fragments in free-form
// text, e.g. `token: abc123...` or `"authenticationToken":"abc123..."`.
var tokenPattern = regexp.MustCompile(
	`(?i)("?(?:authentication_?)?token"?\s*[:=]\s*"?)[A-Za-z0-9+/_-]{8,}={0,2}`,
)

// tokenKeys are field names whose values are always masked.
var tokenKeys = map[string]struct{}{
	"token":                {},
	"auth_token":           {},
	"authentication_token": {},
	"authenticationtoken":  {},
}

// Redact masks token values embedded in a message string.
func Redact(message string) string {
	return tokenPattern.ReplaceAllString(message, "${1}"+Replacement)
}

// RedactFields returns a copy of fields with token-valued keys masked.
// The input map is not modified.
func RedactFields(fields map[string]any) map[string]any {
	result := make(map[string]any, len(fields))
	for k, v := range fields {
		if _, sensitive := tokenKeys[strings.ToLower(k)]; sensitive {
			result[k] = Replacement
			continue
		}
		if s, ok := v.(string); ok {
			result[k] = Redact(s)
			continue
		}
		result[k] = v
	}
	return result
}

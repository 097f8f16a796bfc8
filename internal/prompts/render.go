package prompts

import "strings"

// Render substitutes {name} tokens in a template with the given field
// values. Only tokens named in fields are touched, so literal braces in a
// template (JSON response examples, for instance) pass through untouched.
func Render(template string, fields map[string]string) string {
	if len(fields) == 0 {
		return template
	}

	pairs := make([]string, 0, len(fields)*2)
	for name, value := range fields {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

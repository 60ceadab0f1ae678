package rendering

import "strings"

// latexReplacements maps the LaTeX special characters to their escaped
// forms: \ { } $ & % # ^ _ ~
var latexReplacements = map[rune]string{
	'\\': `\textbackslash{}`,
	'{':  `\{`,
	'}':  `\}`,
	'$':  `\$`,
	'&':  `\&`,
	'%':  `\%`,
	'#':  `\#`,
	'^':  `\textasciicircum{}`,
	'_':  `\_`,
	'~':  `\textasciitilde{}`,
}

// EscapeLaTeX escapes LaTeX special characters so user-entered field
// values cannot break out of the template.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		if escaped, ok := latexReplacements[r]; ok {
			result.WriteString(escaped)
			continue
		}
		result.WriteRune(r)
	}

	return result.String()
}

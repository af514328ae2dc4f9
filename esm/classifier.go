package esm

import (
	"strconv"
	"strings"
)

// scriptPrefixes are mwscript commands, built-ins and declarations that
// mark a string as script source rather than prose.
var scriptPrefixes = []string{
	"begin ",
	"end\n",
	"endif",
	"while (",
	"if (",
	"else\n",
	"getjournalindex",
	"messagebox",
	"additem",
	"removeitem",
	"startscript",
	"stopscript",
	"getglobal",
	"setglobal",
	"short ",
	"long ",
	"float ",
}

// scriptLinePrefixes catch scripts that open with prose-looking text but
// carry statements on later lines.
var scriptLinePrefixes = []string{"if ", "set ", "short ", "long ", "float "}

var codeOperators = []string{"==", "!=", ">=", "<=", "->", "=>", "&&", "||"}

const codePunct = "{}[]()=<>!&|;"

// rejectRule is one step of the classifier pipeline. trimmed is the
// whitespace-trimmed input, lower its lower-cased form. Returning true
// rejects the string as non-translatable.
type rejectRule struct {
	name   string
	reject func(trimmed, lower string) bool
}

// classifierRules run in order and short-circuit on the first rejection.
// Later rules assume the earlier ones have not already fired.
var classifierRules = []rejectRule{
	{"too-short", rejectTooShort},
	{"numeric", rejectNumeric},
	{"script-prefix", rejectScriptPrefix},
	{"script-lines", rejectScriptLines},
	{"code-operator", rejectCodeOperator},
	{"punctuation-heavy", rejectPunctuationHeavy},
	{"resource-path", rejectResourcePath},
}

// IsTranslatable reports whether a decoded payload looks like natural
// language worth exporting, as opposed to script source, numbers or
// resource paths.
func IsTranslatable(text string) bool {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	for _, rule := range classifierRules {
		if rule.reject(trimmed, lower) {
			return false
		}
	}
	return true
}

func rejectTooShort(trimmed, _ string) bool {
	return len(trimmed) < 2
}

func rejectNumeric(trimmed, _ string) bool {
	for _, c := range trimmed {
		if (c < '0' || c > '9') && c != '.' && c != '-' && c != '+' {
			return false
		}
	}
	_, err := strconv.ParseFloat(trimmed, 64)
	return err == nil
}

func rejectScriptPrefix(_, lower string) bool {
	for _, p := range scriptPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func rejectScriptLines(trimmed, _ string) bool {
	if !strings.Contains(trimmed, "\n") {
		return false
	}
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		for _, p := range scriptLinePrefixes {
			if strings.HasPrefix(line, p) {
				return true
			}
		}
	}
	return false
}

func rejectCodeOperator(trimmed, _ string) bool {
	for _, op := range codeOperators {
		if strings.Contains(trimmed, op) {
			return true
		}
	}
	return false
}

func rejectPunctuationHeavy(trimmed, _ string) bool {
	count := 0
	for _, c := range trimmed {
		if strings.ContainsRune(codePunct, c) {
			count++
		}
	}
	return count > 5 && float64(count)/float64(len(trimmed)) > 0.5
}

func rejectResourcePath(trimmed, _ string) bool {
	return strings.Count(trimmed, `\`) > 1 || strings.HasPrefix(trimmed, `data\`)
}

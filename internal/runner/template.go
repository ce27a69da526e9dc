package runner

import (
	"strconv"
	"strings"
)

// Vars are the values substituted into a command template.
type Vars struct {
	// JSON is the result log path ({{json}}).
	JSON string
	// JUnit is the JUnit report path ({{junit}}).
	JUnit string
	// Reruns is how often failing tests are retried ({{reruns}}).
	Reruns int
	// Targets are the package patterns, space separated ({{targets}}).
	Targets []string
	// Tags are the build tags, comma separated ({{tags}}).
	Tags []string
	// Flavor is the flavor name ({{flavor}}).
	Flavor string
}

// Expand substitutes every {{name}} placeholder in tmpl. Unknown
// placeholders are left alone.
func Expand(tmpl string, vars Vars) string {
	return strings.NewReplacer(
		"{{json}}", vars.JSON,
		"{{junit}}", vars.JUnit,
		"{{reruns}}", strconv.Itoa(vars.Reruns),
		"{{targets}}", strings.Join(vars.Targets, " "),
		"{{tags}}", strings.Join(vars.Tags, ","),
		"{{flavor}}", vars.Flavor,
	).Replace(tmpl)
}

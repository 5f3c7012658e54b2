package endpoints

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"
)

// MaxToolNameLength is the longest tool name MCP clients reliably accept.
const MaxToolNameLength = 64

// ToolName derives the tool name from the method and the path template:
// the lower-cased verb followed by every path segment in PascalCase.
//
//	GET /projects/{id}/repository/branches -> getProjectsIdRepositoryBranches
func (e Endpoint) ToolName() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(e.Method))
	for _, segment := range strings.Split(e.Path, "/") {
		b.WriteString(pascal(segment))
	}
	return shorten(b.String())
}

// pascal turns a path segment such as "{merge_request_iid}" or
// "merge_requests" into "MergeRequestIid" / "MergeRequests".
func pascal(segment string) string {
	var b strings.Builder
	upper := true
	for _, r := range segment {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if r > unicode.MaxASCII {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func shorten(name string) string {
	if len(name) <= MaxToolNameLength {
		return name
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	suffix := fmt.Sprintf("_%08x", h.Sum32())
	return name[:MaxToolNameLength-len(suffix)] + suffix
}

// TranslationKey returns the key under which the description of a tool
// can be overridden, e.g. TOOL_GET_PROJECTS_ID_DESCRIPTION.
func TranslationKey(toolName string) string {
	var b strings.Builder
	b.WriteString("TOOL_")
	prevLower := false
	for _, r := range toolName {
		switch {
		case r == '_':
			b.WriteRune('_')
			prevLower = false
			continue
		case unicode.IsUpper(r) && prevLower:
			b.WriteRune('_')
		}
		b.WriteRune(unicode.ToUpper(r))
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	b.WriteString("_DESCRIPTION")
	return b.String()
}

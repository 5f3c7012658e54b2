package codegen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
)

func sample() []endpoints.Endpoint {
	return []endpoints.Endpoint{
		{
			Method:      "GET",
			Path:        "/projects/{id}/merge_requests",
			Toolset:     "merge_requests",
			Description: `List "open" merge requests`,
			Params: []endpoints.Param{
				{Name: "id", In: endpoints.InPath, Type: endpoints.TypeString, Required: true, Description: "The ID or URL-encoded path of the project"},
				{Name: "state", Type: endpoints.TypeString, Description: "Filter by state", Enum: []string{"opened", "closed"}},
				{Name: "iids", Type: endpoints.TypeArray, Items: endpoints.TypeInteger, Description: "Internal IDs"},
			},
		},
		{Method: "GET", Path: "/version", Toolset: "instance", Description: "Retrieve version information"},
	}
}

func TestRender(t *testing.T) {
	files, err := Render("endpoints", sample(), map[string]string{"instance": "Instance metadata."})
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, "zz_generated_instance.go", files[0].Name)
	assert.Equal(t, "zz_generated_merge_requests.go", files[1].Name)
	assert.Equal(t, "zz_generated_catalog.go", files[2].Name)

	for _, f := range files {
		assert.True(t, strings.HasPrefix(string(f.Source), Header+"\n"), "%s lacks the generated header", f.Name)
		_, err := parser.ParseFile(token.NewFileSet(), f.Name, f.Source, 0)
		require.NoError(t, err, "%s does not parse", f.Name)
	}

	mr := string(files[1].Source)
	assert.Contains(t, mr, "var mergeRequestsEndpoints = []Endpoint{")
	assert.Contains(t, mr, `Description: "List \"open\" merge requests",`)
	assert.Contains(t, mr, `{Name: "id", In: InPath, Type: TypeString, Required: true, Description: "The ID or URL-encoded path of the project"},`)
	assert.Contains(t, mr, `{Name: "state", Type: TypeString, Description: "Filter by state", Enum: []string{"opened", "closed"}},`)
	assert.Contains(t, mr, `{Name: "iids", Type: TypeArray, Items: TypeInteger, Description: "Internal IDs"},`)

	version := string(files[0].Source)
	assert.NotContains(t, version, "Params:", "endpoints without parameters omit the field")

	catalog := string(files[2].Source)
	assert.Contains(t, catalog, "eps = append(eps, instanceEndpoints...)")
	assert.Contains(t, catalog, "eps = append(eps, mergeRequestsEndpoints...)")
	assert.Contains(t, catalog, `"Instance metadata."`)
	assert.Contains(t, catalog, `"GitLab merge_requests endpoints."`)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "zz_generated_removed.go")
	require.NoError(t, os.WriteFile(stale, []byte("package endpoints\n"), 0o644))
	keep := filepath.Join(dir, "catalog.go")
	require.NoError(t, os.WriteFile(keep, []byte("package endpoints\n"), 0o644))

	files, err := Render("endpoints", sample(), nil)
	require.NoError(t, err)
	require.NoError(t, Write(dir, files))

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale generated files are removed")
	_, err = os.Stat(keep)
	assert.NoError(t, err, "hand written files are kept")
	for _, f := range files {
		got, err := os.ReadFile(filepath.Join(dir, f.Name))
		require.NoError(t, err)
		assert.Equal(t, f.Source, got)
	}
}

func TestVarName(t *testing.T) {
	assert.Equal(t, "projectsEndpoints", varName("projects"))
	assert.Equal(t, "mergeRequestsEndpoints", varName("merge_requests"))
	assert.Equal(t, "ciVariablesEndpoints", varName("ci_variables"))
}

// The checked-in table must be what the generator produces for it.
func TestGeneratedTableIsCurrent(t *testing.T) {
	c, err := endpoints.Default()
	require.NoError(t, err)

	descs := make(map[string]string)
	for _, ts := range c.Toolsets() {
		descs[ts] = c.ToolsetDescription(ts)
	}
	files, err := Render("endpoints", c.Endpoints(), descs)
	require.NoError(t, err)

	dir := filepath.Join("..", "..", "pkg", "endpoints")
	onDisk, err := filepath.Glob(filepath.Join(dir, "zz_generated_*.go"))
	require.NoError(t, err)
	assert.Len(t, onDisk, len(files))

	for _, f := range files {
		got, err := os.ReadFile(filepath.Join(dir, f.Name))
		require.NoError(t, err, "missing %s, run gen-endpoints", f.Name)
		assert.Equal(t, strings.Fields(string(f.Source)), strings.Fields(string(got)), "%s is out of date", f.Name)
	}
}

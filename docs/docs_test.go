package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var routerAnnotation = regexp.MustCompile(`@Router\s+(\S+)\s+\[(\w+)\]`)

// annotatedOperations collects "METHOD path" for every @Router comment of the
// HTTP handlers.
func annotatedOperations(t *testing.T) []string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join("..", "internal", "api", "handler", "*.go"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	var ops []string
	for _, f := range files {
		if strings.HasSuffix(f, "_test.go") {
			continue
		}
		src, err := os.ReadFile(f)
		require.NoError(t, err)
		for _, m := range routerAnnotation.FindAllStringSubmatch(string(src), -1) {
			ops = append(ops, strings.ToUpper(m[2])+" "+m[1])
		}
	}
	return ops
}

func documentedOperations(t *testing.T) []string {
	t.Helper()
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc), "document must be valid JSON")

	var ops []string
	for path, methods := range doc.Paths {
		for method := range methods {
			ops = append(ops, strings.ToUpper(method)+" "+path)
		}
	}
	return ops
}

func TestDocumentMatchesHandlerAnnotations(t *testing.T) {
	annotated := annotatedOperations(t)
	documented := documentedOperations(t)

	assert.ElementsMatch(t, annotated, documented)
}

func TestSwaggerInfo(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Swagger string `json:"swagger"`
		Info    struct {
			Title string `json:"title"`
		} `json:"info"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "Access Control API", doc.Info.Title)
}

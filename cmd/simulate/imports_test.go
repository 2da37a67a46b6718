package main

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Nothing the runner links may import ebiten or ebitenui.
func TestHeadlessImports(t *testing.T) {
	dirs := []string{".", "../../input", "../../prefabs", "../../world", "../../common"}
	for _, dir := range dirs {
		t.Run(filepath.Base(filepath.Clean(dir)), func(t *testing.T) {
			files, err := filepath.Glob(filepath.Join(dir, "*.go"))
			if err != nil {
				t.Fatalf("glob: %v", err)
			}
			if len(files) == 0 {
				t.Fatalf("no Go files in %s", dir)
			}
			fset := token.NewFileSet()
			for _, name := range files {
				if strings.HasSuffix(name, "_test.go") {
					continue
				}
				f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
				if err != nil {
					t.Fatalf("parse %s: %v", name, err)
				}
				for _, imp := range f.Imports {
					path, _ := strconv.Unquote(imp.Path.Value)
					if strings.HasPrefix(path, "github.com/hajimehoshi/ebiten") || strings.HasPrefix(path, "github.com/ebitenui") {
						t.Fatalf("%s imports %s", name, path)
					}
				}
			}
		})
	}
}

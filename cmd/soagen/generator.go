package main

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultImportPath is the import path of the soa package used in generated
// code.
const DefaultImportPath = "github.com/hupe1980/soa"

// generatedSuffix is the file name suffix of generated files.
const generatedSuffix = "_soa.go"

var (
	errNoTypes     = errors.New("no type names given")
	errNoGoFiles   = errors.New("no Go files found")
	errNotFound    = errors.New("type not found")
	errUnsupported = errors.New("unsupported type")
	errOutputDir   = errors.New("output directory must be the package directory")
)

var majorVersionRe = regexp.MustCompile(`^v[0-9]+$`)

// Generator writes soa declarations for struct types of one package.
//
// Generated code refers to the record types unqualified, so OutputDir must
// resolve to Dir. An empty OutputDir means Dir.
type Generator struct {
	Dir        string
	OutputDir  string
	Types      []string
	ImportPath string
	Verbose    bool
}

// Struct is a struct declaration prepared for rendering.
type Struct struct {
	Name    string
	Package string
	Members []Member
	Imports []Import
}

// Member is one named field of a Struct, rendered as one column.
type Member struct {
	Name    string
	Column  string
	Type    string
	Aligned bool
}

// Import is an import needed by the member types of a Struct.
type Import struct {
	Name string
	Path string
}

type pkgInfo struct {
	name  string
	types map[string]typeDecl
	decls map[string]struct{}
}

type typeDecl struct {
	spec *ast.TypeSpec
	file *ast.File
}

// Generate parses the package, renders one file per requested type and
// returns the paths written.
func (g *Generator) Generate() ([]string, error) {
	names, err := g.typeNames()
	if err != nil {
		return nil, err
	}

	outDir, err := g.outputDir()
	if err != nil {
		return nil, err
	}

	pkg, err := g.parsePackage()
	if err != nil {
		return nil, err
	}

	structs := make([]*Struct, len(names))
	for i, name := range names {
		s, err := pkg.lookup(name)
		if err != nil {
			return nil, err
		}
		structs[i] = s
	}

	importPath := g.ImportPath
	if importPath == "" {
		importPath = DefaultImportPath
	}

	files := make([]string, len(structs))
	eg := new(errgroup.Group)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range structs {
		eg.Go(func() error {
			src, err := render(s, importPath)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}
			out := filepath.Join(outDir, strings.ToLower(s.Name)+generatedSuffix)
			if g.Verbose {
				fmt.Printf("Writing %s (%d columns)\n", out, len(s.Members))
			}
			if err := os.WriteFile(out, src, 0o600); err != nil {
				return err
			}
			files[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// outputDir returns the directory generated files are written to. It fails
// with errOutputDir when OutputDir names a directory other than Dir.
func (g *Generator) outputDir() (string, error) {
	if g.OutputDir == "" {
		return g.Dir, nil
	}
	src, err := resolveDir(g.Dir)
	if err != nil {
		return "", err
	}
	dst, err := resolveDir(g.OutputDir)
	if err != nil {
		return "", err
	}
	if src != dst {
		return "", fmt.Errorf("%w: %s is not %s", errOutputDir, g.OutputDir, g.Dir)
	}
	return g.OutputDir, nil
}

func resolveDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

func (g *Generator) typeNames() ([]string, error) {
	var names []string
	for _, n := range g.Types {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if !token.IsIdentifier(n) {
			return nil, fmt.Errorf("invalid type name %q", n)
		}
		if !slices.Contains(names, n) {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return nil, errNoTypes
	}
	return names, nil
}

// parsePackage parses the non-test Go files of g.Dir. Files previously
// written by the generator are skipped.
func (g *Generator) parsePackage() (*pkgInfo, error) {
	entries, err := os.ReadDir(g.Dir)
	if err != nil {
		return nil, err
	}

	pkg := &pkgInfo{
		types: make(map[string]typeDecl),
		decls: make(map[string]struct{}),
	}
	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		file, err := parser.ParseFile(fset, filepath.Join(g.Dir, name), nil, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			return nil, err
		}
		if strings.HasSuffix(name, generatedSuffix) && ast.IsGenerated(file) {
			if g.Verbose {
				fmt.Printf("Skipping generated file %s\n", name)
			}
			continue
		}

		if pkg.name == "" {
			pkg.name = file.Name.Name
		} else if pkg.name != file.Name.Name {
			return nil, fmt.Errorf("found packages %s and %s in %s", pkg.name, file.Name.Name, g.Dir)
		}
		pkg.collect(file)
	}

	if pkg.name == "" {
		return nil, fmt.Errorf("%w in %s", errNoGoFiles, g.Dir)
	}
	return pkg, nil
}

func (p *pkgInfo) collect(file *ast.File) {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				p.decls[d.Name.Name] = struct{}{}
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					p.decls[s.Name.Name] = struct{}{}
					p.types[s.Name.Name] = typeDecl{spec: s, file: file}
				case *ast.ValueSpec:
					for _, n := range s.Names {
						p.decls[n.Name] = struct{}{}
					}
				}
			}
		}
	}
}

func (p *pkgInfo) lookup(name string) (*Struct, error) {
	decl, ok := p.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errNotFound, name)
	}
	spec := decl.spec
	if spec.TypeParams != nil {
		return nil, fmt.Errorf("%w: %s is generic", errUnsupported, name)
	}
	if spec.Assign.IsValid() {
		return nil, fmt.Errorf("%w: %s is an alias", errUnsupported, name)
	}
	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a struct", errUnsupported, name)
	}

	for _, generated := range []string{name + "Fields", name + "Schema", name + "SoA", "New" + name + "SoA"} {
		if _, clash := p.decls[generated]; clash {
			return nil, fmt.Errorf("%s: %s is already declared", name, generated)
		}
	}

	s := &Struct{Name: name, Package: p.name}
	used := make(map[string]struct{})
	for _, field := range st.Fields.List {
		typ := types.ExprString(field.Type)
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("%w: %s has embedded field %s", errUnsupported, name, typ)
		}
		collectQualifiers(field.Type, used)

		for _, ident := range field.Names {
			if ident.Name == "_" {
				continue
			}
			s.Members = append(s.Members, Member{
				Name:    ident.Name,
				Column:  columnName(ident.Name),
				Type:    typ,
				Aligned: isScalar(field.Type),
			})
		}
	}
	if len(s.Members) == 0 {
		return nil, fmt.Errorf("%w: %s has no named fields", errUnsupported, name)
	}

	imports, err := resolveImports(decl.file, used)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	s.Imports = imports
	return s, nil
}

// collectQualifiers records the package names used in qualified identifiers
// of expr.
func collectQualifiers(expr ast.Expr, used map[string]struct{}) {
	ast.Inspect(expr, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if id, ok := sel.X.(*ast.Ident); ok {
				used[id.Name] = struct{}{}
			}
			return false
		}
		return true
	})
}

func resolveImports(file *ast.File, used map[string]struct{}) ([]Import, error) {
	var out []Import
	found := make(map[string]struct{}, len(used))
	for _, spec := range file.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			return nil, err
		}
		name := defaultPackageName(p)
		explicit := ""
		if spec.Name != nil {
			name, explicit = spec.Name.Name, spec.Name.Name
		}
		if _, ok := used[name]; !ok {
			continue
		}
		found[name] = struct{}{}
		out = append(out, Import{Name: explicit, Path: p})
	}

	for name := range used {
		if _, ok := found[name]; !ok {
			return nil, fmt.Errorf("no import found for package %s", name)
		}
	}
	slices.SortFunc(out, func(a, b Import) int { return strings.Compare(a.Path, b.Path) })
	return out, nil
}

// defaultPackageName guesses the package name of an import path the way
// goimports does for paths it cannot load.
func defaultPackageName(importPath string) string {
	base := path.Base(importPath)
	if majorVersionRe.MatchString(base) {
		base = path.Base(path.Dir(importPath))
	}
	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexAny(base, ".-"); i >= 0 {
		base = base[:i]
	}
	return base
}

// isScalar reports whether expr names a predeclared numeric type, which can
// live in an aligned column.
func isScalar(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)
	if !ok {
		return false
	}
	switch id.Name {
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "complex64", "complex128",
		"byte", "rune":
		return true
	default:
		return false
	}
}

// columnName converts a Go field name to snake case: "SensorID" becomes
// "sensor_id".
func columnName(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z' || runes[i-1] >= '0' && runes[i-1] <= '9'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || (nextLower && runes[i-1] != '_') {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

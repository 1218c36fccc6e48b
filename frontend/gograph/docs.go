package gograph

import (
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// DocSource holds parsed source packages so Build can attach doc
// comments to the types it resolves. Reflection alone cannot see
// comments; this loads the declaring packages' syntax trees.
type DocSource struct {
	pkgs map[string]*packages.Package
}

// LoadDocs loads the packages matching the given go/packages patterns
// (for example "./..." from the module root) with full syntax. Loading
// shells out to the Go toolchain, so this is a front-end concern only;
// snapshots built from it are plain data.
func LoadDocs(patterns ...string) (*DocSource, error) {
	conf := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(conf, patterns...)
	if err != nil {
		return nil, fmt.Errorf("gograph: loading packages: %w", err)
	}
	var loadErr error
	packages.Visit(pkgs, func(pkg *packages.Package) bool {
		for _, e := range pkg.Errors {
			loadErr = fmt.Errorf("gograph: package %s: %s", pkg.PkgPath, e.Msg)
			return false
		}
		return true
	}, nil)
	if loadErr != nil {
		return nil, loadErr
	}

	src := &DocSource{pkgs: make(map[string]*packages.Package, len(pkgs))}
	src.collect(pkgs)
	return src, nil
}

func (d *DocSource) collect(pkgs []*packages.Package) {
	for _, pkg := range pkgs {
		if _, ok := d.pkgs[pkg.PkgPath]; ok {
			continue
		}
		d.pkgs[pkg.PkgPath] = pkg
		var imports []*packages.Package
		for _, imp := range pkg.Imports {
			imports = append(imports, imp)
		}
		d.collect(imports)
	}
}

// lookup returns the doc comment for a named type and the comments for
// its struct fields keyed by Go field name. Missing packages or types
// return empty results rather than errors: documentation is best
// effort.
func (d *DocSource) lookup(pkgPath, name string) (string, map[string]string) {
	pkg, ok := d.pkgs[pkgPath]
	if !ok || pkg.Types == nil {
		return "", nil
	}
	decl, spec := d.findTypeDecl(pkg, name)
	if spec == nil {
		return "", nil
	}

	// The type's comment may sit on the spec or, for single-type
	// declarations, on the enclosing GenDecl.
	doc := spec.Doc.Text()
	if doc == "" && decl != nil {
		doc = decl.Doc.Text()
	}

	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		return doc, nil
	}
	fields := make(map[string]string)
	for _, f := range st.Fields.List {
		text := f.Doc.Text()
		if text == "" && f.Comment != nil {
			text = f.Comment.Text()
		}
		if text == "" {
			continue
		}
		for _, ident := range f.Names {
			fields[ident.Name] = text
		}
	}
	return doc, fields
}

// findTypeDecl locates the declaration of a named type in the package's
// syntax trees.
func (d *DocSource) findTypeDecl(pkg *packages.Package, name string) (*ast.GenDecl, *ast.TypeSpec) {
	obj := pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return nil, nil
	}
	pos := obj.Pos()
	for _, file := range pkg.Syntax {
		if file.FileStart > pos || pos >= file.FileEnd {
			continue
		}
		path, _ := astutil.PathEnclosingInterval(file, pos, pos)
		var decl *ast.GenDecl
		var spec *ast.TypeSpec
		for _, n := range path {
			switch n := n.(type) {
			case *ast.TypeSpec:
				spec = n
			case *ast.GenDecl:
				decl = n
			}
		}
		if spec != nil {
			return decl, spec
		}
	}
	return nil, nil
}

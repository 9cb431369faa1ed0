package main

import (
	"bytes"
	"fmt"
	"go/format"
)

const header = "// Code generated by soagen. DO NOT EDIT.\n\n"

// render returns the formatted source declaring the field handles, schema
// and table type of s.
func render(s *Struct, importPath string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "package %s\n\n", s.Package)

	buf.WriteString("import (\n")
	for _, imp := range s.Imports {
		if imp.Name != "" {
			fmt.Fprintf(&buf, "\t%s %q\n", imp.Name, imp.Path)
		} else {
			fmt.Fprintf(&buf, "\t%q\n", imp.Path)
		}
	}
	if len(s.Imports) > 0 {
		buf.WriteString("\n")
	}
	if defaultPackageName(importPath) == "soa" {
		fmt.Fprintf(&buf, "\t%q\n)\n\n", importPath)
	} else {
		fmt.Fprintf(&buf, "\tsoa %q\n)\n\n", importPath)
	}

	fmt.Fprintf(&buf, "// %sFields holds one column handle per field of %s.\n", s.Name, s.Name)
	fmt.Fprintf(&buf, "var %sFields = struct {\n", s.Name)
	for _, m := range s.Members {
		fmt.Fprintf(&buf, "\t%s *soa.Field[%s, %s]\n", m.Name, s.Name, m.Type)
	}
	buf.WriteString("}{\n")
	for _, m := range s.Members {
		ctor := "NewField"
		if m.Aligned {
			ctor = "NewAlignedField"
		}
		fmt.Fprintf(&buf, "\t%s: soa.%s(%q, func(r *%s) *%s { return &r.%s }),\n",
			m.Name, ctor, m.Column, s.Name, m.Type, m.Name)
	}
	buf.WriteString("}\n\n")

	fmt.Fprintf(&buf, "// %sSchema is the column layout of %s.\n", s.Name, s.Name)
	fmt.Fprintf(&buf, "var %sSchema = soa.NewSchema[%s](\n", s.Name, s.Name)
	for _, m := range s.Members {
		fmt.Fprintf(&buf, "\t%sFields.%s,\n", s.Name, m.Name)
	}
	buf.WriteString(")\n\n")

	fmt.Fprintf(&buf, "// %sSoA is a struct-of-arrays table of %s values.\n", s.Name, s.Name)
	fmt.Fprintf(&buf, "type %sSoA = soa.Table[%s]\n\n", s.Name, s.Name)

	fmt.Fprintf(&buf, "// New%sSoA creates an empty %sSoA.\n", s.Name, s.Name)
	fmt.Fprintf(&buf, "func New%sSoA(opts ...soa.Option) *%sSoA {\n", s.Name, s.Name)
	fmt.Fprintf(&buf, "\treturn soa.New(%sSchema, opts...)\n}\n", s.Name)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

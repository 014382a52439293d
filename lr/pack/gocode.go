package pack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bqlite/lemonade/lr"
	"github.com/pkg/errors"
	"golang.org/x/tools/imports"
)

// WriteGo writes a Go source file declaring tables as a package level variable.
// The output is gofmt-formatted.
func WriteGo(w io.Writer, pkg, varname string, tables *lr.Tables) error {
	if pkg == "" || varname == "" {
		return errors.New("package and variable name required")
	}
	fp, err := tables.Fingerprint()
	if err != nil {
		return errors.Wrap(err, "cannot fingerprint tables")
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by lemonade pack. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import \"github.com/bqlite/lemonade/lr\"\n\n")
	fmt.Fprintf(&buf, "// %s are the parser tables for grammar %q.\n", varname, tables.Name)
	fmt.Fprintf(&buf, "//\n// Fingerprint %s\n", fp)
	fmt.Fprintf(&buf, "var %s = %#v\n", varname, tables)
	src, err := imports.Process(pkg+"_tables.go", buf.Bytes(), nil)
	if err != nil {
		return errors.Wrap(err, "cannot format generated tables")
	}
	_, err = w.Write(src)
	return err
}

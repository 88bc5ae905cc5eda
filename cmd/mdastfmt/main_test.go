package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestRunMarkdownToHTML(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/doc.md"
	if err := writeFile(path, "# Hi\n\nSome *text*.\n"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	opts := &options{to: "html"}
	if err := run(&buf, opts, []string{path}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); !strings.Contains(got, "<h1>Hi</h1>") {
		t.Errorf("output = %q; want it to contain <h1>Hi</h1>", got)
	}
}

func TestRendererForUnknownFormat(t *testing.T) {
	if _, err := rendererFor("bogus"); err == nil {
		t.Error("rendererFor(\"bogus\") = nil error; want error")
	}
}

func TestIDStamperForUnknownStrategy(t *testing.T) {
	if _, err := idStamperFor("bogus"); err == nil {
		t.Error("idStamperFor(\"bogus\") = nil error; want error")
	}
}

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}

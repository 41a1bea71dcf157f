// Package filetest provides golden-file comparison helpers for Akarin's
// source-driven tests (".ak" fixtures under testdata/in, compared against
// recorded results under testdata/out), adapted from the teacher's package
// of the same name.
package filetest

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/kylelemons/godebug/diff"
)

var testUpdateAllTests = flag.Bool("test.update-all-tests", false, "If set, sets all test.update-*-tests.")

// SourceFiles returns the ".ak" source fixtures in dir. Pass an explicit
// ext to look for a different extension instead.
func SourceFiles(t *testing.T, dir string, ext string) []os.FileInfo {
	t.Helper()

	if ext == "" {
		ext = ".ak"
	} else if ext[0] != '.' {
		ext = "." + ext
	}

	dents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	fis := make([]os.FileInfo, 0, len(dents))
	for _, dent := range dents {
		if !dent.Type().IsRegular() || filepath.Ext(dent.Name()) != ext {
			continue
		}
		fi, err := dent.Info()
		if err != nil {
			t.Fatal(err)
		}
		fis = append(fis, fi)
	}
	return fis
}

// DiffWhitespace compares a compilation's emitted output (Whitespace,
// symbolic or pseudo form, whichever was produced) against its golden file
// under resultDir, named after the source fixture plus suffix (e.g.
// ".ws.want", ".sym.want", ".pseudo.want").
func DiffWhitespace(t *testing.T, fi os.FileInfo, suffix, output, resultDir string, updateFlag *bool) {
	t.Helper()
	DiffCustom(t, fi, "emitted output", suffix, output, resultDir, updateFlag)
}

// DiffDiagnostics compares the diagnostics a compilation wrote to standard
// error against the ".err" golden file.
func DiffDiagnostics(t *testing.T, fi os.FileInfo, output, resultDir string, updateFlag *bool) {
	t.Helper()
	DiffCustom(t, fi, "diagnostics", ".err", output, resultDir, updateFlag)
}

// DiffCustom is the general form behind DiffWhitespace/DiffDiagnostics: a
// label for test failure messages and an arbitrary golden-file extension.
func DiffCustom(t *testing.T, fi os.FileInfo, label, ext, output, resultDir string, updateFlag *bool) {
	t.Helper()

	wantFile := filepath.Join(resultDir, fi.Name()+ext)
	diffOrUpdate(t, label, wantFile, output, updateFlag)
}

func diffOrUpdate(t *testing.T, label, goldFile, output string, updateFlag *bool) {
	t.Helper()

	if *updateFlag || *testUpdateAllTests {
		if err := os.WriteFile(goldFile, []byte(output), 0600); err != nil {
			t.Fatal(err)
		}
		return
	}

	wantb, err := os.ReadFile(goldFile)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	want := string(wantb)
	if testing.Verbose() {
		t.Logf("got %s:\n%s\n", label, output)
	}
	if patch := diff.Diff(want, output); patch != "" {
		if testing.Verbose() {
			t.Logf("want %s:\n%s\n", label, want)
		}
		t.Errorf("diff %s:\n%s\n", label, patch)
	}
}

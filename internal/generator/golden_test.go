package generator

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"utestgen/internal/discovery"
)

var updateGolden = flag.Bool("update", false, "If true, rewrites the expected output in testdata/*.txtar")

// goldenOutput is the archive member holding the expected generated source.
// Every other member is an input file, scanned in archive order.
const goldenOutput = "stdout"

func TestGolden(t *testing.T) {
	archives, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatalf("failed to find txtar files in testdata: %v", err)
	}
	if len(archives) == 0 {
		t.Skip("no txtar files found")
	}

	for _, archive := range archives {
		t.Run(filepath.Base(archive), func(t *testing.T) {
			runGolden(t, archive)
		})
	}
}

func runGolden(t *testing.T, archiveFile string) {
	archive, err := txtar.ParseFile(archiveFile)
	if err != nil {
		t.Fatalf("failed to parse txtar file %s: %v", archiveFile, err)
	}

	dir := t.TempDir()
	var inputs []string
	var want []byte
	wantIndex := -1

	for i, file := range archive.Files {
		if file.Name == goldenOutput {
			want = file.Data
			wantIndex = i
			continue
		}
		path := filepath.Join(dir, file.Name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file.Name, err)
		}
		if err := os.WriteFile(path, file.Data, 0644); err != nil {
			t.Fatalf("failed to write %s: %v", file.Name, err)
		}
		inputs = append(inputs, path)
	}

	prototypes, err := discovery.NewScanner(discovery.NewParser()).ScanFiles(inputs)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	emitter, err := NewEmitter("run_all_tests")
	if err != nil {
		t.Fatalf("failed to create emitter: %v", err)
	}
	got, err := emitter.Render(prototypes)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if *updateGolden {
		if wantIndex >= 0 {
			archive.Files[wantIndex].Data = got
		} else {
			archive.Files = append(archive.Files, txtar.File{Name: goldenOutput, Data: got})
		}
		if err := os.WriteFile(archiveFile, txtar.Format(archive), 0644); err != nil {
			t.Fatalf("failed to update %s: %v", archiveFile, err)
		}
		return
	}

	if wantIndex < 0 {
		t.Fatalf("%s has no %q section; run with -update", archiveFile, goldenOutput)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("generated source mismatch (-want +got):\n%s", diff)
	}
}

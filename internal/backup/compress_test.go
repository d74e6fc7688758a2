package backup

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestCompressRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "source.db")
	compressed := filepath.Join(dir, "source.db.zst")
	restored := filepath.Join(dir, "restored.db")

	payload := bytes.Repeat([]byte("SQLite format 3\x00 timetable rows "), 2048)
	if err := os.WriteFile(src, payload, 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := CompressFile(src, compressed); err != nil {
		t.Fatalf("CompressFile() error = %v", err)
	}

	info, err := os.Stat(compressed)
	if err != nil {
		t.Fatalf("stat compressed: %v", err)
	}
	if info.Size() >= int64(len(payload)) {
		t.Errorf("compressed size %d not smaller than source %d", info.Size(), len(payload))
	}

	in, err := os.Open(compressed)
	if err != nil {
		t.Fatalf("open compressed: %v", err)
	}
	defer in.Close()

	if err := DecompressStream(in, restored); err != nil {
		t.Fatalf("DecompressStream() error = %v", err)
	}

	got, err := os.ReadFile(restored)
	if err != nil {
		t.Fatalf("read restored: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("restored content differs from source")
	}
}

func TestCompressFileMissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := CompressFile(filepath.Join(dir, "absent.db"), filepath.Join(dir, "out.zst"))
	if err == nil {
		t.Fatal("CompressFile() on missing source returned nil error")
	}
}

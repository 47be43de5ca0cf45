package writer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"halocat-queries/internal/app/ds"
)

const (
	defaultFilePerm = 0o644
	defaultDirPerm  = 0o755
)

// FileWriter пишет списки запросов атомарно: временный файл в том же каталоге, затем rename
type FileWriter struct {
	fs afero.Fs
}

func NewFileWriter(fs afero.Fs) *FileWriter {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileWriter{fs: fs}
}

// WriteList сериализует поток и атомарно записывает его в path
func (w *FileWriter) WriteList(path string, kind ds.QueryKind, records []ds.QueryRecord) error {
	var buf bytes.Buffer
	if err := Encode(&buf, kind, records); err != nil {
		return fmt.Errorf("%w: encode %s list: %v", ds.ErrIOFailure, kind, err)
	}
	if err := w.writeAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: write %s: %v", ds.ErrIOFailure, path, err)
	}

	logrus.Infof("%s queries written: %s (%d records)", kind, path, len(records))
	return nil
}

func (w *FileWriter) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := w.fs.MkdirAll(dir, defaultDirPerm); err != nil {
		return err
	}

	tmp, err := afero.TempFile(w.fs, dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = w.fs.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = w.fs.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = w.fs.Remove(tmpPath)
		return err
	}
	_ = w.fs.Chmod(tmpPath, os.FileMode(defaultFilePerm))

	if err := w.fs.Rename(tmpPath, path); err != nil {
		_ = w.fs.Remove(tmpPath)
		return err
	}
	return nil
}

package source

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fillkit/fillkit/errors"
	"github.com/fillkit/fillkit/logger"
)

// File describes an incoming file without reading it. Open is called only
// after every guard has passed.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

var jsonExtensions = []string{".json"}

// IsJSON reports whether the file passes the type guard: a conventional
// JSON extension or a declared JSON media type.
func (f File) IsJSON() bool {
	ext := strings.ToLower(filepath.Ext(f.Name))
	for _, e := range jsonExtensions {
		if ext == e {
			return true
		}
	}
	return isJSONMediaType(f.ContentType)
}

func isJSONMediaType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct == "application/json" || ct == "text/json" || strings.HasSuffix(ct, "+json")
}

// Read applies the type and size guards, then reads the file content.
// The size guard runs before Open, so an oversized file is never read.
func Read(f File, maxSize int64) ([]byte, error) {
	log := logger.Get("source")

	if !f.IsJSON() {
		return nil, errors.InvalidFileType(f.Name, f.ContentType)
	}
	if maxSize > 0 && f.Size > maxSize {
		log.Warn("file rejected by size guard", logger.Fields(
			logger.FieldFile, f.Name,
			logger.FieldSizeBytes, f.Size,
		))
		return nil, errors.FileTooLarge(f.Name, f.Size, maxSize)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, errors.FileRead(f.Name, err)
	}
	defer rc.Close()

	// The declared size may lie; cap the read at the limit anyway.
	var r io.Reader = rc
	if maxSize > 0 {
		r = io.LimitReader(rc, maxSize+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.FileRead(f.Name, err)
	}
	if maxSize > 0 && int64(len(content)) > maxSize {
		return nil, errors.FileTooLarge(f.Name, int64(len(content)), maxSize)
	}

	log.Debug("file read", logger.Fields(
		logger.FieldFile, f.Name,
		logger.FieldSizeBytes, len(content),
	))
	return content, nil
}

// ReadFile stats path, applies the guards and reads the content. The size
// check uses the stat result, so no read attempt occurs for oversized files.
func ReadFile(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.FileRead(path, err)
	}
	f := File{
		Name: filepath.Base(path),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
	return Read(f, maxSize)
}

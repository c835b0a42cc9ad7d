package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/models"
)

// uploadFileStorage keeps uploaded spreadsheets as flat files in a single
// directory. Names are generated by the service layer and must not contain
// path separators.
type uploadFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewUploadFileStorage creates dir if needed and returns a [FileStorage]
// rooted at it.
func NewUploadFileStorage(dir string, logger *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating upload dir %q: %w", dir, err)
	}

	return &uploadFileStorage{dir: dir, logger: logger}, nil
}

func (s *uploadFileStorage) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	return filepath.Join(s.dir, name), nil
}

func (s *uploadFileStorage) Save(ctx context.Context, name string, r io.Reader) (int64, error) {
	log := logger.FromContext(ctx)

	path, err := s.path(name)
	if err != nil {
		return 0, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, ErrFileAlreadyExists
		}
		return 0, fmt.Errorf("error creating stored file: %w", err)
	}

	written, err := io.Copy(f, readerWithContext(ctx, r))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Err(err).Str("func", "*uploadFileStorage.Save").Str("stored_name", name).Msg("error writing stored file")
		_ = os.Remove(path)
		return 0, fmt.Errorf("error writing stored file: %w", err)
	}

	return written, nil
}

func (s *uploadFileStorage) Open(_ context.Context, name string) (io.ReadSeekCloser, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("error opening stored file: %w", err)
	}

	return f, nil
}

func (s *uploadFileStorage) Remove(_ context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrFileNotFound
		}
		return fmt.Errorf("error removing stored file: %w", err)
	}

	return nil
}

func (s *uploadFileStorage) List(_ context.Context) ([]models.StoredFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("error reading upload dir: %w", err)
	}

	files := make([]models.StoredFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed concurrently
			continue
		}
		files = append(files, models.StoredFile{Name: entry.Name(), Size: info.Size(), ModTime: info.ModTime()})
	}

	return files, nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// readerWithContext stops a copy once ctx is done.
func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return ctxReader{ctx: ctx, r: r}
}

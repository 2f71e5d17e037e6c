// Package storage keeps uploaded medical records on a filesystem and hands
// back the path that the patient document refers to.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

var ErrRecordNotFound = errors.New("record not found on storage")

// MaxRecordSize bounds a single upload (20 MB).
const MaxRecordSize = 20 << 20

var ErrRecordTooLarge = errors.New("record exceeds maximum allowed size")

type RecordStore struct {
	fs afero.Fs
}

// NewDiskStore roots the store at dir on the local disk.
func NewDiskStore(dir string) (*RecordStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return NewRecordStore(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

func NewRecordStore(fs afero.Fs) *RecordStore {
	return &RecordStore{fs: fs}
}

/*
* Keep only the base name of the upload
* Prefix with a uuid so two uploads never overwrite each other
* Return the stored path relative to the store root
 */
func (s *RecordStore) Save(ctx context.Context, ownerID, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	base := filepath.Base(filepath.Clean("/" + filename))
	if base == "/" || base == "." {
		base = "record"
	}
	stored := path.Join(ownerID, uuid.NewString()+"-"+base)

	if err := s.fs.MkdirAll(ownerID, 0o755); err != nil {
		return "", fmt.Errorf("create record dir: %w", err)
	}
	f, err := s.fs.Create(stored)
	if err != nil {
		return "", fmt.Errorf("create record file: %w", err)
	}
	n, err := io.Copy(f, io.LimitReader(content, MaxRecordSize+1))
	closeErr := f.Close()
	if err == nil && n > MaxRecordSize {
		err = ErrRecordTooLarge
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = s.fs.Remove(stored)
		return "", err
	}
	return stored, nil
}

// Open returns the stored record. The caller closes it.
func (s *RecordStore) Open(stored string) (afero.File, error) {
	clean := path.Clean("/" + stored)
	if strings.Contains(stored, "..") {
		return nil, ErrRecordNotFound
	}
	f, err := s.fs.Open(strings.TrimPrefix(clean, "/"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// DisplayName strips the uuid prefix Save added.
func DisplayName(stored string) string {
	base := path.Base(stored)
	if len(base) > 37 && base[36] == '-' {
		if _, err := uuid.Parse(base[:36]); err == nil {
			return base[37:]
		}
	}
	return base
}

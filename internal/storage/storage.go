package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrTooLarge is returned when a file is bigger than the allowed size.
var ErrTooLarge = errors.New("file too large")

// Storage reads the whole content named by a request path. A maxSize of zero
// means no limit.
type Storage interface {
	Read(ctx context.Context, path string, maxSize int64) ([]byte, error)
}

type localStorage struct{}

// NewLocalStorage reads paths from the local filesystem, as given.
func NewLocalStorage() Storage {
	return &localStorage{}
}

func (s *localStorage) Read(ctx context.Context, path string, maxSize int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", path)
	}

	return readLimited(f, info.Size(), maxSize)
}

// readLimited reads r in full. size is the size announced by the source and is
// checked first, then the read itself is capped in case the content grew.
func readLimited(r io.Reader, size, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		return io.ReadAll(r)
	}

	if size > maxSize {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d bytes", ErrTooLarge, size, maxSize)
	}

	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, maxSize)
	}

	return data, nil
}

const s3Scheme = "s3://"

type routedStorage struct {
	local  Storage
	remote Storage
}

// NewRoutedStorage sends s3:// paths to remote and every other path to local.
func NewRoutedStorage(local, remote Storage) Storage {
	return &routedStorage{local: local, remote: remote}
}

func (s *routedStorage) Read(ctx context.Context, path string, maxSize int64) ([]byte, error) {
	if strings.HasPrefix(path, s3Scheme) {
		return s.remote.Read(ctx, path, maxSize)
	}
	return s.local.Read(ctx, path, maxSize)
}

// ParseS3Path splits s3://bucket/key into its bucket and key.
func ParseS3Path(path string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(path, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("%q is not an s3:// path", path)
	}

	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%q must have the form s3://<bucket>/<key>", path)
	}

	return bucket, key, nil
}

package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiskStore keeps buckets as directories under a root. Buckets are
// created explicitly (EnsureBucket); uploading into a bucket that does
// not exist fails with ErrBucketNotFound so callers can tell a
// misconfigured deployment apart from a failed file.
type DiskStore struct {
	root    string
	baseURL string
}

func NewDiskStore(root, baseURL string) *DiskStore {
	return &DiskStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DiskStore) EnsureBucket(bucket string) error {
	dir, err := s.bucketDir(bucket)
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

func (s *DiskStore) Upload(ctx context.Context, bucket, path string, r io.Reader, opts UploadOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir, err := s.bucketDir(bucket)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return ErrBucketNotFound
		}
		return err
	}

	full, err := securePath(dir, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if opts.Overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(full, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrObjectExists, path)
		}
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(full)
		return err
	}
	return nil
}

func (s *DiskStore) List(ctx context.Context, bucket, prefix string) ([]Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := s.bucketDir(bucket)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBucketNotFound
		}
		return nil, err
	}

	target, err := securePath(dir, prefix)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(target)
	if err != nil {
		if os.IsNotExist(err) {
			return []Object{}, nil
		}
		return nil, err
	}

	objects := make([]Object, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		objects = append(objects, Object{
			Name:        entry.Name(),
			Size:        info.Size(),
			ContentType: contentTypeFor(entry.Name()),
		})
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Name < objects[j].Name })
	return objects, nil
}

func (s *DiskStore) PublicURL(bucket, path string) string {
	segments := append([]string{bucket}, strings.Split(path, "/")...)
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.baseURL + "/" + strings.Join(segments, "/")
}

func (s *DiskStore) bucketDir(bucket string) (string, error) {
	if bucket == "" || strings.ContainsAny(bucket, "/\\") {
		return "", fmt.Errorf("storage: invalid bucket name %q", bucket)
	}
	return filepath.Join(s.root, bucket), nil
}

// securePath resolves a slash path inside base, refusing traversal out
// of the bucket.
func securePath(base, path string) (string, error) {
	clean := filepath.Clean(filepath.Join(base, filepath.FromSlash(path)))
	if clean != base && !strings.HasPrefix(clean, base+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: invalid object path %q", path)
	}
	return clean, nil
}

func contentTypeFor(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

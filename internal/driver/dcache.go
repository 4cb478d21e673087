package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"snowball/internal/diag"
	"snowball/internal/project"
	"snowball/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты проверки файлов на диске, ключ - хеш
// содержимого. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached outcome of lexing and parsing one file.
type DiskPayload struct {
	Schema      uint16
	Path        string
	Tokens      int
	Aborted     bool
	Diagnostics []CachedDiagnostic
}

// CachedDiagnostic is a diagnostic without its FileID; spans are restored
// against whichever FileID the file gets on the next run.
type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Args     []string
	HasKind  bool
	Message  string
	Start    uint32
	End      uint32
	Info     *diag.Info
	Notes    []CachedNote
}

type CachedNote struct {
	Start uint32
	End   uint32
	Msg   string
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache uses dir as the cache root, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// CacheKey derives the key for file: its content hash mixed with the
// schema version and the diagnostic limit, both of which change the payload.
func CacheKey(file *source.File, maxDiagnostics int) project.Digest {
	return project.Combine(
		project.Digest(file.Hash),
		project.DigestString("schema:"+strconv.Itoa(int(diskCacheSchemaVersion))),
		project.DigestString("max:"+strconv.Itoa(maxDiagnostics)),
	)
}

func (c *DiskCache) pathFor(key project.Digest) string {
	// Для удобства читаемости/очистки - подкаталог "files".
	return filepath.Join(c.dir, "files", key.String()+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. A payload of
// another schema version counts as a miss.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func newPayload(path string, tokens int, aborted bool, bag *diag.Bag) *DiskPayload {
	payload := &DiskPayload{
		Schema:  diskCacheSchemaVersion,
		Path:    path,
		Tokens:  tokens,
		Aborted: aborted,
	}
	for _, d := range bag.Items() {
		cd := CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Info:     d.Info,
		}
		if d.Kind != nil {
			cd.HasKind = true
			cd.Args = d.Kind.Args()
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		payload.Diagnostics = append(payload.Diagnostics, cd)
	}
	return payload
}

// restore rebuilds the diagnostics of payload against file.
func (payload *DiskPayload) restore(file source.FileID, bag *diag.Bag) {
	for _, cd := range payload.Diagnostics {
		d := &diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: file, Start: cd.Start, End: cd.End},
			Info:     cd.Info,
		}
		if cd.HasKind {
			if kind, ok := diag.KindFromCode(d.Code, cd.Args); ok {
				d.Kind = kind
			}
		}
		for _, n := range cd.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Span: source.Span{File: file, Start: n.Start, End: n.End},
				Msg:  n.Msg,
			})
		}
		bag.Add(d)
	}
}

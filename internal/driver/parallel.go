package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"snowball/internal/ast"
	"snowball/internal/diag"
	"snowball/internal/parser"
	"snowball/internal/source"
	"snowball/internal/trace"
)

// SourceExt is the extension ParseDir picks up.
const SourceExt = ".sn"

type DirOptions struct {
	MaxDiagnostics int
	Jobs           int // <= 0 means GOMAXPROCS
	// Cache, when set, short-circuits files whose content was already
	// checked. Cached results carry diagnostics but no tree, so only
	// diagnostics-only callers should set it.
	Cache    *DiskCache
	Progress ProgressSink
}

// ParseDirResult содержит результат разбора одного файла
type ParseDirResult struct {
	Path   string
	FileID source.FileID
	Tree   ast.Node
	Tokens int
	Bag    *diag.Bag
	Err    error // parser.ErrAborted, or nil
	Cached bool
}

// Failed reports whether the file produced errors.
func (r *ParseDirResult) Failed() bool {
	return r.Err != nil || (r.Bag != nil && r.Bag.HasErrors())
}

// ListSourceFiles возвращает отсортированный список всех *.sn файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ParseDir разбирает все *.sn файлы в директории параллельно: один парсер на
// файл, не больше opts.Jobs одновременно. Результаты идут в порядке
// ListSourceFiles. Ошибка возвращается при сбое обхода или отмене ctx.
func ParseDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []ParseDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "parse-dir", trace.CurrentSpan(ctx).SpanID).
		WithExtra("files", strconv.Itoa(len(files)))
	ctx = trace.WithSpan(ctx, span)

	// Предзагружаем все файлы: FileSet не рассчитан на параллельный Add.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			// пустая заглушка, чтобы диагностика указывала на сам файл
			fileID = fileSet.AddVirtual(path, nil)
			loadErrors[path] = err
		}
		fileIDs[path] = fileID
	}

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}
	emit(opts.Progress, Event{Stage: StageParse, Status: StatusWorking})

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)
			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.NewError(diag.LoadFailed{Reason: loadErr.Error()}, source.Span{File: fileIDs[path]}))
				results[i] = ParseDirResult{Path: path, FileID: fileIDs[path], Bag: bag}
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
				return nil
			}

			results[i] = parseOne(gctx, fileSet, fileIDs[path], path, bag, opts)
			return nil
		})
	}

	err = g.Wait()
	status := StatusDone
	if err != nil {
		status = StatusError
	}
	emit(opts.Progress, Event{Stage: StageParse, Status: status, Err: err})
	span.WithExtra("failed", strconv.Itoa(countFailed(results))).End(string(status))
	return fileSet, results, err
}

func parseOne(ctx context.Context, fileSet *source.FileSet, id source.FileID, path string, bag *diag.Bag, opts DirOptions) ParseDirResult {
	started := time.Now()
	file := fileSet.Get(id)

	key := CacheKey(file, opts.MaxDiagnostics)
	if opts.Cache != nil {
		var payload DiskPayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok {
			payload.restore(id, bag)
			res := ParseDirResult{Path: path, FileID: id, Tokens: payload.Tokens, Bag: bag, Cached: true}
			if payload.Aborted {
				res.Err = parser.ErrAborted
			}
			emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusCached, Elapsed: time.Since(started)})
			return res
		}
	}

	emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
	pr := parser.ParseFile(ctx, fileSet, id, parser.Options{Bag: bag})
	res := ParseDirResult{
		Path:   path,
		FileID: id,
		Tree:   pr.Tree,
		Tokens: pr.Tokens,
		Bag:    bag,
		Err:    pr.Err,
	}

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, newPayload(path, pr.Tokens, pr.Err != nil, bag)); err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeModule, "cache-put", err.Error(), trace.CurrentSpan(ctx).SpanID)
		}
	}

	status := StatusDone
	if res.Failed() {
		status = StatusError
	}
	emit(opts.Progress, Event{File: path, Stage: StageParse, Status: status, Err: pr.Err, Elapsed: time.Since(started)})
	return res
}

func countFailed(results []ParseDirResult) int {
	n := 0
	for i := range results {
		if results[i].Failed() {
			n++
		}
	}
	return n
}

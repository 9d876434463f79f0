package archive

import (
	"github.com/dgraph-io/ristretto"

	"scalardat/stats"
	"scalardat/storage"
	"scalardat/table"
)

// Archive is a read-through store of scalar table reductions. A
// lookup first checks the in-memory cache, then the backend, and only
// then parses and reduces the file, persisting the result for the
// next caller. Entries are keyed by file fingerprint, so edits to a
// file leave its stale entries behind rather than serving them.
type Archive struct {
	backend storage.Backend
	cache   *ristretto.Cache
	opts    table.Options
}

func New(backend storage.Backend, opts table.Options) *Archive {
	cache, _ := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	return &Archive{
		backend: backend,
		cache:   cache,
		opts:    opts,
	}
}

func (a *Archive) Close() error {
	return a.backend.Close()
}

// TableSummary returns the reduction of every column of the file at
// path, computed with the given equilibration cut.
func (a *Archive) TableSummary(path string, nequil int) (*stats.TableSummary, error) {
	fileID, err := Fingerprint(path)
	if err != nil {
		return nil, err
	}

	if cached, found := a.lookup(fileID, nequil); found {
		return cached, nil
	}
	if stored, err := a.loadStored(fileID, nequil); err == nil {
		a.cache.Set(storage.GetKey(true, fileID, 0), stored, 1)
		return stored, nil
	} else if err != storage.ErrNotFound {
		return nil, err
	}

	tbl, err := table.ParseFileWith(path, a.opts)
	if err != nil {
		return nil, err
	}
	summary, err := stats.SummarizeTable(tbl, nequil)
	if err != nil {
		return nil, err
	}
	if err := a.store(fileID, int64(tbl.NumRows()), summary); err != nil {
		return nil, err
	}
	a.cache.Set(storage.GetKey(true, fileID, 0), summary, 1)
	return summary, nil
}

// Summary returns the reduction of one named column.
func (a *Archive) Summary(path, column string, nequil int) (*stats.Summary, error) {
	tableSummary, err := a.TableSummary(path, nequil)
	if err != nil {
		return nil, err
	}
	return tableSummary.Get(column)
}

func (a *Archive) lookup(fileID int64, nequil int) (*stats.TableSummary, bool) {
	value, found := a.cache.Get(storage.GetKey(true, fileID, 0))
	if !found {
		return nil, false
	}
	summary := value.(*stats.TableSummary)
	if !summaryMatchesCut(summary, nequil) {
		return nil, false
	}
	return summary, true
}

// loadStored rebuilds a TableSummary from backend entries. Returns
// storage.ErrNotFound when the file has no usable entries, including
// when they were computed with a different equilibration cut.
func (a *Archive) loadStored(fileID int64, nequil int) (*stats.TableSummary, error) {
	buf, err := a.backend.GetManifest(fileID)
	if err != nil {
		return nil, err
	}
	manifest, err := BytesToManifest(buf)
	if err != nil {
		return nil, err
	}
	if manifest.Nequil != int64(nequil) {
		return nil, storage.ErrNotFound
	}

	summaries := make([]*stats.Summary, len(manifest.Names))
	for i := range manifest.Names {
		buf, err := a.backend.GetSummary(fileID, int64(i))
		if err != nil {
			return nil, err
		}
		summaries[i], err = BytesToSummary(buf)
		if err != nil {
			return nil, err
		}
	}
	return &stats.TableSummary{
		Names:     manifest.Names,
		Summaries: summaries,
	}, nil
}

func (a *Archive) store(fileID, numRows int64, summary *stats.TableSummary) error {
	manifest := &Manifest{
		Nequil:  summaryNequil(summary),
		NumRows: numRows,
		Names:   summary.Names,
	}
	bufs := make([][]byte, len(summary.Summaries))
	for i, s := range summary.Summaries {
		bufs[i] = SummaryToBytes(s)
	}
	return a.backend.PutFile(fileID, ManifestToBytes(manifest), bufs)
}

func summaryNequil(summary *stats.TableSummary) int64 {
	if len(summary.Summaries) == 0 {
		return 0
	}
	return summary.Summaries[0].Nequil
}

func summaryMatchesCut(summary *stats.TableSummary, nequil int) bool {
	return summaryNequil(summary) == int64(nequil)
}

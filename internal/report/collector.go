// Package report builds and writes the aggregate data-quality report.
package report

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/isawnyu/pleiades-quality/internal/checks"
	"github.com/isawnyu/pleiades-quality/internal/place"
	"github.com/isawnyu/pleiades-quality/internal/types"
)

// Collector walks a directory tree of place records and applies the check
// battery to each one. Checks are passed in at construction; the scan loop
// never needs to change when a check is added.
type Collector struct {
	checks  []checks.Check
	log     *zap.SugaredLogger
	workers int
}

// NewCollector returns a Collector over the given check set. workers below
// 2 selects the plain sequential scan.
func NewCollector(cs []checks.Check, log *zap.SugaredLogger, workers int) *Collector {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if workers < 1 {
		workers = 1
	}
	return &Collector{checks: cs, log: log, workers: workers}
}

// failure is one check failure of one record.
type failure struct {
	category string
	issue    types.Issue
}

// Scan discovers every .json record file under srcDir, evaluates each
// record, and returns the accumulated report. Record files that fail to
// parse are reported under the unreadable_record category; the scan
// continues. Discovered files are sorted by path so the report is
// reproducible regardless of filesystem traversal order.
func (c *Collector) Scan(srcDir string) (*types.Report, error) {
	info, err := os.Stat(srcDir)
	if err != nil {
		return nil, &InputPathError{Path: srcDir, Cause: err}
	}
	if !info.IsDir() {
		return nil, &InputPathError{Path: srcDir, Cause: fs.ErrInvalid}
	}

	files, err := c.discover(srcDir)
	if err != nil {
		return nil, &InputPathError{Path: srcDir, Cause: err}
	}
	c.log.Infof("crawling for place records: %s (%d files)", srcDir, len(files))

	results := make([][]failure, len(files))
	if c.workers > 1 {
		var g errgroup.Group
		g.SetLimit(c.workers)
		for i, f := range files {
			i, f := i, f
			g.Go(func() error {
				results[i] = c.evaluate(f)
				return nil
			})
		}
		// Workers never return errors; per-record failures are issues.
		_ = g.Wait()
	} else {
		for i, f := range files {
			results[i] = c.evaluate(f)
		}
	}

	rep := types.NewReport(checks.Categories(c.checks))
	problems := 0
	for _, failures := range results {
		if len(failures) > 0 {
			problems++
		}
		for _, f := range failures {
			rep.Add(f.category, f.issue)
		}
	}
	rep.Finalize(len(files), problems)

	for _, name := range checks.Categories(c.checks) {
		c.log.Infof("%s: %d", name, rep.Summary[name])
	}
	c.log.Infof("total problem place count: %d", problems)
	return rep, nil
}

// discover returns the sorted list of .json files under root.
func (c *Collector) discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// evaluate loads one record file and runs every check against it.
func (c *Collector) evaluate(path string) []failure {
	p, err := place.Load(path)
	if err != nil {
		c.log.Debugf("unreadable record %s: %v", path, err)
		return []failure{{
			category: checks.UnreadableRecord,
			issue:    types.Issue{ID: place.IDFromPath(path), Detail: err.Error()},
		}}
	}

	var failures []failure
	for _, chk := range c.checks {
		detail, failed := chk.Run(p)
		if !failed {
			continue
		}
		c.log.Debugf("%s: %s", chk.Name, p.ID)
		failures = append(failures, failure{
			category: chk.Name,
			issue:    types.Issue{ID: p.ID, Detail: detail},
		})
	}
	return failures
}

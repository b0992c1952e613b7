package engine

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/danieljhkim/namexif/internal/imagefile"
	"github.com/danieljhkim/namexif/internal/planner"
)

// mockFS is a mock implementation of fsops.FS for testing.
type mockFS struct {
	infos     map[string]os.FileInfo
	entries   map[string][]fs.DirEntry
	renameErr map[string]error // keyed by source path
	renamed   [][2]string
}

func newMockFS() *mockFS {
	return &mockFS{
		infos:     make(map[string]os.FileInfo),
		entries:   make(map[string][]fs.DirEntry),
		renameErr: make(map[string]error),
	}
}

func (m *mockFS) addFile(path string) {
	m.infos[path] = &mockFileInfo{name: filepath.Base(path)}
}

func (m *mockFS) addDir(path string, names ...string) {
	m.infos[path] = &mockFileInfo{name: filepath.Base(path), isDir: true}
	entries := []fs.DirEntry{}
	for _, name := range names {
		entries = append(entries, &mockDirEntry{name: name})
	}
	m.entries[path] = entries
}

func (m *mockFS) Stat(path string) (os.FileInfo, error) {
	if info, ok := m.infos[path]; ok {
		return info, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockFS) ReadDir(path string) ([]fs.DirEntry, error) {
	if _, ok := m.entries[path]; !ok {
		return nil, os.ErrNotExist
	}
	return m.entries[path], nil
}

func (m *mockFS) Rename(source, target string) error {
	if err := m.renameErr[source]; err != nil {
		return err
	}
	m.renamed = append(m.renamed, [2]string{source, target})
	return nil
}

type mockFileInfo struct {
	name  string
	isDir bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return 0 }
func (m *mockFileInfo) Mode() os.FileMode  { return 0644 }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

type mockDirEntry struct {
	name string
}

func (m *mockDirEntry) Name() string               { return m.name }
func (m *mockDirEntry) IsDir() bool                { return false }
func (m *mockDirEntry) Type() fs.FileMode          { return 0 }
func (m *mockDirEntry) Info() (os.FileInfo, error) { return &mockFileInfo{name: m.name}, nil }

// fakeDates is a mock planner.DateSource keyed by path.
type fakeDates struct {
	dates map[string]imagefile.NaiveDatetime
	errs  map[string]error
}

func newFakeDates() *fakeDates {
	return &fakeDates{
		dates: make(map[string]imagefile.NaiveDatetime),
		errs:  make(map[string]error),
	}
}

func (f *fakeDates) NaiveDatetime(path string) (imagefile.NaiveDatetime, error) {
	if err, ok := f.errs[path]; ok {
		return imagefile.NaiveDatetime{}, err
	}
	if date, ok := f.dates[path]; ok {
		return date, nil
	}
	return imagefile.NaiveDatetime{}, errors.New("no date registered for " + path)
}

// stubConfirmer records whether it was asked and returns a fixed answer.
type stubConfirmer struct {
	answer bool
	err    error
	asked  bool
}

func (c *stubConfirmer) Confirm(string) (bool, error) {
	c.asked = true
	return c.answer, c.err
}

// recordingReporter collects the reported rename pairs.
type recordingReporter struct {
	renames [][2]string
}

func (r *recordingReporter) PlannedRename(source, target string) {
	r.renames = append(r.renames, [2]string{source, target})
}

// testEngine wires an engine over the given mocks with a nop logger.
func testEngine(mfs *mockFS, dates *fakeDates, confirm *stubConfirmer) (*Engine, *recordingReporter) {
	log := zap.NewNop()
	reporter := &recordingReporter{}
	return New(mfs, planner.New(mfs, dates, log), confirm, reporter, log), reporter
}

func naive(year int, month time.Month, day int) imagefile.NaiveDatetime {
	return imagefile.NaiveDatetime{Year: year, Month: month, Day: day, Hour: 12}
}

func request(source string) *RunRequest {
	return &RunRequest{
		Source:     source,
		Location:   time.UTC,
		NameFormat: "%Y-%m-%d",
		AssumeYes:  true,
	}
}

func TestRunRenamesBatch(t *testing.T) {
	mfs := newMockFS()
	mfs.addDir("/pics", "a.jpg", "b.jpg")
	mfs.addFile("/pics/a.jpg")
	mfs.addFile("/pics/b.jpg")

	dates := newFakeDates()
	dates.dates["/pics/a.jpg"] = naive(2020, time.January, 1)
	dates.dates["/pics/b.jpg"] = naive(2020, time.January, 2)

	eng, reporter := testEngine(mfs, dates, &stubConfirmer{})

	result, err := eng.Run(request("/pics"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Renamed != 2 || result.Errors != 0 {
		t.Errorf("(renamed, errors) = (%d, %d), want (2, 0)", result.Renamed, result.Errors)
	}

	wantRenames := [][2]string{
		{"/pics/a.jpg", "/pics/2020-01-01.jpg"},
		{"/pics/b.jpg", "/pics/2020-01-02.jpg"},
	}
	if len(mfs.renamed) != 2 || mfs.renamed[0] != wantRenames[0] || mfs.renamed[1] != wantRenames[1] {
		t.Errorf("applied renames = %v, want %v", mfs.renamed, wantRenames)
	}
	if len(reporter.renames) != 2 {
		t.Errorf("reported renames = %d, want 2", len(reporter.renames))
	}
}

func TestRunConflictAbortsWholeBatch(t *testing.T) {
	mfs := newMockFS()
	mfs.addDir("/pics", "a.jpg", "b.jpg", "c.jpg")
	mfs.addFile("/pics/a.jpg")
	mfs.addFile("/pics/b.jpg")
	mfs.addFile("/pics/c.jpg")

	dates := newFakeDates()
	// a and b land on the same target; c is clean but must not be renamed
	// either, because conflicts invalidate the whole batch.
	dates.dates["/pics/a.jpg"] = naive(2020, time.January, 1)
	dates.dates["/pics/b.jpg"] = naive(2020, time.January, 1)
	dates.dates["/pics/c.jpg"] = naive(2020, time.June, 6)

	eng, _ := testEngine(mfs, dates, &stubConfirmer{answer: true})

	result, err := eng.Run(request("/pics"))

	var conflicts *ConflictsError
	if !errors.As(err, &conflicts) {
		t.Fatalf("error = %v, want *ConflictsError", err)
	}
	if conflicts.Count != 1 {
		t.Errorf("conflict count = %d, want 1", conflicts.Count)
	}
	if len(mfs.renamed) != 0 {
		t.Errorf("filesystem was mutated despite conflicts: %v", mfs.renamed)
	}
	if result == nil || result.Renamed != 0 {
		t.Errorf("result = %+v, want zero renames", result)
	}
}

func TestRunDryRunNeverMutates(t *testing.T) {
	mfs := newMockFS()
	mfs.addDir("/pics", "a.jpg")
	mfs.addFile("/pics/a.jpg")

	dates := newFakeDates()
	dates.dates["/pics/a.jpg"] = naive(2020, time.January, 1)

	confirm := &stubConfirmer{answer: true}
	eng, reporter := testEngine(mfs, dates, confirm)

	req := request("/pics")
	req.DryRun = true
	req.AssumeYes = false

	result, err := eng.Run(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Renamed != 0 || len(mfs.renamed) != 0 {
		t.Error("dry run applied renames")
	}
	if confirm.asked {
		t.Error("dry run prompted for confirmation")
	}
	if len(reporter.renames) != 1 {
		t.Errorf("reported renames = %d, want 1 (dry run still displays the plan)", len(reporter.renames))
	}
}

func TestRunDeclinedConfirmationLeavesFilesAlone(t *testing.T) {
	mfs := newMockFS()
	mfs.addDir("/pics", "a.jpg")
	mfs.addFile("/pics/a.jpg")

	dates := newFakeDates()
	dates.dates["/pics/a.jpg"] = naive(2020, time.January, 1)

	confirm := &stubConfirmer{answer: false}
	eng, _ := testEngine(mfs, dates, confirm)

	req := request("/pics")
	req.AssumeYes = false

	result, err := eng.Run(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !confirm.asked {
		t.Error("confirmation was never requested")
	}
	if result.Renamed != 0 || len(mfs.renamed) != 0 {
		t.Error("renames applied despite declined confirmation")
	}
}

func TestRunCountsPartialApplyFailures(t *testing.T) {
	mfs := newMockFS()
	mfs.addDir("/pics", "a.jpg", "b.jpg", "c.jpg")
	mfs.addFile("/pics/a.jpg")
	mfs.addFile("/pics/b.jpg")
	mfs.addFile("/pics/c.jpg")
	mfs.renameErr["/pics/b.jpg"] = os.ErrPermission

	dates := newFakeDates()
	dates.dates["/pics/a.jpg"] = naive(2020, time.January, 1)
	dates.dates["/pics/b.jpg"] = naive(2020, time.January, 2)
	dates.dates["/pics/c.jpg"] = naive(2020, time.January, 3)

	eng, _ := testEngine(mfs, dates, &stubConfirmer{})

	result, err := eng.Run(request("/pics"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Renamed != 2 || result.Errors != 1 {
		t.Errorf("(renamed, errors) = (%d, %d), want (2, 1)", result.Renamed, result.Errors)
	}
	// The failure must not abort the remaining items.
	if len(mfs.renamed) != 2 {
		t.Errorf("applied renames = %v, want a.jpg and c.jpg", mfs.renamed)
	}
}

func TestRunNothingToDo(t *testing.T) {
	mfs := newMockFS()
	mfs.addDir("/pics", "notes.txt")
	mfs.addFile("/pics/notes.txt")

	confirm := &stubConfirmer{answer: true}
	eng, _ := testEngine(mfs, newFakeDates(), confirm)

	req := request("/pics")
	req.AssumeYes = false

	result, err := eng.Run(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Renamed != 0 || result.Errors != 0 {
		t.Errorf("(renamed, errors) = (%d, %d), want (0, 0)", result.Renamed, result.Errors)
	}
	if confirm.asked {
		t.Error("confirmation requested for an empty plan")
	}
}

func TestRunImageErrorsAreCountedNotFatal(t *testing.T) {
	mfs := newMockFS()
	mfs.addDir("/pics", "a.jpg", "broken.jpg")
	mfs.addFile("/pics/a.jpg")
	mfs.addFile("/pics/broken.jpg")

	dates := newFakeDates()
	dates.dates["/pics/a.jpg"] = naive(2020, time.January, 1)
	dates.errs["/pics/broken.jpg"] = imagefile.ErrMissingDateTag

	eng, _ := testEngine(mfs, dates, &stubConfirmer{})

	result, err := eng.Run(request("/pics"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Renamed != 1 || result.Errors != 1 {
		t.Errorf("(renamed, errors) = (%d, %d), want (1, 1)", result.Renamed, result.Errors)
	}
}

func TestRunConfirmationFailureIsAnError(t *testing.T) {
	mfs := newMockFS()
	mfs.addDir("/pics", "a.jpg")
	mfs.addFile("/pics/a.jpg")

	dates := newFakeDates()
	dates.dates["/pics/a.jpg"] = naive(2020, time.January, 1)

	confirm := &stubConfirmer{err: errors.New("stdin closed")}
	eng, _ := testEngine(mfs, dates, confirm)

	req := request("/pics")
	req.AssumeYes = false

	if _, err := eng.Run(req); err == nil {
		t.Fatal("expected error when confirmation cannot be read")
	}
	if len(mfs.renamed) != 0 {
		t.Error("renames applied despite confirmation failure")
	}
}

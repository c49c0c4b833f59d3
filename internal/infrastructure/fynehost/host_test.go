package fynehost

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DropScope/internal/infrastructure/logging"
	"DropScope/internal/usecase/ingest"
	"DropScope/internal/usecase/report"
)

// memLister はパスをキーにした子要素の一覧です
type memLister struct {
	dirs    map[string][]string
	listErr map[string]error
	kindErr map[string]error
}

func (m *memLister) CanList(u fyne.URI) (bool, error) {
	if err, ok := m.kindErr[u.Path()]; ok {
		return false, err
	}
	_, ok := m.dirs[u.Path()]
	return ok, nil
}

func (m *memLister) List(u fyne.URI) ([]fyne.URI, error) {
	if err, ok := m.listErr[u.Path()]; ok {
		return nil, err
	}
	var out []fyne.URI
	for _, name := range m.dirs[u.Path()] {
		out = append(out, storage.NewFileURI(u.Path()+"/"+name))
	}
	return out, nil
}

func TestItemList_Walk(t *testing.T) {
	lister := &memLister{
		dirs: map[string][]string{
			"/drop/sub":      {"b.txt", "sub2"},
			"/drop/sub/sub2": {"c.txt"},
		},
	}
	items := NewItemList([]fyne.URI{
		storage.NewFileURI("/drop/a.txt"),
		nil,
		storage.NewFileURI("/drop/sub"),
	}, lister)

	var lines []string
	in := ingest.New(report.SinkFunc(func(l string) { lines = append(lines, l) }), logging.Nop())

	job := in.Accept(items)
	require.Equal(t, ingest.ModeHandles, job.Mode())
	job.Run(context.Background())

	assert.ElementsMatch(t, []string{
		"Items: 3",
		"Handles [0] /file: a.txt",
		"Handles [1] /directory: sub",
		"Handles [1] /sub/file: b.txt",
		"Handles [1] /sub/directory: sub2",
		"Handles [1] /sub/sub2/file: c.txt",
	}, lines)
}

func TestItemList_Failures(t *testing.T) {
	lister := &memLister{
		dirs:    map[string][]string{"/drop/locked": {"x"}, "/drop/ok": {"y"}},
		listErr: map[string]error{"/drop/locked": errors.New("permission denied")},
		kindErr: map[string]error{"/drop/gone": errors.New("no such file")},
	}
	items := NewItemList([]fyne.URI{
		storage.NewFileURI("/drop/locked"),
		storage.NewFileURI("/drop/gone"),
		storage.NewFileURI("/drop/ok"),
	}, lister)

	var lines []string
	in := ingest.New(report.SinkFunc(func(l string) { lines = append(lines, l) }), logging.Nop())
	in.Accept(items).Run(context.Background())

	assert.Contains(t, lines, "Handles [0] /directory: locked")
	assert.Contains(t, lines, "Handles [0] /failed getting directory handle values for locked: error iterating directory handle values(): permission denied")
	assert.Contains(t, lines, "Handles [2] /ok/file: y")

	found := false
	for _, l := range lines {
		if strings.HasPrefix(l, "Handles [1] /failed reading kind of gone:") {
			found = true
		}
	}
	assert.True(t, found, "診断行が見つかりません: %v", lines)
}

func TestItem_GetAsFile(t *testing.T) {
	lister := &memLister{dirs: map[string][]string{"/drop/dir": nil}}
	items := NewItemList([]fyne.URI{storage.NewFileURI("/drop/a.txt"), storage.NewFileURI("/drop/dir")}, lister)

	it, err := items.Item(0)
	require.NoError(t, err)
	f, err := it.GetAsFile()
	require.NoError(t, err)
	assert.Equal(t, "a.txt", f.Name())

	it, err = items.Item(1)
	require.NoError(t, err)
	f, err = it.GetAsFile()
	require.NoError(t, err)
	assert.Nil(t, f)

	_, err = items.Item(5)
	assert.Error(t, err)
}

type countingLister struct {
	memLister
	calls int
}

func (c *countingLister) CanList(u fyne.URI) (bool, error) {
	c.calls++
	return c.memLister.CanList(u)
}

func TestSchemeLister(t *testing.T) {
	dirs := memLister{dirs: map[string][]string{"/d": {"x"}}}
	registered := &countingLister{memLister: dirs}
	fallback := &countingLister{memLister: dirs}

	ok, err := NewSchemeLister(map[string]Lister{"file": registered}, fallback).CanList(storage.NewFileURI("/d"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, registered.calls)
	assert.Zero(t, fallback.calls)

	ok, err = NewSchemeLister(nil, fallback).CanList(storage.NewFileURI("/d"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, fallback.calls)
}

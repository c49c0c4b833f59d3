package ingest

import (
	"context"
	"errors"
	"sort"
	"sync"

	"DropScope/internal/domain/model"
)

// recorder はテスト用に出力行を記録する Sink です
type recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *recorder) Emit(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

func (r *recorder) sorted() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]string(nil), r.lines...)
	sort.Strings(out)
	return out
}

type mockLogger struct {
	mu   sync.Mutex
	logs []struct {
		level   string
		message string
		err     error
	}
}

func (m *mockLogger) Log(level, message string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, struct {
		level   string
		message string
		err     error
	}{level, message, err})
}

func (m *mockLogger) levels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, l := range m.logs {
		out = append(out, l.level)
	}
	return out
}

// fakeHandle はメモリ上のファイルまたはディレクトリです
type fakeHandle struct {
	name     string
	kind     string
	children []model.Handle

	nameErr   error
	kindErr   error
	valuesErr error
	// nextErrAt 番目の Next 呼び出しで同期エラーを返します (0 は無効)
	nextErrAt int
	// rejectAt 番目のステップを失敗させます (0 は無効)
	rejectAt int
}

func file(name string) *fakeHandle {
	return &fakeHandle{name: name, kind: "file"}
}

func dir(name string, children ...model.Handle) *fakeHandle {
	return &fakeHandle{name: name, kind: "directory", children: children}
}

func (h *fakeHandle) Name() (string, error) { return h.name, h.nameErr }
func (h *fakeHandle) Kind() (string, error) { return h.kind, h.kindErr }

func (h *fakeHandle) Values(ctx context.Context) (model.Cursor, error) {
	if h.valuesErr != nil {
		return nil, h.valuesErr
	}
	return &fakeCursor{h: h}, nil
}

type fakeCursor struct {
	h     *fakeHandle
	pos   int
	calls int
}

func (c *fakeCursor) Next() (model.Future[model.Step], error) {
	c.calls++
	if c.h.nextErrAt != 0 && c.calls == c.h.nextErrAt {
		return nil, errors.New("next threw")
	}
	if c.h.rejectAt != 0 && c.calls == c.h.rejectAt {
		return model.Rejected[model.Step](errors.New("step rejected")), nil
	}
	if c.pos >= len(c.h.children) {
		return model.Resolved(model.Step{Done: true}), nil
	}
	child := c.h.children[c.pos]
	c.pos++
	return model.Resolved(model.Step{Value: child}), nil
}

// fakeFile はファイル参照です
type fakeFile string

func (f fakeFile) Name() string { return string(f) }

// fakeItem はハンドル取得機能を持たないドロップ項目です
type fakeItem struct {
	kind    string
	file    model.File
	fileErr error
}

func (i *fakeItem) Kind() string                   { return i.kind }
func (i *fakeItem) GetAsFile() (model.File, error) { return i.file, i.fileErr }

// fakeHandleItem はハンドル取得機能を持つドロップ項目です
type fakeHandleItem struct {
	fakeItem
	handle     model.Handle
	requestErr error
	awaitErr   error
	probe      *batchProbe
}

func handleItem(h model.Handle) *fakeHandleItem {
	return &fakeHandleItem{fakeItem: fakeItem{kind: "file"}, handle: h}
}

func (i *fakeHandleItem) GetAsFileSystemHandle() (model.Future[model.Handle], error) {
	if i.probe != nil {
		i.probe.request()
	}
	if i.requestErr != nil {
		return nil, i.requestErr
	}
	return model.FutureFunc[model.Handle](func(ctx context.Context) (model.Handle, error) {
		if i.probe != nil {
			i.probe.await()
		}
		if i.awaitErr != nil {
			return nil, i.awaitErr
		}
		return i.handle, nil
	}), nil
}

// batchProbe は待機が始まった後に要求が発行されたかを検出します
type batchProbe struct {
	mu             sync.Mutex
	requested      int
	awaited        int
	lateRequests   int
	requestsAtWait []int
}

func (p *batchProbe) request() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.awaited > 0 {
		p.lateRequests++
	}
	p.requested++
}

func (p *batchProbe) await() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.awaited++
	p.requestsAtWait = append(p.requestsAtWait, p.requested)
}

// fakeItemList はドロップ項目の集合です。errs の位置は取得に失敗します
type fakeItemList struct {
	items []model.DropItem
	errs  map[int]error
}

func itemList(items ...model.DropItem) *fakeItemList {
	return &fakeItemList{items: items}
}

func (l *fakeItemList) Len() int { return len(l.items) }

func (l *fakeItemList) Item(i int) (model.DropItem, error) {
	if err, ok := l.errs[i]; ok {
		return nil, err
	}
	return l.items[i], nil
}

// Package fynehost は fyne のウィンドウにドロップされた URI をドロップ項目として扱います
package fynehost

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"DropScope/internal/domain/model"
)

// Lister は URI が一覧可能かの判定と子要素の一覧を提供します
type Lister interface {
	CanList(u fyne.URI) (bool, error)
	List(u fyne.URI) ([]fyne.URI, error)
}

type storageLister struct{}

func (storageLister) CanList(u fyne.URI) (bool, error)   { return storage.CanList(u) }
func (storageLister) List(u fyne.URI) ([]fyne.URI, error) { return storage.List(u) }

// StorageLister は fyne の storage リポジトリを使う Lister を返します
func StorageLister() Lister {
	return storageLister{}
}

// ItemList はドロップされた URI の集合です
type ItemList struct {
	uris   []fyne.URI
	lister Lister
}

// NewItemList は新しい ItemList を作成します
func NewItemList(uris []fyne.URI, lister Lister) *ItemList {
	if lister == nil {
		lister = StorageLister()
	}
	return &ItemList{uris: uris, lister: lister}
}

// Len は項目数を返します
func (l *ItemList) Len() int {
	return len(l.uris)
}

// Item は i 番目の項目を返します
func (l *ItemList) Item(i int) (model.DropItem, error) {
	if i < 0 || i >= len(l.uris) || l.uris[i] == nil {
		return nil, fmt.Errorf("Items [%d]: %w", i, model.ErrMissingItem)
	}
	return &Item{handle: &Handle{uri: l.uris[i], lister: l.lister}}, nil
}

// Item はドロップされた 1 つの URI です。常にハンドルを取得できます
type Item struct {
	handle *Handle
}

// Kind は常にファイル系の種別を返します
func (i *Item) Kind() string {
	return model.ItemKindFile
}

// GetAsFile は一覧できない URI をファイルとして返します
func (i *Item) GetAsFile() (model.File, error) {
	listable, err := i.handle.lister.CanList(i.handle.uri)
	if err != nil {
		return nil, err
	}
	if listable {
		return nil, nil
	}
	return uriFile{uri: i.handle.uri}, nil
}

// GetAsFileSystemHandle は取得済みのハンドルを返します
func (i *Item) GetAsFileSystemHandle() (model.Future[model.Handle], error) {
	return model.Resolved[model.Handle](i.handle), nil
}

type uriFile struct {
	uri fyne.URI
}

func (f uriFile) Name() string {
	return f.uri.Name()
}

// Handle は URI をハンドルとして扱います
type Handle struct {
	uri    fyne.URI
	lister Lister
}

// NewHandle は新しい Handle を作成します
func NewHandle(uri fyne.URI, lister Lister) *Handle {
	if lister == nil {
		lister = StorageLister()
	}
	return &Handle{uri: uri, lister: lister}
}

// Name は URI の最後の要素を返します
func (h *Handle) Name() (string, error) {
	return h.uri.Name(), nil
}

// Kind は一覧可能な URI を directory、それ以外を file とします
func (h *Handle) Kind() (string, error) {
	listable, err := h.lister.CanList(h.uri)
	if err != nil {
		return "", fmt.Errorf("%s の種別を判定できません: %w", h.uri, err)
	}
	if listable {
		return string(model.HandleDirectory), nil
	}
	return string(model.HandleFile), nil
}

// Values は子要素を列挙するカーソルを返します。一覧は最初の Next で取得します
func (h *Handle) Values(ctx context.Context) (model.Cursor, error) {
	return &cursor{handle: h}, nil
}

type cursor struct {
	handle   *Handle
	children []fyne.URI
	listed   bool
	pos      int
}

func (c *cursor) Next() (model.Future[model.Step], error) {
	if !c.listed {
		children, err := c.handle.lister.List(c.handle.uri)
		if err != nil {
			return nil, err
		}
		c.children = children
		c.listed = true
	}

	if c.pos >= len(c.children) {
		return model.Resolved(model.Step{Done: true}), nil
	}
	child := c.children[c.pos]
	c.pos++
	if child == nil {
		return model.Resolved(model.Step{}), nil
	}
	return model.Resolved(model.Step{Value: &Handle{uri: child, lister: c.handle.lister}}), nil
}

// SchemeLister は URI のスキームごとに Lister を切り替えます
type SchemeLister struct {
	schemes  map[string]Lister
	fallback Lister
}

// NewSchemeLister は新しい SchemeLister を作成します。
// 登録のないスキームは fallback で処理します
func NewSchemeLister(schemes map[string]Lister, fallback Lister) *SchemeLister {
	if fallback == nil {
		fallback = StorageLister()
	}
	return &SchemeLister{schemes: schemes, fallback: fallback}
}

func (s *SchemeLister) forURI(u fyne.URI) Lister {
	if l, ok := s.schemes[u.Scheme()]; ok {
		return l
	}
	return s.fallback
}

// CanList はスキームに対応する Lister に委譲します
func (s *SchemeLister) CanList(u fyne.URI) (bool, error) {
	return s.forURI(u).CanList(u)
}

// List はスキームに対応する Lister に委譲します
func (s *SchemeLister) List(u fyne.URI) ([]fyne.URI, error) {
	return s.forURI(u).List(u)
}

package model

// ItemKindFile はファイル系のドロップ項目を表す種別です
const ItemKindFile = "file"

// File はドロップ項目から取得したファイル参照です
type File interface {
	Name() string
}

// DropItem はドロップイベントが運ぶ 1 つの項目です
type DropItem interface {
	Kind() string
	// GetAsFile はファイル参照を返します。ファイルでない場合は nil, nil を返します
	GetAsFile() (File, error)
}

// HandleSource はハンドル取得機能を持つドロップ項目です
type HandleSource interface {
	// GetAsFileSystemHandle はハンドル取得を要求し、結果を待つための Future を返します
	GetAsFileSystemHandle() (Future[Handle], error)
}

// ItemList はドロップイベントに添付された項目の集合です
type ItemList interface {
	Len() int
	Item(i int) (DropItem, error)
}

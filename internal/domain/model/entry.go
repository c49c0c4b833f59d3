// package model はドメインモデルを定義します
package model

// EntryKind は走査結果エントリの種別を表します
type EntryKind string

const (
	// EntryFile はファイルのエントリです
	EntryFile EntryKind = "file"
	// EntryDirectory はディレクトリのエントリです
	EntryDirectory EntryKind = "directory"
	// EntryError は診断メッセージのエントリです
	EntryError EntryKind = "error"
)

// Entry は走査で得られた 1 行分の結果を表します
type Entry struct {
	// Prefix はルートのドロップ番号から親ディレクトリまでのパス接頭辞です
	Prefix string
	// Name はハンドルの名前です
	Name string
	// Kind はエントリの種別です
	Kind EntryKind
	// Message は診断エントリの本文です
	Message string
}

// FileEntry はファイルのエントリを作成します
func FileEntry(prefix, name string) Entry {
	return Entry{Prefix: prefix, Name: name, Kind: EntryFile}
}

// DirectoryEntry はディレクトリのエントリを作成します
func DirectoryEntry(prefix, name string) Entry {
	return Entry{Prefix: prefix, Name: name, Kind: EntryDirectory}
}

// Diagnostic は診断エントリを作成します
func Diagnostic(prefix, message string) Entry {
	return Entry{Prefix: prefix, Kind: EntryError, Message: message}
}

// FullPath は接頭辞と名前を連結したパスを返します
func (e Entry) FullPath() string {
	return e.Prefix + e.Name
}

// IsDiagnostic は診断エントリであるかどうかを返します
func (e Entry) IsDiagnostic() bool {
	return e.Kind == EntryError
}

// Line は出力先に送る 1 行のテキストを返します
func (e Entry) Line() string {
	if e.IsDiagnostic() {
		return e.Prefix + e.Message
	}
	return e.Prefix + string(e.Kind) + ": " + e.Name
}

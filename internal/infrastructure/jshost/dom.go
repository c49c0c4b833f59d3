//go:build js && wasm

package jshost

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"

	"DropScope/internal/infrastructure/logging"
	"DropScope/internal/usecase/ingest"
	"DropScope/internal/usecase/report"
)

const (
	DropZoneID = "dropzone"
	OutputID   = "output"
)

var (
	ErrNoWindow   = errors.New("no window")
	ErrNoDocument = errors.New("no document")
)

// OutputSink は出力行をテキストノードとして要素に追加します
type OutputSink struct {
	document js.Value
	output   js.Value
}

// Emit は行と改行を追加します
func (s *OutputSink) Emit(line string) {
	s.output.Call("appendChild", s.document.Call("createTextNode", line))
	s.output.Call("appendChild", s.document.Call("createTextNode", "\n"))
}

// Page はドロップ領域を持つページです
type Page struct {
	document js.Value
	dropzone js.Value
	sink     *OutputSink
	funcs    []js.Func
}

// Open はページの要素を取得します。見つからない要素があればエラーを返します
func Open() (*Page, error) {
	window := js.Global().Get("window")
	if window.Type() != js.TypeObject {
		return nil, ErrNoWindow
	}
	document := window.Get("document")
	if document.Type() != js.TypeObject {
		return nil, ErrNoDocument
	}

	elem := func(id string) (js.Value, error) {
		v := document.Call("getElementById", id)
		if v.IsNull() || v.IsUndefined() {
			return js.Undefined(), fmt.Errorf("no %s", id)
		}
		return v, nil
	}

	dropzone, err := elem(DropZoneID)
	if err != nil {
		return nil, err
	}
	output, err := elem(OutputID)
	if err != nil {
		return nil, err
	}

	return &Page{
		document: document,
		dropzone: dropzone,
		sink:     &OutputSink{document: document, output: output},
	}, nil
}

// Sink はページの出力先を返します
func (p *Page) Sink() report.Sink {
	return p.sink
}

// Attach は dragover と drop のリスナーを登録します。
// drop のハンドラ内でハンドル取得の要求まで済ませ、待機と走査は別のゴルーチンで行います
func (p *Page) Attach(ctx context.Context, in *ingest.Ingestor, logger logging.Logger) {
	dragover := js.FuncOf(func(_ js.Value, args []js.Value) any {
		event := args[0]
		event.Call("preventDefault")
		if dt := event.Get("dataTransfer"); dt.Type() == js.TypeObject {
			dt.Set("dropEffect", "copy")
		}
		return nil
	})

	drop := js.FuncOf(func(_ js.Value, args []js.Value) any {
		event := args[0]
		event.Call("preventDefault")

		dt := event.Get("dataTransfer")
		if dt.Type() != js.TypeObject {
			logger.Log("WARN", "dataTransfer がありません", nil)
			return nil
		}

		job := in.Accept(NewItemList(dt.Get("items")))
		go job.Run(ctx)
		return nil
	})

	p.dropzone.Call("addEventListener", "dragover", dragover)
	p.dropzone.Call("addEventListener", "drop", drop)
	p.funcs = append(p.funcs, dragover, drop)
}

// Package gui はGUIを提供します
package gui

import (
	"context"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"DropScope/internal/infrastructure/config"
	"DropScope/internal/infrastructure/filesystem"
	"DropScope/internal/infrastructure/fynehost"
	"DropScope/internal/infrastructure/logging"
	"DropScope/internal/usecase/ingest"
	"DropScope/internal/usecase/report"
)

// DropZoneText はドロップ領域に表示する案内文です
const DropZoneText = "ここにファイルまたはフォルダをドロップしてください"

// LogView は出力行を表示するテキストログです
type LogView struct {
	mu     sync.Mutex
	lines  []string
	label  *widget.Label
	scroll *container.Scroll
}

// NewLogView は新しい LogView を作成します
func NewLogView() *LogView {
	label := widget.NewLabel("")
	label.Wrapping = fyne.TextWrapBreak
	label.TextStyle = fyne.TextStyle{Monospace: true}
	return &LogView{
		label:  label,
		scroll: container.NewVScroll(label),
	}
}

// Emit は行を末尾に追加して表示を更新します
func (v *LogView) Emit(line string) {
	v.mu.Lock()
	v.lines = append(v.lines, line)
	text := strings.Join(v.lines, "\n")
	v.mu.Unlock()

	v.label.SetText(text)
	v.scroll.ScrollToBottom()
}

// Lines はこれまでに追加された行を返します
func (v *LogView) Lines() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.lines...)
}

// CanvasObject は表示用のオブジェクトを返します
func (v *LogView) CanvasObject() fyne.CanvasObject {
	return v.scroll
}

// DropWindow はドロップ領域と出力ログを持つウィンドウです
type DropWindow struct {
	window   fyne.Window
	log      *LogView
	ingestor *ingest.Ingestor
	lister   fynehost.Lister
	logger   logging.Logger
	ctx      context.Context
	wg       sync.WaitGroup
}

// NewDropWindow は新しい DropWindow を作成し、ドロップの受け付けを開始します。
// extra には出力行を同時に送る Sink を指定できます
func NewDropWindow(ctx context.Context, a fyne.App, cfg config.WindowConfig, logger logging.Logger, extra ...report.Sink) *DropWindow {
	logView := NewLogView()

	sinks := report.MultiSink{logView}
	sinks = append(sinks, extra...)

	w := a.NewWindow(cfg.Title)
	w.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))

	zone := widget.NewLabelWithStyle(DropZoneText, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	w.SetContent(container.NewBorder(zone, nil, nil, nil, logView.CanvasObject()))

	lister := fynehost.NewSchemeLister(map[string]fynehost.Lister{
		filesystem.FileScheme: filesystem.NewLister(logger),
	}, fynehost.StorageLister())

	d := &DropWindow{
		window:   w,
		log:      logView,
		ingestor: ingest.New(sinks, logger),
		lister:   lister,
		logger:   logger,
		ctx:      ctx,
	}
	w.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		d.Drop(uris)
	})

	d.ingestor.Ready()
	return d
}

// Drop はドロップされた URI を受け付け、走査を別のゴルーチンで実行します
func (d *DropWindow) Drop(uris []fyne.URI) {
	job := d.ingestor.Accept(fynehost.NewItemList(uris, d.lister))

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		job.Run(d.ctx)
	}()
}

// Wait は実行中の走査がすべて終わるまで待ちます
func (d *DropWindow) Wait() {
	d.wg.Wait()
}

// Log は出力ログを返します
func (d *DropWindow) Log() *LogView {
	return d.log
}

// ShowAndRun はウィンドウを表示してイベントループを実行します
func (d *DropWindow) ShowAndRun() {
	d.logger.Log("INFO", "ウィンドウを表示します", nil)
	d.window.ShowAndRun()
}

package ingest

import (
	"fmt"

	"DropScope/internal/domain/model"
	"DropScope/internal/usecase/report"
)

// fileOutcome は GetAsFile の結果です
type fileOutcome struct {
	name string
	ok   bool
	err  error
}

// captureFiles はすべての項目からファイル参照を取得します。再帰はしません
func captureFiles(items []model.DropItem) []fileOutcome {
	outcomes := make([]fileOutcome, len(items))
	for i, item := range items {
		f, err := item.GetAsFile()
		switch {
		case err != nil:
			outcomes[i].err = err
		case f != nil:
			outcomes[i].name = f.Name()
			outcomes[i].ok = true
		}
	}
	return outcomes
}

// emitFiles は項目ごとに 1 行を出力します
func emitFiles(sink report.Sink, outcomes []fileOutcome) Stats {
	var stats Stats
	for i, o := range outcomes {
		switch {
		case o.err != nil:
			sink.Emit(fmt.Sprintf("Items [%d] failed getAsFile(): %v", i, o.err))
			stats.Diagnostics++
		case o.ok:
			sink.Emit(fmt.Sprintf("Items [%d] filename: %s", i, o.name))
			stats.Files++
		default:
			sink.Emit(fmt.Sprintf("Items [%d] not a file", i))
			stats.Diagnostics++
		}
	}
	return stats
}

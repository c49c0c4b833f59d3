// Package ingest はドロップ項目を取り込み、ディレクトリを展開しながら一覧を作成します
package ingest

import "DropScope/internal/domain/model"

// Normalize はドロップ項目の集合からファイル系の項目だけを順序を保って取り出します。
// 取得に失敗した位置は黙って読み飛ばします
func Normalize(items model.ItemList) []model.DropItem {
	if items == nil {
		return nil
	}

	var normalized []model.DropItem
	for i := 0; i < items.Len(); i++ {
		item, err := items.Item(i)
		if err != nil || item == nil {
			continue
		}
		if item.Kind() != model.ItemKindFile {
			continue
		}
		normalized = append(normalized, item)
	}
	return normalized
}

// HandleCapable は先頭の項目がハンドル取得機能を持つかどうかを返します。
// 1 回のドロップの中では全項目が同じ機能を持つものとみなします
func HandleCapable(items []model.DropItem) bool {
	if len(items) == 0 {
		return false
	}
	_, ok := items[0].(model.HandleSource)
	return ok
}

//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package timer

import "time"

// ITimer は現在時刻を返します。今日の曜日の判定、会話履歴のタイムスタンプ、
// プレイリストのシャッフルのシードに使われます。
type ITimer interface {
	Now() time.Time
}

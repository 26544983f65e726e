//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package ksuid

// IKsuid は会話履歴のセッションディレクトリ名に使う、時刻順に並ぶIDを生成します。
type IKsuid interface {
	New() string
}

// Package debounce provides a small utility for coalescing bursts of calls.
package debounce

import (
	"sync"
	"time"
)

// Debouncer は短時間に連続する呼び出しをまとめ、入力が一定時間
// 落ち着いてから1回だけ関数を実行します。検索テキストの再計算など、
// キーストロークごとの無駄な処理を避けるために使用します。
type Debouncer struct {
	quiet time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer は指定された静止期間のDebouncerを生成します。
// quietが0以下の場合は300msにフォールバックします。
func NewDebouncer(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = 300 * time.Millisecond
	}
	return &Debouncer{quiet: quiet}
}

// Do は静止期間の経過後にfnを実行する予約をします。
// 静止期間内に再度呼ばれた場合、前の予約は破棄されます。
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, fn)
}

// Flush は保留中の実行予約を即座に実行します。予約がない場合は何もしません。
func (d *Debouncer) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil && d.timer.Stop() {
		timer := d.timer
		d.timer = nil
		// タイマーのコールバックをここで直接実行する
		timer.Reset(0)
	}
}

// Stop は保留中の実行予約を取り消します。
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

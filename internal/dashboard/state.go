// Package dashboard - состояние экранов панели поставщика поверх сервиса заказов.
// Каждый экран живёт по схеме Idle -> Loading -> Success | Error и отбрасывает
// ответы на запросы, которые уже перекрыты более новыми.
package dashboard

import "sync"

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// loader - общая часть экранов: состояние, данные, текст ошибки и номер запроса.
type loader[T any] struct {
	mu    sync.Mutex
	seq   uint64
	state State
	data  T
	err   string

	keepDataOnError bool
}

func newLoader[T any](keepDataOnError bool) *loader[T] {
	return &loader[T]{state: StateIdle, keepDataOnError: keepDataOnError}
}

// begin переводит экран в Loading и возвращает номер запроса. Вызывается под mu.
func (l *loader[T]) begin() uint64 {
	l.seq++
	l.state = StateLoading
	return l.seq
}

// finish применяет результат, если запрос всё ещё последний. Вызывается под mu.
func (l *loader[T]) finish(seq uint64, data T, err error) (applied bool) {
	if seq != l.seq {
		return false
	}
	if err != nil {
		l.state = StateError
		l.err = err.Error()
		if !l.keepDataOnError {
			var zero T
			l.data = zero
		}
		return true
	}
	l.state = StateSuccess
	l.err = ""
	l.data = data
	return true
}

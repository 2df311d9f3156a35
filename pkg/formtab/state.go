package formtab

import (
	"github.com/b/form-tabs/pkg/reactive"
)

// State holds the selected tab. An empty key means none is selected.
// Callers may share one State between several controllers.
type State interface {
	ActiveKey() string
	SetActiveKey(key string)
}

// Observable states let a controller re-render when the key changes.
type Observable interface {
	Subscribe(fn func(key string)) (unsubscribe func())
}

// FormTab is the standard State, backed by a reactive cell.
type FormTab struct {
	active *reactive.Cell[string]
}

// CreateFormTab returns a new state, selecting defaultActiveKey if given.
func CreateFormTab(defaultActiveKey ...string) *FormTab {
	key := ""
	if len(defaultActiveKey) > 0 {
		key = defaultActiveKey[0]
	}
	return &FormTab{active: reactive.NewCell(key)}
}

// UseFormTab is CreateFormTab memoised in scope: it returns the same state
// for as long as deps stay equal and a fresh one when they change.
func UseFormTab(scope *reactive.Scope, defaultActiveKey string, deps ...any) *FormTab {
	return reactive.Memo(scope, func() *FormTab {
		return CreateFormTab(defaultActiveKey)
	}, deps...)
}

func (f *FormTab) ActiveKey() string {
	return f.active.Get()
}

// SetActiveKey selects key and notifies subscribers before returning.
func (f *FormTab) SetActiveKey(key string) {
	f.active.Set(key)
}

func (f *FormTab) Subscribe(fn func(key string)) (unsubscribe func()) {
	return f.active.Subscribe(fn)
}

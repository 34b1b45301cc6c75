// Package task holds the to-do collection: an ordered list of tasks loaded
// once at startup and written back in full after every mutation.
package task

import (
	"strings"
	"time"

	"daylist/internal/model"
	"daylist/internal/store"
)

// List is the in-memory task collection. Insertion order is the canonical
// order: completing a task never moves it; the pending/completed split
// happens only at render time via Pending/Completed.
type List struct {
	kv    store.KV
	tasks []model.Task
}

// Load reads the tasks key. Missing or corrupt data loads as an empty list.
func Load(kv store.KV) *List {
	l := &List{kv: kv}
	kv.Get(store.KeyTasks, &l.tasks)
	return l
}

// Tasks returns the collection in insertion order.
func (l *List) Tasks() []model.Task {
	return l.tasks
}

// Pending returns the uncompleted tasks, preserving relative order.
func (l *List) Pending() []model.Task {
	return l.filter(false)
}

// Completed returns the completed tasks, preserving relative order.
func (l *List) Completed() []model.Task {
	return l.filter(true)
}

func (l *List) filter(completed bool) []model.Task {
	out := []model.Task{}
	for _, t := range l.tasks {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}

func (l *List) Find(id int64) (model.Task, bool) {
	for _, t := range l.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Add appends a new pending task and persists. Whitespace-only text is a
// no-op (added=false). An empty due date defaults to today's date.
func (l *List) Add(text, due string) (t model.Task, added bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Task{}, false, nil
	}
	if strings.TrimSpace(due) == "" {
		due = time.Now().Format("2006-01-02")
	}
	t = model.Task{ID: l.nextID(), Text: text, Due: due}
	l.tasks = append(l.tasks, t)
	return t, true, l.persist()
}

// Toggle flips the completed flag and persists. Unknown ids are a no-op.
func (l *List) Toggle(id int64) (toggled bool, err error) {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i].Completed = !l.tasks[i].Completed
			return true, l.persist()
		}
	}
	return false, nil
}

// Edit replaces the task text and persists. Whitespace-only replacement
// text (and unknown ids) are a no-op that preserves the original text.
func (l *List) Edit(id int64, text string) (edited bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, nil
	}
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i].Text = text
			return true, l.persist()
		}
	}
	return false, nil
}

// Delete removes the task and persists. Callers are responsible for the
// explicit user confirmation step before invoking this.
func (l *List) Delete(id int64) (deleted bool, err error) {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			return true, l.persist()
		}
	}
	return false, nil
}

func (l *List) persist() error {
	return l.kv.Set(store.KeyTasks, l.tasks)
}

// nextID returns a fresh unique id. Ids are timestamp-shaped (unix millis)
// for compatibility with existing stores, but strictly monotonic: two adds
// within the same millisecond still get distinct, increasing ids.
func (l *List) nextID() int64 {
	id := time.Now().UnixMilli()
	for _, t := range l.tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

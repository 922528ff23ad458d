package store

import "github.com/google/uuid"

// Collection keeps records of one entity type keyed by id, in insertion
// order. It is not safe for concurrent use; Store serialises access.
type Collection[T any] struct {
	order []string
	items map[string]*T
	newID func() string
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		items: make(map[string]*T),
		newID: uuid.NewString,
	}
}

// Create asks build for a record carrying the new id and stores it.
func (c *Collection[T]) Create(build func(id string) T) T {
	id := c.newID()
	return c.Insert(id, build(id))
}

// Insert stores v under a caller-chosen id, replacing any existing record
// while keeping its original position.
func (c *Collection[T]) Insert(id string, v T) T {
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = &v
	return v
}

func (c *Collection[T]) Get(id string) (T, bool) {
	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return *v, true
}

// Update applies fn to the stored record and returns the result.
func (c *Collection[T]) Update(id string, fn func(*T)) (T, bool) {
	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	fn(v)
	return *v, true
}

func (c *Collection[T]) All() []T {
	return c.Filter(func(T) bool { return true })
}

func (c *Collection[T]) Filter(keep func(T) bool) []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		if v := *c.items[id]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Find returns the id and value of the first match in insertion order.
func (c *Collection[T]) Find(match func(T) bool) (string, T, bool) {
	for _, id := range c.order {
		if v := *c.items[id]; match(v) {
			return id, v, true
		}
	}
	var zero T
	return "", zero, false
}

func (c *Collection[T]) Len() int {
	return len(c.order)
}

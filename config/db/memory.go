package db

import (
	"context"
	"reflect"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCollection keeps documents in process. Documents go through the same
// bson encoding as MongoDB so field names and omitempty rules match the
// server. Filters support equality plus the $lt and $exists operators.
type MemoryCollection[T any] struct {
	mu     sync.RWMutex
	docs   []bson.M
	unique []string
}

func NewMemoryCollection[T any](uniqueFields ...string) *MemoryCollection[T] {
	return &MemoryCollection[T]{unique: uniqueFields}
}

func (m *MemoryCollection[T]) Insert(_ context.Context, doc *T) (primitive.ObjectID, error) {
	d, err := toDoc(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, ok := d["_id"].(primitive.ObjectID)
	if !ok || oid.IsZero() {
		oid = primitive.NewObjectID()
		d["_id"] = oid
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.violatesUnique(d, oid) {
		return primitive.NilObjectID, ErrDuplicate
	}
	m.docs = append(m.docs, d)
	return oid, nil
}

func (m *MemoryCollection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return m.FindOne(ctx, bson.M{"_id": oid})
}

func (m *MemoryCollection[T]) FindOne(_ context.Context, filter Filter) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.docs {
		if matches(d, filter) {
			return fromDoc[T](d)
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryCollection[T]) Find(_ context.Context, filter Filter) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []T{}
	for _, d := range m.docs {
		if !matches(d, filter) {
			continue
		}
		v, err := fromDoc[T](d)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (m *MemoryCollection[T]) Patch(_ context.Context, id string, fields bson.M) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(oid)
	if i < 0 {
		return nil, ErrNotFound
	}
	next := bson.M{}
	for k, v := range m.docs[i] {
		next[k] = v
	}
	for k, v := range fields {
		next[k] = v
	}
	next, err = canonical(next)
	if err != nil {
		return nil, err
	}
	if m.violatesUnique(next, oid) {
		return nil, ErrDuplicate
	}
	m.docs[i] = next
	return fromDoc[T](next)
}

func (m *MemoryCollection[T]) AddToSet(_ context.Context, id string, field string, value interface{}) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(oid)
	if i < 0 {
		return ErrNotFound
	}
	var arr bson.A
	switch existing := m.docs[i][field].(type) {
	case bson.A:
		arr = append(arr, existing...)
	case []interface{}:
		arr = append(arr, existing...)
	}
	for _, v := range arr {
		if equal(v, value) {
			return nil
		}
	}
	next := bson.M{}
	for k, v := range m.docs[i] {
		next[k] = v
	}
	next[field] = append(arr, value)
	next["updatedAt"] = time.Now().UTC()
	next, err = canonical(next)
	if err != nil {
		return err
	}
	m.docs[i] = next
	return nil
}

func (m *MemoryCollection[T]) Unset(_ context.Context, filter Filter, fields ...string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var changed int64
	for i, d := range m.docs {
		if !matches(d, filter) {
			continue
		}
		touched := false
		for _, f := range fields {
			if _, ok := d[f]; ok {
				delete(d, f)
				touched = true
			}
		}
		if touched {
			m.docs[i] = d
			changed++
		}
	}
	return changed, nil
}

func (m *MemoryCollection[T]) indexOf(oid primitive.ObjectID) int {
	for i, d := range m.docs {
		if id, ok := d["_id"].(primitive.ObjectID); ok && id == oid {
			return i
		}
	}
	return -1
}

func (m *MemoryCollection[T]) violatesUnique(d bson.M, self primitive.ObjectID) bool {
	for _, field := range m.unique {
		want, ok := d[field]
		if !ok || want == nil {
			continue
		}
		for _, other := range m.docs {
			if id, _ := other["_id"].(primitive.ObjectID); id == self {
				continue
			}
			if equal(other[field], want) {
				return true
			}
		}
	}
	return false
}

func toDoc(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	d := bson.M{}
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return d, nil
}

func canonical(d bson.M) (bson.M, error) { return toDoc(d) }

func fromDoc[T any](d bson.M) (*T, error) {
	raw, err := bson.Marshal(d)
	if err != nil {
		return nil, err
	}
	var v T
	if err := bson.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func matches(d bson.M, filter Filter) bool {
	for field, want := range filter {
		got, present := d[field]
		if ops, ok := want.(bson.M); ok {
			if !matchOps(got, present, ops) {
				return false
			}
			continue
		}
		if !present || !equal(got, want) {
			return false
		}
	}
	return true
}

func matchOps(got interface{}, present bool, ops bson.M) bool {
	for op, arg := range ops {
		switch op {
		case "$exists":
			if want, _ := arg.(bool); want != present {
				return false
			}
		case "$lt":
			a, okA := asTime(got)
			b, okB := asTime(arg)
			if !present || !okA || !okB || !a.Before(b) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func asTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	case primitive.DateTime:
		return t.Time(), true
	}
	return time.Time{}, false
}

func equal(a, b interface{}) bool {
	if ta, ok := asTime(a); ok {
		tb, ok := asTime(b)
		return ok && ta.Equal(tb)
	}
	if na, ok := asNumber(a); ok {
		nb, ok := asNumber(b)
		return ok && na == nb
	}
	return reflect.DeepEqual(a, b)
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

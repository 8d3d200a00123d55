package kvstore

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/songlist-be/src/shared/lib/errors/mark"
	"github.com/veedubyou/songlist-be/src/shared/lib/jsonlib"
	"sort"
	"strings"
	"sync"
)

var _ Store = &MemoryStore{}

var ErrUnavailable = mark.Message(DefaultErrorMark, "Memory store is unavailable")

// MemoryStore keeps values in process. Values are copied through JSON
// on the way in and out so they come back shaped the same way as
// values read from DynamoDB (numbers as float64, lists as []any)
type MemoryStore struct {
	unavailable bool
	state       map[string]map[string]any
	mutex       sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		unavailable: false,
		state:       map[string]map[string]any{},
	}
}

// SetUnavailable makes every later call fail the way an unreachable store would
func (m *MemoryStore) SetUnavailable(unavailable bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.unavailable = unavailable
}

func (m *MemoryStore) Get(ctx context.Context, key string) (map[string]any, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.unavailable {
		return nil, ErrUnavailable
	}

	value, ok := m.state[key]
	if !ok {
		return nil, mark.Message(NotFoundMark, "No value is stored under this key")
	}

	return copyValue(value)
}

func (m *MemoryStore) BatchGet(ctx context.Context, keys []string) (map[string]map[string]any, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.unavailable {
		return nil, ErrUnavailable
	}

	values := map[string]map[string]any{}
	for _, key := range keys {
		value, ok := m.state[key]
		if !ok {
			continue
		}

		copied, err := copyValue(value)
		if err != nil {
			return nil, err
		}

		values[key] = copied
	}

	return values, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value map[string]any) error {
	if key == "" {
		return mark.Message(DefaultErrorMark, "Cannot set a value under an empty key")
	}

	copied, err := copyValue(value)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.unavailable {
		return ErrUnavailable
	}

	m.state[key] = copied
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) (int, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.unavailable {
		return 0, ErrUnavailable
	}

	if _, ok := m.state[key]; !ok {
		return 0, nil
	}

	delete(m.state, key)
	return 1, nil
}

func (m *MemoryStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.unavailable {
		return nil, ErrUnavailable
	}

	keys := []string{}
	for key := range m.state {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)
	return keys, nil
}

// Reset drops every stored value
func (m *MemoryStore) Reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.state = map[string]map[string]any{}
}

func copyValue(value map[string]any) (map[string]any, error) {
	copied, err := jsonlib.StructToMap(value)
	if err != nil {
		return nil, mark.Wrap(errors.Wrap(err, "Failed to copy value"), UnmarshalMark, "Value is not representable as JSON")
	}

	return copied, nil
}

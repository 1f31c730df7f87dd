package dictionary

import (
	"context"
	"sync"

	"caretranslate/internal/storage"
)

var _ storage.Slot = &slotMock{}

type slotMock struct {
	GetFunc    func(ctx context.Context, key string) (string, bool, error)
	SetFunc    func(ctx context.Context, key string, value string) error
	RemoveFunc func(ctx context.Context, key string) error

	calls struct {
		Get []struct {
			Key string
		}
		Set []struct {
			Key   string
			Value string
		}
		Remove []struct {
			Key string
		}
	}
	lock sync.RWMutex
}

func (mock *slotMock) Get(ctx context.Context, key string) (string, bool, error) {
	if mock.GetFunc == nil {
		panic("slotMock.GetFunc: method is nil but Slot.Get was just called")
	}
	mock.lock.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ Key string }{Key: key})
	mock.lock.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *slotMock) Set(ctx context.Context, key string, value string) error {
	if mock.SetFunc == nil {
		panic("slotMock.SetFunc: method is nil but Slot.Set was just called")
	}
	mock.lock.Lock()
	mock.calls.Set = append(mock.calls.Set, struct {
		Key   string
		Value string
	}{Key: key, Value: value})
	mock.lock.Unlock()
	return mock.SetFunc(ctx, key, value)
}

func (mock *slotMock) Remove(ctx context.Context, key string) error {
	if mock.RemoveFunc == nil {
		panic("slotMock.RemoveFunc: method is nil but Slot.Remove was just called")
	}
	mock.lock.Lock()
	mock.calls.Remove = append(mock.calls.Remove, struct{ Key string }{Key: key})
	mock.lock.Unlock()
	return mock.RemoveFunc(ctx, key)
}

func (mock *slotMock) SetCalls() []struct {
	Key   string
	Value string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Set
}

func (mock *slotMock) RemoveCalls() []struct {
	Key string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Remove
}

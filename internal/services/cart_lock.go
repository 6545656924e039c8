package service

import (
	"context"
	"sync"
)

type keyLock struct {
	sem  chan struct{}
	refs int
}

// keyedLocker serialises work per key. Entries are dropped once no caller
// holds or waits on them.
type keyedLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

// lock blocks until key is free or ctx is done. The returned func releases it.
func (l *keyedLocker) lock(ctx context.Context, key string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*keyLock)
	}

	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{sem: make(chan struct{}, 1)}
		l.locks[key] = kl
	}

	kl.refs++
	l.mu.Unlock()

	release := func() {
		l.mu.Lock()
		kl.refs--

		if kl.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}

	select {
	case kl.sem <- struct{}{}:
		return func() {
			<-kl.sem
			release()
		}, nil
	case <-ctx.Done():
		release()

		return nil, ctx.Err()
	}
}

func (l *keyedLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.locks)
}

package docstore

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Debounced answers reads from the latest saved payload and coalesces writes
// to the inner store: a burst of saves is flushed once, delay after the last
// one. Close flushes whatever is still pending.
type Debounced struct {
	inner Store
	delay time.Duration
	log   *zap.Logger

	mu      sync.Mutex
	cache   map[string][]byte
	pending map[string][]byte

	saveChan     chan struct{}
	shutdownChan chan struct{}
	done         chan struct{}
	closeOnce    sync.Once
}

func NewDebounced(inner Store, delay time.Duration, log *zap.Logger) *Debounced {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Debounced{
		inner:        inner,
		delay:        delay,
		log:          log,
		cache:        make(map[string][]byte),
		pending:      make(map[string][]byte),
		saveChan:     make(chan struct{}, 1),
		shutdownChan: make(chan struct{}),
		done:         make(chan struct{}),
	}
	go d.saveWorker()
	return d
}

func (d *Debounced) Load(ctx context.Context, key string) ([]byte, error) {
	d.mu.Lock()
	if payload, ok := d.cache[key]; ok {
		d.mu.Unlock()
		return append([]byte(nil), payload...), nil
	}
	d.mu.Unlock()

	payload, err := d.inner.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	if _, ok := d.cache[key]; !ok {
		d.cache[key] = append([]byte(nil), payload...)
	}
	d.mu.Unlock()
	return payload, nil
}

func (d *Debounced) Save(_ context.Context, key string, payload []byte) error {
	cp := append([]byte(nil), payload...)
	d.mu.Lock()
	d.cache[key] = cp
	d.pending[key] = cp
	d.mu.Unlock()

	select {
	case d.saveChan <- struct{}{}:
	default:
	}
	return nil
}

// Flush writes every pending document now.
func (d *Debounced) Flush(ctx context.Context) error {
	d.mu.Lock()
	batch := d.pending
	d.pending = make(map[string][]byte)
	d.mu.Unlock()

	var firstErr error
	for key, payload := range batch {
		if err := d.inner.Save(ctx, key, payload); err != nil {
			d.log.Error("flush document", zap.String("key", key), zap.Error(err))
			d.requeue(key, payload)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		d.log.Debug("document flushed", zap.String("key", key), zap.Int("bytes", len(payload)))
	}
	return firstErr
}

func (d *Debounced) requeue(key string, payload []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, newer := d.pending[key]; !newer {
		d.pending[key] = payload
	}
}

func (d *Debounced) saveWorker() {
	defer close(d.done)
	timer := time.NewTimer(d.delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-d.saveChan:
			timer.Reset(d.delay)
		case <-timer.C:
			_ = d.Flush(context.Background())
		case <-d.shutdownChan:
			return
		}
	}
}

func (d *Debounced) Close() error {
	var err error
	d.closeOnce.Do(func() {
		close(d.shutdownChan)
		<-d.done
		if flushErr := d.Flush(context.Background()); flushErr != nil {
			err = flushErr
		}
		if closeErr := d.inner.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	})
	return err
}

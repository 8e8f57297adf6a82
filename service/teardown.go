package service

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Manager coordinates shutdown. Teardown functions run once the service context is cancelled.
type Manager struct {
	termChan  chan os.Signal
	doneChan  chan struct{}
	waitGroup *sync.WaitGroup
	context   context.Context
	cancel    context.CancelFunc
}

var manager *Manager
var once sync.Once

func GetTeardownManager() *Manager {
	once.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		manager = &Manager{
			termChan:  make(chan os.Signal, 1),
			doneChan:  make(chan struct{}),
			waitGroup: &sync.WaitGroup{},
			context:   ctx,
			cancel:    cancel,
		}
		signal.Notify(manager.termChan, os.Interrupt, syscall.SIGTERM)
	})
	return manager
}

func (m *Manager) TeardownFunc(f func()) {
	m.waitGroup.Add(1)
	go func() {
		defer m.waitGroup.Done()
		<-m.context.Done()
		f()
	}()
}

// Wait blocks until a termination signal arrives, then cancels the context and waits for teardown.
func (m *Manager) Wait() {
	<-m.termChan
	m.cancel()
	m.waitGroup.Wait()
	close(m.doneChan)
}

// Done is closed once Wait has finished tearing down.
func (m *Manager) Done() <-chan struct{} {
	return m.doneChan
}

func (m *Manager) WaitGroup() *sync.WaitGroup {
	return m.waitGroup
}

func (m *Manager) Context() context.Context {
	return m.context
}

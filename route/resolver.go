package route

import "sync"

// NavigationPort is the location fragment a resolver reads and writes. In the
// browser it is window.location.hash and the hashchange event.
type NavigationPort interface {
	Read() string
	Write(fragment string)
	// Subscribe registers fn for fragment changes and returns a function
	// that removes it.
	Subscribe(fn func(fragment string)) (unsubscribe func())
}

// Resolver derives routes from a NavigationPort.
type Resolver struct {
	port NavigationPort
}

// NewResolver binds a resolver to port.
func NewResolver(port NavigationPort) *Resolver {
	return &Resolver{port: port}
}

// Current parses the active fragment.
func (r *Resolver) Current() Route {
	return Parse(r.port.Read())
}

// Navigate writes path as the new fragment. Listeners are notified by the
// port; writing the current value may or may not notify, depending on the
// port.
func (r *Resolver) Navigate(path string) {
	r.port.Write(Fragment(path))
}

// Watch calls fn with the parsed route on every fragment change until the
// returned function is called.
func (r *Resolver) Watch(fn func(Route)) (unsubscribe func()) {
	return r.port.Subscribe(func(fragment string) {
		fn(Parse(fragment))
	})
}

// MemoryPort is a NavigationPort backed by a string. Like hashchange, it
// only notifies when a write changes the value.
type MemoryPort struct {
	mu        sync.Mutex
	fragment  string
	next      int
	listeners map[int]func(string)
	order     []int
}

// NewMemoryPort returns a port holding fragment.
func NewMemoryPort(fragment string) *MemoryPort {
	return &MemoryPort{fragment: fragment, listeners: make(map[int]func(string))}
}

// Read returns the held fragment.
func (p *MemoryPort) Read() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fragment
}

// Write stores fragment and notifies listeners in subscription order when it
// differs from the held value. Listeners run after the lock is released so
// they may read or write the port.
func (p *MemoryPort) Write(fragment string) {
	p.mu.Lock()
	if fragment == p.fragment {
		p.mu.Unlock()
		return
	}
	p.fragment = fragment
	fns := make([]func(string), 0, len(p.order))
	for _, id := range p.order {
		fns = append(fns, p.listeners[id])
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(fragment)
	}
}

// Subscribe implements NavigationPort.
func (p *MemoryPort) Subscribe(fn func(string)) func() {
	p.mu.Lock()
	id := p.next
	p.next++
	p.listeners[id] = fn
	p.order = append(p.order, id)
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.listeners, id)
			for i, v := range p.order {
				if v == id {
					p.order = append(p.order[:i], p.order[i+1:]...)
					break
				}
			}
		})
	}
}

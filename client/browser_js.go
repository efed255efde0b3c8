//go:build js && wasm

package client

import (
	"errors"
	"syscall/js"

	"github.com/soulcreations/site/content"
)

// HashPort is the browser's location fragment as a route.NavigationPort.
type HashPort struct {
	window js.Value
}

// NewHashPort binds to the global window.
func NewHashPort() *HashPort {
	return &HashPort{window: js.Global()}
}

// Read returns window.location.hash.
func (p *HashPort) Read() string {
	return p.window.Get("location").Get("hash").String()
}

// Write assigns window.location.hash. The browser raises hashchange when the
// value changes.
func (p *HashPort) Write(fragment string) {
	p.window.Get("location").Set("hash", fragment)
}

// Subscribe listens for hashchange.
func (p *HashPort) Subscribe(fn func(string)) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(p.Read())
		return nil
	})
	p.window.Call("addEventListener", "hashchange", cb)
	released := false
	return func() {
		if released {
			return
		}
		released = true
		p.window.Call("removeEventListener", "hashchange", cb)
		cb.Release()
	}
}

// DOMMount renders into an element of the current document.
type DOMMount struct {
	window js.Value
	doc    js.Value
	root   js.Value
}

// NewDOMMount looks up the element with the given id.
func NewDOMMount(id string) (*DOMMount, error) {
	window := js.Global()
	doc := window.Get("document")
	root := doc.Call("getElementById", id)
	if root.IsNull() || root.IsUndefined() {
		return nil, errors.New("client: mount element #" + id + " not found")
	}
	return &DOMMount{window: window, doc: doc, root: root}, nil
}

// Replace implements Mount.
func (m *DOMMount) Replace(html, title string, lang content.Locale) error {
	m.root.Set("innerHTML", html)
	m.doc.Set("title", title)
	m.doc.Get("documentElement").Set("lang", string(lang))
	return nil
}

// ScrollTo implements Mount.
func (m *DOMMount) ScrollTo(id string) {
	el := m.doc.Call("getElementById", id)
	if !el.Truthy() {
		return
	}
	el.Call("scrollIntoView", map[string]any{"behavior": "smooth", "block": "start"})
}

// ScrollTop implements Mount.
func (m *DOMMount) ScrollTop() {
	m.window.Call("scrollTo", 0, 0)
}

// Bind delegates click and submit events under the mount root to app. The
// returned function detaches the handlers.
func Bind(app *App, m *DOMMount) (release func()) {
	click := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		// Modified clicks keep their browser meaning (new tab, new window).
		for _, k := range []string{"metaKey", "ctrlKey", "shiftKey", "altKey"} {
			if ev.Get(k).Bool() {
				return nil
			}
		}
		el := ev.Get("target").Call("closest", "[data-navigate],[data-scroll]")
		if !el.Truthy() {
			return nil
		}
		if app.Dispatch(ActionFromAttrs(attr(el, "data-navigate"), attr(el, "data-scroll"), false)) {
			ev.Call("preventDefault")
		}
		return nil
	})
	submit := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		inert := ev.Get("target").Call("hasAttribute", "data-inert").Bool()
		if app.Dispatch(ActionFromAttrs("", "", inert)) {
			ev.Call("preventDefault")
		}
		return nil
	})
	m.root.Call("addEventListener", "click", click)
	m.root.Call("addEventListener", "submit", submit)
	return func() {
		m.root.Call("removeEventListener", "click", click)
		m.root.Call("removeEventListener", "submit", submit)
		click.Release()
		submit.Release()
	}
}

// NavigatorLanguages returns navigator.languages, or navigator.language when
// the list is unavailable.
func NavigatorLanguages() []string {
	nav := js.Global().Get("navigator")
	list := nav.Get("languages")
	if !list.Truthy() {
		if l := nav.Get("language"); l.Truthy() {
			return []string{l.String()}
		}
		return nil
	}
	out := make([]string, 0, list.Length())
	for i := 0; i < list.Length(); i++ {
		out = append(out, list.Index(i).String())
	}
	return out
}

func attr(el js.Value, name string) string {
	v := el.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}

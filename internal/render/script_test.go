package render

import (
	"testing"

	"github.com/dop251/goja"
)

// fakeDOM stubs the few browser objects the clipboard script touches
const fakeDOM = `
var handlers = [];
var copied = null;
var statusElm = { textContent: "", className: "" };
var btn = {
  getAttribute: function (k) { return k === "data-copy" ? "C271111EC0AB" : null; },
  addEventListener: function (ev, fn) { if (ev === "click") { handlers.push(fn); } }
};
var document = {
  getElementById: function (id) { return id === "status" ? statusElm : null; },
  querySelectorAll: function (sel) { return sel === ".copy-btn" ? [btn] : []; }
};
var navigator = { clipboard: { writeText: function (v) {
  if (failCopy) { return Promise.reject(new Error("denied")); }
  copied = v;
  return Promise.resolve();
} } };
`

func runScript(t *testing.T, src string, fail bool) *goja.Runtime {
	t.Helper()
	vm := goja.New()
	vm.Set("failCopy", fail)
	if _, err := vm.RunString(fakeDOM); err != nil {
		t.Fatalf("fake DOM: %v", err)
	}
	if _, err := vm.RunString(src); err != nil {
		t.Fatalf("clipboard script: %v", err)
	}
	if n := vm.Get("handlers").Export().([]interface{}); len(n) != 1 {
		t.Fatalf("got %d click handlers, want 1", len(n))
	}
	// promise jobs run before RunString returns
	if _, err := vm.RunString(`handlers[0]()`); err != nil {
		t.Fatalf("click: %v", err)
	}
	return vm
}

func scriptSources(t *testing.T) map[string]string {
	t.Helper()
	src, err := CopyScript()
	if err != nil {
		t.Fatalf("CopyScript: %v", err)
	}
	mini, _, err := inlineAssets()
	if err != nil {
		t.Fatalf("inlineAssets: %v", err)
	}
	if len(mini) == 0 || len(mini) >= len(src) {
		t.Errorf("minified script is %d bytes, source %d", len(mini), len(src))
	}
	return map[string]string{"source": string(src), "minified": string(mini)}
}

func TestCopyScript(t *testing.T) {
	for name, src := range scriptSources(t) {
		vm := runScript(t, src, false)
		if got := vm.Get("copied").String(); got != "C271111EC0AB" {
			t.Errorf("%s: copied %q", name, got)
		}
		status := vm.Get("statusElm").ToObject(vm)
		if got := status.Get("textContent").String(); got != "copied: C271111EC0AB" {
			t.Errorf("%s: status %q", name, got)
		}
		if got := status.Get("className").String(); got != "status success" {
			t.Errorf("%s: class %q", name, got)
		}
	}
}

func TestCopyScriptFailure(t *testing.T) {
	for name, src := range scriptSources(t) {
		vm := runScript(t, src, true)
		status := vm.Get("statusElm").ToObject(vm)
		if got := status.Get("className").String(); got != "status error" {
			t.Errorf("%s: class %q", name, got)
		}
		if got := status.Get("textContent").String(); got != "Could not copy to the clipboard." {
			t.Errorf("%s: status %q", name, got)
		}
	}
}

package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"

	"github.com/tdewolff/minify/v2"
	mcss "github.com/tdewolff/minify/v2/css"
	mjs "github.com/tdewolff/minify/v2/js"
)

//go:embed static/*
var staticFS embed.FS

var (
	assetsOnce sync.Once
	assets     struct {
		script template.JS
		style  template.CSS
		err    error
	}
)

// CopyScript returns the source of the clipboard handlers, unminified
func CopyScript() ([]byte, error) {
	return staticFS.ReadFile("static/copy.js")
}

func minifyAsset(mediatype, name string) ([]byte, error) {
	src, err := staticFS.ReadFile("static/" + name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	m := minify.New()
	m.AddFunc("text/javascript", mjs.Minify)
	m.AddFunc("text/css", mcss.Minify)
	var out bytes.Buffer
	if err := m.Minify(mediatype, &out, bytes.NewReader(src)); err != nil {
		return nil, fmt.Errorf("minify %s: %w", name, err)
	}
	return out.Bytes(), nil
}

// inlineAssets returns the minified script and stylesheet inlined in every page
func inlineAssets() (template.JS, template.CSS, error) {
	assetsOnce.Do(func() {
		js, err := minifyAsset("text/javascript", "copy.js")
		if err != nil {
			assets.err = err
			return
		}
		css, err := minifyAsset("text/css", "page.css")
		if err != nil {
			assets.err = err
			return
		}
		assets.script = template.JS(js)
		assets.style = template.CSS(css)
	})
	return assets.script, assets.style, assets.err
}

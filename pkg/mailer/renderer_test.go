package mailer

import (
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/default.html": &fstest.MapFile{
			Data: []byte(`<html><body>{{.Content}}</body></html>`),
		},
		"daily-reminder.md": &fstest.MapFile{
			Data: []byte(`---
Subject: Time to write, {{.Name}}
---
Hello **{{.Name}}**!

Your journal is waiting.
`),
		},
	}

	renderer := NewRendererWithConfig(fs, RendererConfig{LayoutDir: "layouts"})

	result, err := renderer.Render("default.html", "daily-reminder.md", map[string]string{"Name": "Robin"})
	require.NoError(t, err)

	// Plain text keeps raw markdown, HTML gets the converted markup.
	assert.Contains(t, result.Text, "Hello **Robin**!")
	assert.Contains(t, result.Text, "Your journal is waiting.")
	assert.NotContains(t, result.Text, "<strong>")

	assert.Contains(t, result.HTML, "<strong>Robin</strong>")
	assert.Contains(t, result.HTML, "<body>")

	assert.Equal(t, "Time to write, {{.Name}}", result.Metadata["Subject"])
}

func TestRenderer_Render_CachesTemplates(t *testing.T) {
	t.Parallel()

	var reads atomic.Int32
	cfs := &countingFS{
		MapFS: fstest.MapFS{
			"layouts/default.html": &fstest.MapFile{
				Data: []byte(`<html>{{.Content}}</html>`),
			},
			"daily-reminder.md": &fstest.MapFile{
				Data: []byte(`---
Subject: Time to write
---
Hello {{.Name}}
`),
			},
		},
		reads: &reads,
	}

	renderer := NewRendererWithConfig(cfs, RendererConfig{LayoutDir: "layouts"})

	_, err := renderer.Render("default.html", "daily-reminder.md", map[string]string{"Name": "Robin"})
	require.NoError(t, err)
	require.Equal(t, int32(2), reads.Load(), "first render reads template and layout")

	_, err = renderer.Render("default.html", "daily-reminder.md", map[string]string{"Name": "Sam"})
	require.NoError(t, err)
	require.Equal(t, int32(2), reads.Load(), "second render hits the cache")

	cfs.MapFS["layouts/plain.html"] = &fstest.MapFile{
		Data: []byte(`<div>{{.Content}}</div>`),
	}
	_, err = renderer.Render("plain.html", "daily-reminder.md", map[string]string{"Name": "Kim"})
	require.NoError(t, err)
	require.Equal(t, int32(3), reads.Load(), "new layout reads one more file")
}

func TestRenderer_Render_DataChangesOutput(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/default.html": &fstest.MapFile{
			Data: []byte(`<html>{{.Content}}</html>`),
		},
		"greeting.md": &fstest.MapFile{
			Data: []byte(`---
Subject: Hello
---
Welcome back, {{.Name}}!
`),
		},
	}

	renderer := NewRendererWithConfig(fs, RendererConfig{LayoutDir: "layouts"})

	first, err := renderer.Render("default.html", "greeting.md", map[string]string{"Name": "Robin"})
	require.NoError(t, err)

	second, err := renderer.Render("default.html", "greeting.md", map[string]string{"Name": "Sam"})
	require.NoError(t, err)

	assert.Contains(t, first.Text, "Welcome back, Robin!")
	assert.Contains(t, second.Text, "Welcome back, Sam!")
	assert.NotEqual(t, first.HTML, second.HTML)
}

func TestRenderer_Render_MissingTemplate(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/default.html": &fstest.MapFile{
			Data: []byte(`<html>{{.Content}}</html>`),
		},
	}

	renderer := NewRendererWithConfig(fs, RendererConfig{LayoutDir: "layouts"})

	result, err := renderer.Render("default.html", "nonexistent.md", nil)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestRenderer_Render_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/default.html": &fstest.MapFile{
			Data: []byte(`<html>{{.Content}}</html>`),
		},
		"daily-reminder.md": &fstest.MapFile{
			Data: []byte(`---
Subject: Time to write
---
Entry {{.ID}}
`),
		},
	}

	renderer := NewRendererWithConfig(fs, RendererConfig{LayoutDir: "layouts"})

	var wg sync.WaitGroup
	errs := make(chan error, 100)

	for i := range 100 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			result, err := renderer.Render("default.html", "daily-reminder.md", map[string]int{"ID": id})
			if err != nil {
				errs <- err
				return
			}
			if result.Text == "" || result.HTML == "" {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent render failed: %v", err)
	}
}

// countingFS wraps MapFS and counts ReadFile calls.
type countingFS struct {
	fstest.MapFS
	reads *atomic.Int32
}

func (c *countingFS) ReadFile(name string) ([]byte, error) {
	c.reads.Add(1)
	return c.MapFS.ReadFile(name)
}

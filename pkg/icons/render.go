package icons

// Renderer produces the inline SVG markup for one icon variant.
type Renderer func() string

// The markup below stays inside the subset the content sanitation
// policy allows, with explicit closing tags, so rendered icons survive
// sanitation byte for byte.
func svg(inner string) string {
	return `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="icon">` + inner + `</svg>`
}

var renderers = map[Icon]Renderer{
	Fallback: func() string {
		return svg(`<circle cx="12" cy="12" r="10"></circle><path d="M9.09 9a3 3 0 0 1 5.83 1c0 2-3 3-3 3"></path><line x1="12" y1="17" x2="12.01" y2="17"></line>`)
	},
	BookOpen: func() string {
		return svg(`<path d="M2 3h6a4 4 0 0 1 4 4v14a3 3 0 0 0-3-3H2z"></path><path d="M22 3h-6a4 4 0 0 0-4 4v14a3 3 0 0 1 3-3h7z"></path>`)
	},
	Feather: func() string {
		return svg(`<path d="M20.2 2.8a6 6 0 0 0-8.5 0L3 11.5V21h9.5l8.7-8.7a6 6 0 0 0 0-8.5z"></path><line x1="16" y1="8" x2="2" y2="22"></line>`)
	},
	Calendar: func() string {
		return svg(`<rect x="3" y="4" width="18" height="18" rx="2" ry="2"></rect><line x1="16" y1="2" x2="16" y2="6"></line><line x1="8" y1="2" x2="8" y2="6"></line><line x1="3" y1="10" x2="21" y2="10"></line>`)
	},
	Search: func() string {
		return svg(`<circle cx="11" cy="11" r="8"></circle><line x1="21" y1="21" x2="16.65" y2="16.65"></line>`)
	},
	Heart: func() string {
		return svg(`<path d="M20.8 4.6a5.5 5.5 0 0 0-7.8 0L12 5.7l-1-1.1a5.5 5.5 0 0 0-7.8 7.8l1 1L12 21l7.8-7.6 1-1a5.5 5.5 0 0 0 0-7.8z"></path>`)
	},
	Star: func() string {
		return svg(`<polygon points="12 2 15.09 8.26 22 9.27 17 14.14 18.18 21.02 12 17.77 5.82 21.02 7 14.14 2 9.27 8.91 8.26 12 2"></polygon>`)
	},
	Sun: func() string {
		return svg(`<circle cx="12" cy="12" r="5"></circle><line x1="12" y1="1" x2="12" y2="3"></line><line x1="12" y1="21" x2="12" y2="23"></line><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"></line><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"></line><line x1="1" y1="12" x2="3" y2="12"></line><line x1="21" y1="12" x2="23" y2="12"></line><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"></line><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"></line>`)
	},
	Moon: func() string {
		return svg(`<path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"></path>`)
	},
	Mail: func() string {
		return svg(`<rect x="2" y="4" width="20" height="16" rx="2"></rect><path d="m22 7-10 7L2 7"></path>`)
	},
	Sparkles: func() string {
		return svg(`<path d="M12 3l1.9 5.8a2 2 0 0 0 1.3 1.3L21 12l-5.8 1.9a2 2 0 0 0-1.3 1.3L12 21l-1.9-5.8a2 2 0 0 0-1.3-1.3L3 12l5.8-1.9a2 2 0 0 0 1.3-1.3z"></path>`)
	},
	Lock: func() string {
		return svg(`<rect x="3" y="11" width="18" height="11" rx="2" ry="2"></rect><path d="M7 11V7a5 5 0 0 1 10 0v4"></path>`)
	},
	Cloud: func() string {
		return svg(`<path d="M17.5 19H9a7 7 0 1 1 6.71-9h1.79a4.5 4.5 0 1 1 0 9z"></path>`)
	},
}

// Render returns the icon's inline SVG markup. Variants without a
// registered renderer render the Fallback glyph.
func (i Icon) Render() string {
	if r, ok := renderers[i]; ok {
		return r()
	}
	return renderers[Fallback]()
}

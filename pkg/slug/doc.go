// Package slug turns titles into URL-safe identifiers.
//
// Journal names and post titles arrive as free-form text; Make reduces
// them to ASCII words joined by a separator:
//
//	slug.Make("What I Learned Today!")
//	// "what-i-learned-today"
//
//	slug.Make("Café at the Corner")
//	// "cafe-at-the-corner"
//
// Latin diacritics fold to their ASCII base letters. Anything else that
// is not an ASCII letter or digit, including Cyrillic, CJK, and emoji,
// acts as a word boundary and is dropped.
//
// # Shaping the result
//
// MaxLength caps the slug at n runes without leaving a dangling
// separator. MinLength pads short results once with a random suffix:
//
//	slug.Make("An Evening Walk by the River", slug.MaxLength(10))
//	// "an-evening"
//
//	slug.Make("hi", slug.MinLength(8))
//	// "hi-k2pm7q"
//
// Separator, Lowercase, StripChars, and CustomReplace adjust the
// pipeline:
//
//	slug.Make("Don't Panic", slug.StripChars("'"))
//	// "dont-panic"
//
//	slug.Make("Bread & Butter", slug.CustomReplace(map[string]string{"&": "and"}))
//	// "bread-and-butter"
//
// # Collision handling
//
// WithSuffix appends a random alphanumeric tail so identical titles
// still produce distinct slugs. ReservedSlugs forces the same treatment
// on names the application keeps for itself:
//
//	slug.Make("Morning Pages", slug.WithSuffix(6))
//	// "morning-pages-x3k7f9"
//
//	slug.Make("drafts", slug.ReservedSlugs("drafts", "archive"))
//	// "drafts-k7x2m4"
//
// Under MaxLength a requested suffix keeps its full length and the base
// gives way; a suffix added only to dodge a reserved name shrinks
// instead, keeping the base intact.
package slug

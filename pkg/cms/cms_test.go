package cms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceRequiresPool(t *testing.T) {
	t.Parallel()

	svc, err := NewService(nil)
	require.ErrorIs(t, err, ErrPoolRequired)
	assert.Nil(t, svc)
}

func TestValidatePostTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		want    string
		wantErr error
	}{
		{name: "plain", title: "Hello, world", want: "Hello, world"},
		{name: "trimmed", title: "  Hello  ", want: "Hello"},
		{name: "empty", title: "", wantErr: ErrTitleRequired},
		{name: "whitespace only", title: "   ", wantErr: ErrTitleRequired},
		{name: "at limit", title: strings.Repeat("x", 200), want: strings.Repeat("x", 200)},
		{name: "over limit", title: strings.Repeat("x", 201), wantErr: ErrTitleTooLong},
		{name: "multibyte counts runes", title: strings.Repeat("é", 200), want: strings.Repeat("é", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := validatePostTitle(tt.title)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostExcerpt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "A short summary.", want: "A short summary."},
		{name: "tags stripped", in: "<p>Hello <em>world</em></p>", want: "Hello world"},
		{name: "script content dropped", in: "<script>alert(1)</script>safe", want: "safe"},
		{name: "trimmed", in: "  spaced  ", want: "spaced"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, postExcerpt(tt.in))
		})
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "plain", in: "user@example.com", want: "user@example.com", ok: true},
		{name: "surrounding spaces", in: "  user@example.com  ", want: "user@example.com", ok: true},
		{name: "display name unwrapped", in: "Jane Doe <jane@example.com>", want: "jane@example.com", ok: true},
		{name: "subdomain", in: "u@mail.example.co.uk", want: "u@mail.example.co.uk", ok: true},
		{name: "empty", in: "", ok: false},
		{name: "no at sign", in: "not-an-email", ok: false},
		{name: "missing local part", in: "@example.com", ok: false},
		{name: "missing domain", in: "user@", ok: false},
		{name: "bare host", in: "user@localhost", ok: false},
		{name: "leading dot domain", in: "user@.com", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := validEmail(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSectionKeyFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "already slugged", in: "hero", want: "hero"},
		{name: "normalized", in: "Hero Block", want: "hero-block"},
		{name: "empty", in: "", wantErr: ErrSectionKeyRequired},
		{name: "unsluggable", in: "🌸", wantErr: ErrSectionKeyRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := sectionKeyFrom(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

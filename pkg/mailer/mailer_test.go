package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func reminderFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`<html><body>{{.Content}}</body></html>`),
		},
		"daily-reminder.md": &fstest.MapFile{
			Data: []byte(`---
Subject: Time to write, {{.Name}}
---
Hello **{{.Name}}**, your journal is waiting.
`),
		},
	}
}

func TestMailer_Send_Success(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	renderer := NewRendererWithConfig(reminderFS(), RendererConfig{LayoutDir: "layouts"})
	mailer := New(mockSender, renderer, Config{
		DefaultLayout:   "base.html",
		FallbackSubject: "Daybook notification",
	})

	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.To[0] == "robin@example.com" &&
			email.Subject == "Time to write, Robin" &&
			strings.Contains(email.HTML, "<strong>Robin</strong>") &&
			strings.Contains(email.Text, "Robin")
	})).Return(nil)

	err := mailer.Send(context.Background(), SendParams{
		To:       "robin@example.com",
		Template: "daily-reminder.md",
		Data:     map[string]string{"Name": "Robin"},
	})

	require.NoError(t, err)
	mockSender.AssertExpectations(t)
}

func TestMailer_Send_NoRecipient(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	mailer := New(mockSender, NewRenderer(fstest.MapFS{}), Config{})

	err := mailer.Send(context.Background(), SendParams{
		Template: "daily-reminder.md",
	})

	require.ErrorIs(t, err, ErrNoRecipient)
	mockSender.AssertNotCalled(t, "Send")
}

func TestMailer_Send_RenderFailure(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	mailer := New(mockSender, NewRenderer(fstest.MapFS{}), Config{DefaultLayout: "missing.html"})

	err := mailer.Send(context.Background(), SendParams{
		To:       "robin@example.com",
		Template: "nonexistent.md",
	})

	require.ErrorIs(t, err, ErrRenderFailed)
	mockSender.AssertNotCalled(t, "Send")
}

func TestMailer_Send_SenderFailure(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	renderer := NewRendererWithConfig(reminderFS(), RendererConfig{LayoutDir: "layouts"})
	mailer := New(mockSender, renderer, Config{
		DefaultLayout:   "base.html",
		FallbackSubject: "Daybook notification",
	})

	senderErr := errors.New("delivery provider unavailable")
	mockSender.On("Send", mock.Anything, mock.Anything).Return(senderErr)

	err := mailer.Send(context.Background(), SendParams{
		To:       "robin@example.com",
		Template: "daily-reminder.md",
		Data:     map[string]string{"Name": "Robin"},
	})

	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, senderErr)
	mockSender.AssertExpectations(t)
}

func TestMailer_Send_SubjectResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		paramsSubject   string
		templateContent string
		fallbackSubject string
		wantSubject     string
	}{
		{
			name:          "params subject wins",
			paramsSubject: "Manual override",
			templateContent: `---
Subject: Template subject
---
Body`,
			fallbackSubject: "Fallback",
			wantSubject:     "Manual override",
		},
		{
			name: "template metadata when params empty",
			templateContent: `---
Subject: Template subject
---
Body`,
			fallbackSubject: "Fallback",
			wantSubject:     "Template subject",
		},
		{
			name:            "config fallback when both empty",
			templateContent: `Body without metadata`,
			fallbackSubject: "Daybook notification",
			wantSubject:     "Daybook notification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := fstest.MapFS{
				"layouts/base.html": &fstest.MapFile{Data: []byte(`<html>{{.Content}}</html>`)},
				"note.md":           &fstest.MapFile{Data: []byte(tt.templateContent)},
			}

			mockSender := &MockSender{}
			renderer := NewRendererWithConfig(fs, RendererConfig{LayoutDir: "layouts"})
			mailer := New(mockSender, renderer, Config{
				DefaultLayout:   "base.html",
				FallbackSubject: tt.fallbackSubject,
			})

			mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
				return email.Subject == tt.wantSubject
			})).Return(nil)

			err := mailer.Send(context.Background(), SendParams{
				To:       "robin@example.com",
				Template: "note.md",
				Subject:  tt.paramsSubject,
			})

			require.NoError(t, err)
			mockSender.AssertExpectations(t)
		})
	}
}

func TestMailer_Send_SubjectTemplating(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(`<html>{{.Content}}</html>`)},
		"contact-submission.md": &fstest.MapFile{
			Data: []byte(`---
Subject: "New message {{.Ref}}"
---
A visitor left a message.
`),
		},
	}

	mockSender := &MockSender{}
	renderer := NewRendererWithConfig(fs, RendererConfig{LayoutDir: "layouts"})
	mailer := New(mockSender, renderer, Config{DefaultLayout: "base.html"})

	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.Subject == "New message CT-7F3K9QD2"
	})).Return(nil)

	err := mailer.Send(context.Background(), SendParams{
		To:       "admin@example.com",
		Template: "contact-submission.md",
		Data:     map[string]string{"Ref": "CT-7F3K9QD2"},
	})

	require.NoError(t, err)
	mockSender.AssertExpectations(t)
}

func TestMailer_Send_SubjectTemplatingError(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(`<html>{{.Content}}</html>`)},
		"note.md":           &fstest.MapFile{Data: []byte(`Body`)},
	}

	mockSender := &MockSender{}
	renderer := NewRendererWithConfig(fs, RendererConfig{LayoutDir: "layouts"})
	mailer := New(mockSender, renderer, Config{
		DefaultLayout:   "base.html",
		FallbackSubject: "Broken {{.Unclosed",
	})

	err := mailer.Send(context.Background(), SendParams{
		To:       "robin@example.com",
		Template: "note.md",
	})

	require.ErrorIs(t, err, ErrRenderFailed)
	mockSender.AssertNotCalled(t, "Send")
}

func TestMailer_Send_WithOptionalFields(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(`<html>{{.Content}}</html>`)},
		"note.md":           &fstest.MapFile{Data: []byte(`Journal export attached.`)},
	}

	mockSender := &MockSender{}
	renderer := NewRendererWithConfig(fs, RendererConfig{LayoutDir: "layouts"})
	mailer := New(mockSender, renderer, Config{
		DefaultLayout:   "base.html",
		FallbackSubject: "Your export",
	})

	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.From == "daybook@example.com" &&
			email.ReplyTo == "support@example.com" &&
			len(email.CC) == 1 && email.CC[0] == "copy@example.com" &&
			len(email.BCC) == 1 && email.BCC[0] == "archive@example.com" &&
			len(email.Attachments) == 1 && email.Attachments[0].Filename == "journal.pdf"
	})).Return(nil)

	err := mailer.Send(context.Background(), SendParams{
		To:       "robin@example.com",
		Template: "note.md",
		From:     "daybook@example.com",
		ReplyTo:  "support@example.com",
		CC:       []string{"copy@example.com"},
		BCC:      []string{"archive@example.com"},
		Attachments: []Attachment{
			{Filename: "journal.pdf", Content: []byte("pdf content"), ContentType: "application/pdf"},
		},
	})

	require.NoError(t, err)
	mockSender.AssertExpectations(t)
}

func TestMailer_Send_CustomLayout(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/base.html":  &fstest.MapFile{Data: []byte(`<html><body>{{.Content}}</body></html>`)},
		"layouts/plain.html": &fstest.MapFile{Data: []byte(`<div class="plain">{{.Content}}</div>`)},
		"note.md":            &fstest.MapFile{Data: []byte(`Note body`)},
	}

	mockSender := &MockSender{}
	renderer := NewRendererWithConfig(fs, RendererConfig{LayoutDir: "layouts"})
	mailer := New(mockSender, renderer, Config{
		DefaultLayout:   "base.html",
		FallbackSubject: "Note",
	})

	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return strings.Contains(email.HTML, `class="plain"`)
	})).Return(nil)

	err := mailer.Send(context.Background(), SendParams{
		To:       "robin@example.com",
		Template: "note.md",
		Layout:   "plain.html",
	})

	require.NoError(t, err)
	mockSender.AssertExpectations(t)
}

func TestMailer_SendRaw(t *testing.T) {
	t.Parallel()

	t.Run("delivers valid email", func(t *testing.T) {
		t.Parallel()

		mockSender := &MockSender{}
		mailer := New(mockSender, nil, Config{})

		email := &Email{
			To:      []string{"robin@example.com"},
			Subject: "Time to write",
			HTML:    "<p>Your journal is waiting.</p>",
			Text:    "Your journal is waiting.",
		}

		mockSender.On("Send", mock.Anything, email).Return(nil)

		require.NoError(t, mailer.SendRaw(context.Background(), email))
		mockSender.AssertExpectations(t)
	})

	t.Run("wraps sender failure", func(t *testing.T) {
		t.Parallel()

		mockSender := &MockSender{}
		mailer := New(mockSender, nil, Config{})

		email := &Email{
			To:      []string{"robin@example.com"},
			Subject: "Time to write",
			HTML:    "<p>Hello</p>",
		}

		senderErr := errors.New("network error")
		mockSender.On("Send", mock.Anything, email).Return(senderErr)

		err := mailer.SendRaw(context.Background(), email)
		require.ErrorIs(t, err, ErrSendFailed)
		require.ErrorIs(t, err, senderErr)
	})
}

func TestMailer_SendRaw_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		email   *Email
		wantErr error
	}{
		{
			name:    "missing recipient",
			email:   &Email{Subject: "Time to write", HTML: "<p>Hello</p>"},
			wantErr: ErrNoRecipient,
		},
		{
			name:    "missing subject",
			email:   &Email{To: []string{"robin@example.com"}, HTML: "<p>Hello</p>"},
			wantErr: ErrNoSubject,
		},
		{
			name:    "missing content",
			email:   &Email{To: []string{"robin@example.com"}, Subject: "Time to write"},
			wantErr: ErrNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockSender := &MockSender{}
			mailer := New(mockSender, nil, Config{})

			err := mailer.SendRaw(context.Background(), tt.email)
			require.ErrorIs(t, err, tt.wantErr)
			mockSender.AssertNotCalled(t, "Send")
		})
	}
}

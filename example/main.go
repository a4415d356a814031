package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/dmitrymomot/daybook"
	"github.com/dmitrymomot/daybook/pkg/cms"
	"github.com/dmitrymomot/daybook/pkg/form"
	"github.com/dmitrymomot/daybook/pkg/notify"
)

// contactRules mirrors the validation the browser form runs, so a
// bypassed client gets the same answers.
var contactRules = form.Rules{
	"name":    {Required: true, MaxLength: 100},
	"email":   {Required: true, Pattern: form.EmailPattern, Message: "enter a valid email address"},
	"message": {Required: true, MinLength: 10, MaxLength: 5000},
}

func main() {
	ctx := context.Background()

	// The hooks below capture srv; it is assigned before Run starts
	// the lifecycle.
	var srv *http.Server

	app, err := daybook.New(ctx,
		// No UI in this demo, so surface toasts on the console.
		daybook.WithDeliverer(daybook.DelivererFunc(func(_ context.Context, t daybook.Toast) error {
			log.Printf("toast [%s] %s: %s", t.Type, t.Title, t.Message)
			return nil
		})),
		// Serve HTTP as part of the app lifecycle: bind after the
		// components are up, drain before they stop.
		daybook.WithStartupHook(func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Printf("listening on %s", ln.Addr())
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Printf("http server: %v", err)
				}
			}()
			return nil
		}),
		daybook.WithShutdownHook(func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /health/live", app.LivenessHandler())
	mux.Handle("GET /health/ready", app.ReadinessHandler())
	mux.HandleFunc("GET /posts", listPosts(app))
	mux.HandleFunc("GET /posts/{slug}", showPost(app))
	mux.HandleFunc("POST /contact", submitContact(app))

	srv = &http.Server{
		Addr:              getEnv("ADDRESS", ":8080"),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if err := app.Run(ctx); err != nil {
		log.Fatal(err)
	}
}

func listPosts(app *daybook.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := app.CMS().ListPosts(r.Context(), false)
		if err != nil {
			http.Error(w, "something went wrong", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, posts)
	}
}

func showPost(app *daybook.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := app.CMS().GetPostBySlug(r.Context(), r.PathValue("slug"))
		switch {
		case errors.Is(err, cms.ErrNotFound):
			http.NotFound(w, r)
		case err != nil:
			http.Error(w, "something went wrong", http.StatusInternalServerError)
		default:
			writeJSON(w, http.StatusOK, post)
		}
	}
}

func submitContact(app *daybook.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		ctrl := form.New(form.Values{
			"name":    form.Text(r.PostFormValue("name")),
			"email":   form.Text(r.PostFormValue("email")),
			"message": form.Text(r.PostFormValue("message")),
		}, contactRules, form.WithAction(func(ctx context.Context, values form.Values) error {
			_, err := app.CMS().SubmitContact(ctx, cms.SubmitContactParams{
				Name:    values["name"].String(),
				Email:   values["email"].String(),
				Message: values["message"].String(),
			})
			return err
		}))

		switch err := ctrl.Submit(r.Context()); {
		case errors.Is(err, form.ErrInvalid):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": ctrl.Errors()})
		case err != nil:
			http.Error(w, "something went wrong", http.StatusInternalServerError)
		default:
			_ = app.Notify().Push(r.Context(), notify.Success("Message sent", "We will get back to you soon"))
			writeJSON(w, http.StatusAccepted, map[string]string{"status": "received"})
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

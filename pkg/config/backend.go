package config

import (
	"fmt"
	"strings"
)

// Backend identifies the hosted backend project the app is bound to.
// Postgres, auth, and object storage all hang off the same project, so
// the URL, ref, and keys must describe one deployment.
type Backend struct {
	ProjectURL string `env:"BACKEND_PROJECT_URL,required"`
	ProjectRef string `env:"BACKEND_PROJECT_REF,required"`
	AnonKey    string `env:"BACKEND_ANON_KEY,required"`
	ServiceKey string `env:"BACKEND_SERVICE_KEY"`
	Bucket     string `env:"BACKEND_STORAGE_BUCKET" envDefault:"media"`
}

// Validate checks that the project ref is consistent with the project
// URL. Mixing values from two projects is the usual copy-paste mistake
// when wiring a new environment, and it fails in confusing ways at
// runtime, so it is caught here instead.
func (b Backend) Validate() error {
	if b.ProjectURL == "" || b.ProjectRef == "" {
		return ErrMissingProject
	}
	if !strings.Contains(b.ProjectURL, b.ProjectRef) {
		return fmt.Errorf("%w: url %q, ref %q", ErrProjectMismatch, b.ProjectURL, b.ProjectRef)
	}
	return nil
}

// AuthStorageKey returns the browser storage key under which the
// frontend SDK persists its auth session for this project.
func (b Backend) AuthStorageKey() string {
	return "sb-" + b.ProjectRef + "-auth-token"
}

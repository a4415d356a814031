// Package config loads typed configuration structs from the environment.
//
// Each component of the app declares its own configuration struct with
// `env` tags and loads it through the shared cached loader:
//
//	type Mail struct {
//		APIKey string `env:"RESEND_API_KEY,required"`
//		From   string `env:"MAIL_FROM" envDefault:"Daybook <no-reply@daybook.app>"`
//	}
//
//	var cfg Mail
//	config.MustLoad(&cfg)
//
// The loader parses each struct type at most once per process and
// caches the result, so components can load independently without
// coordination. A .env file in the working directory is picked up
// automatically for local development.
//
// The package also holds the Backend configuration that ties the app to
// its hosted backend project (database, auth, and storage), including
// the cross-check that the project ref and URL belong to the same
// deployment.
package config

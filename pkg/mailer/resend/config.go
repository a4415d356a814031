package resend

// Config carries the Resend credentials and default sender identity.
// Load it from the environment with pkg/config.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY,required"`
	SenderEmail string `env:"RESEND_FROM_EMAIL,required"`
	SenderName  string `env:"RESEND_FROM_NAME" envDefault:"Daybook"`
}

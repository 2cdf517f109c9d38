package main

import (
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"
)

// Config is read from the environment; a .env file next to the binary is
// loaded first.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// FormEndpoint is the third-party relay the contact form posts to.
	FormEndpoint string `env:"CONTACT_FORM_ENDPOINT" envDefault:"https://formsubmit.co/dhawadsp@gmail.com"`
	// ContactProxy makes the form post to /contact, which forwards to the
	// relay, instead of posting to the relay directly.
	ContactProxy bool          `env:"CONTACT_PROXY" envDefault:"false"`
	RelayTimeout time.Duration `env:"CONTACT_RELAY_TIMEOUT" envDefault:"10s"`

	// PublicURL is the page address sent as _next. Derived from the
	// request when empty.
	PublicURL string `env:"PUBLIC_URL"`

	// ContentFile overrides the embedded content.yaml.
	ContentFile string `env:"PORTFOLIO_CONTENT"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	u, err := url.Parse(c.FormEndpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Errorf("CONTACT_FORM_ENDPOINT must be an absolute URL, got %q", c.FormEndpoint)
	}
	if c.PublicURL != "" {
		if u, err := url.Parse(c.PublicURL); err != nil || u.Scheme == "" || u.Host == "" {
			return errors.Errorf("PUBLIC_URL must be an absolute URL, got %q", c.PublicURL)
		}
	}
	if c.RelayTimeout <= 0 {
		return errors.Errorf("CONTACT_RELAY_TIMEOUT must be positive, got %s", c.RelayTimeout)
	}
	return nil
}

// formAction is where the rendered form posts.
func (c Config) formAction() string {
	if c.ContactProxy {
		return "/contact"
	}
	return c.FormEndpoint
}

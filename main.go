package main

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Duraisingan2405/portfolio/viewstate"
)

//go:embed templates/*.html
var templatesFS embed.FS

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var port string

	serve := func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if port != "" {
			cfg.Port = port
		}
		content, err := loadContent(cfg.ContentFile)
		if err != nil {
			return err
		}

		r, err := newRouter(cfg, content, newRelay(cfg.FormEndpoint, cfg.RelayTimeout))
		if err != nil {
			return err
		}
		log.Printf("Portfolio listening on :%s (contact form posts to %s)", cfg.Port, cfg.formAction())
		return r.Run(":" + cfg.Port)
	}

	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Serve the portfolio page",
		SilenceUsage: true,
		RunE:         serve,
	}
	root.PersistentFlags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio page (default)",
		RunE:  serve,
	})
	return root
}

func newRouter(cfg Config, content *Content, submitter viewstate.Submitter) (*gin.Engine, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	initial, err := viewstate.InitialSnapshot(content.Words)
	if err != nil {
		return nil, err
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.Static("/static", "./static")

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"content":    content,
			"state":      initial,
			"sections":   viewstate.Sections,
			"formAction": cfg.formAction(),
			"nextURL":    pageURL(cfg, c.Request),
		})
	})

	if cfg.ContactProxy {
		r.POST("/contact", func(c *gin.Context) {
			var draft viewstate.FormDraft
			if err := c.ShouldBind(&draft); err != nil {
				contactError(c)
				return
			}

			next := c.PostForm("_next")
			if !sameSite(cfg, c.Request, next) {
				next = pageURL(cfg, c.Request)
			}

			form := viewstate.NewContactForm(next, nil, submitter)
			if err := form.Fill(draft); err != nil {
				contactError(c)
				return
			}
			if err := form.Submit(); err != nil {
				contactError(c)
				return
			}
			c.Redirect(http.StatusSeeOther, next)
		})
	}

	return r, nil
}

func contactError(c *gin.Context) {
	c.HTML(http.StatusBadRequest, "contact-error.html", gin.H{
		"error": "Please fill in your name, a valid email and a message.",
		"back":  "/#contact",
	})
}

// pageURL is the address visitors are sent back to after submitting.
func pageURL(cfg Config, req *http.Request) string {
	if cfg.PublicURL != "" {
		return cfg.PublicURL
	}
	scheme := "http"
	if req.TLS != nil || req.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return (&url.URL{Scheme: scheme, Host: req.Host, Path: "/"}).String()
}

// sameSite keeps the proxy from redirecting visitors to other hosts or
// to non-http URLs.
func sameSite(cfg Config, req *http.Request, next string) bool {
	if next == "" {
		return false
	}
	u, err := url.Parse(next)
	if err != nil {
		return false
	}
	home, err := url.Parse(pageURL(cfg, req))
	if err != nil {
		return false
	}
	return u.Scheme == home.Scheme && u.Host == home.Host
}

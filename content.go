package main

import (
	"bytes"
	_ "embed"
	"html/template"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/Duraisingan2405/portfolio/viewstate"
)

//go:embed content.yaml
var defaultContent []byte

// Technology is one tile in the technologies grid.
type Technology struct {
	Key  viewstate.Technology `yaml:"key"`
	Name string               `yaml:"name"`
	Icon string               `yaml:"icon"`
}

// Content is everything the page shows that is not layout.
type Content struct {
	Name         string       `yaml:"name"`
	ProfileImage string       `yaml:"profileImage"`
	Words        []string     `yaml:"words"`
	Technologies []Technology `yaml:"technologies"`
	Experience   []string     `yaml:"experience"`

	// ExperienceHTML holds the rendered markdown of Experience.
	ExperienceHTML []template.HTML `yaml:"-"`
}

// loadContent reads path, or the embedded content when path is empty.
func loadContent(path string) (*Content, error) {
	data := defaultContent
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read content")
		}
		data = b
	}
	return parseContent(data)
}

func parseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "parse content")
	}
	if len(c.Words) == 0 {
		return nil, errors.Wrap(viewstate.ErrNoWords, "content")
	}
	for _, t := range c.Technologies {
		if _, ok := viewstate.ParseTechnology(string(t.Key)); !ok {
			return nil, errors.Errorf("content: unknown technology %q", t.Key)
		}
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Linkify))
	for _, entry := range c.Experience {
		var buf bytes.Buffer
		if err := md.Convert([]byte(entry), &buf); err != nil {
			return nil, errors.Wrap(err, "render experience")
		}
		c.ExperienceHTML = append(c.ExperienceHTML, template.HTML(unwrapParagraph(buf.String())))
	}
	return &c, nil
}

// unwrapParagraph drops the <p> goldmark puts around a single line, the
// template already wraps each entry.
func unwrapParagraph(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
		return s[len("<p>") : len(s)-len("</p>")]
	}
	return s
}

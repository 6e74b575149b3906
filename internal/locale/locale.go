// Package locale holds the English and Portuguese content catalogs: labels,
// interface text and the suggestion prompts. Catalogs are embedded YAML.
package locale

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/alexanderramin/stride/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var catalogFS embed.FS

const DefaultCode = "en"

type Prompts struct {
	System string `yaml:"system"`
	Goals  string `yaml:"goals"`
	Habits string `yaml:"habits"`
}

type Catalog struct {
	Code        string                      `yaml:"code"`
	Name        string                      `yaml:"name"`
	Categories  map[domain.Category]string  `yaml:"categories"`
	Frequencies map[domain.Frequency]string `yaml:"frequencies"`
	Prompts     Prompts                     `yaml:"prompts"`
	Text        map[string]string           `yaml:"text"`

	goalPrompt  *template.Template
	habitPrompt *template.Template
}

var (
	loadOnce sync.Once
	catalogs map[string]*Catalog
	loadErr  error
)

func loadAll() (map[string]*Catalog, error) {
	loadOnce.Do(func() {
		entries, err := catalogFS.ReadDir(".")
		if err != nil {
			loadErr = err
			return
		}
		out := make(map[string]*Catalog, len(entries))
		for _, e := range entries {
			data, err := catalogFS.ReadFile(e.Name())
			if err != nil {
				loadErr = err
				return
			}
			c, err := parse(data)
			if err != nil {
				loadErr = fmt.Errorf("loading %s: %w", e.Name(), err)
				return
			}
			out[c.Code] = c
		}
		catalogs = out
	})
	return catalogs, loadErr
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if c.Code == "" {
		return nil, fmt.Errorf("catalog has no code")
	}
	for _, cat := range domain.Categories {
		if c.Categories[cat] == "" {
			return nil, fmt.Errorf("catalog %s: missing label for category %s", c.Code, cat)
		}
	}
	for _, f := range domain.Frequencies {
		if c.Frequencies[f] == "" {
			return nil, fmt.Errorf("catalog %s: missing label for frequency %s", c.Code, f)
		}
	}
	var err error
	if c.goalPrompt, err = template.New("goals").Option("missingkey=error").Parse(c.Prompts.Goals); err != nil {
		return nil, fmt.Errorf("catalog %s: goal prompt: %w", c.Code, err)
	}
	if c.habitPrompt, err = template.New("habits").Option("missingkey=error").Parse(c.Prompts.Habits); err != nil {
		return nil, fmt.Errorf("catalog %s: habit prompt: %w", c.Code, err)
	}
	return &c, nil
}

// Load returns the catalog for code. Region suffixes are ignored, so "pt-BR"
// and "pt_BR" resolve to "pt".
func Load(code string) (*Catalog, error) {
	all, err := loadAll()
	if err != nil {
		return nil, err
	}
	key := strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(key, "-_"); i > 0 {
		key = key[:i]
	}
	if key == "" {
		key = DefaultCode
	}
	c, ok := all[key]
	if !ok {
		return nil, fmt.Errorf("unknown locale %q (available: %s)", code, strings.Join(Codes(), ", "))
	}
	return c, nil
}

// MustLoad is Load for codes known at compile time.
func MustLoad(code string) *Catalog {
	c, err := Load(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Codes lists the available locale codes, sorted.
func Codes() []string {
	all, _ := loadAll()
	out := make([]string, 0, len(all))
	for code := range all {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) CategoryLabel(cat domain.Category) string {
	if l, ok := c.Categories[cat]; ok {
		return l
	}
	return string(cat)
}

func (c *Catalog) FrequencyLabel(f domain.Frequency) string {
	if l, ok := c.Frequencies[f]; ok {
		return l
	}
	return string(f)
}

// T returns the text for key, or the key itself when the catalog lacks it.
func (c *Catalog) T(key string) string {
	if s, ok := c.Text[key]; ok {
		return s
	}
	return key
}

// Tf formats the text for key with args.
func (c *Catalog) Tf(key string, args ...any) string {
	return fmt.Sprintf(c.T(key), args...)
}

// GoalPrompt renders the goal suggestion prompt using the category's label.
func (c *Catalog) GoalPrompt(cat domain.Category) (string, error) {
	var b bytes.Buffer
	if err := c.goalPrompt.Execute(&b, map[string]string{"Category": c.CategoryLabel(cat)}); err != nil {
		return "", fmt.Errorf("rendering goal prompt: %w", err)
	}
	return b.String(), nil
}

// HabitPrompt renders the habit suggestion prompt using the frequency's label.
func (c *Catalog) HabitPrompt(f domain.Frequency) (string, error) {
	var b bytes.Buffer
	if err := c.habitPrompt.Execute(&b, map[string]string{"Frequency": c.FrequencyLabel(f)}); err != nil {
		return "", fmt.Errorf("rendering habit prompt: %w", err)
	}
	return b.String(), nil
}

// ParseCategory accepts a category key or its label in any catalog,
// case-insensitively.
func ParseCategory(s string) (domain.Category, error) {
	if c, err := domain.ParseCategory(s); err == nil {
		return c, nil
	}
	all, err := loadAll()
	if err != nil {
		return "", err
	}
	want := strings.TrimSpace(s)
	for _, code := range Codes() {
		for cat, label := range all[code].Categories {
			if strings.EqualFold(label, want) {
				return cat, nil
			}
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// ParseFrequency accepts a frequency key or its label in any catalog,
// case-insensitively.
func ParseFrequency(s string) (domain.Frequency, error) {
	if f, err := domain.ParseFrequency(s); err == nil {
		return f, nil
	}
	all, err := loadAll()
	if err != nil {
		return "", err
	}
	want := strings.TrimSpace(s)
	for _, code := range Codes() {
		for f, label := range all[code].Frequencies {
			if strings.EqualFold(label, want) {
				return f, nil
			}
		}
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

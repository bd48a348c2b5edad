// Package facts holds the reference fact sheet that grounds templated
// replies. The sheet is configuration: replies must quote its numbers and
// nothing outside them.
package facts

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Product struct {
	Name string `yaml:"name"`
	Rate string `yaml:"rate"`
	APR  string `yaml:"apr"`
}

type Sheet struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Products []Product `yaml:"products"`
}

// Default is the built-in mortgage rate sheet used when no sheet file is
// configured.
func Default() Sheet {
	return Sheet{
		ID:    "mortgage-rates-v1",
		Title: "Facts",
		Products: []Product{
			{Name: "30-year fixed-rate", Rate: "6.403%", APR: "6.484%"},
			{Name: "20-year fixed-rate", Rate: "6.329%", APR: "6.429%"},
			{Name: "15-year fixed-rate", Rate: "5.705%", APR: "5.848%"},
			{Name: "10-year fixed-rate", Rate: "5.500%", APR: "5.720%"},
			{Name: "7-year ARM", Rate: "7.011%", APR: "7.660%"},
			{Name: "5-year ARM", Rate: "6.880%", APR: "7.754%"},
			{Name: "3-year ARM", Rate: "6.125%", APR: "7.204%"},
			{Name: "30-year fixed-rate FHA", Rate: "5.527%", APR: "6.316%"},
			{Name: "30-year fixed-rate VA", Rate: "5.684%", APR: "6.062%"},
		},
	}
}

// Load reads a sheet from a yaml file. An empty path returns the built-in
// default.
func Load(path string) (Sheet, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, err
	}
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return Sheet{}, err
	}
	if len(sheet.Products) == 0 {
		return Sheet{}, errors.New("fact sheet has no products")
	}
	return sheet, nil
}

// Render produces the facts block embedded in templated-reply prompts.
func (s Sheet) Render() string {
	var sb strings.Builder
	title := s.Title
	if title == "" {
		title = "Facts"
	}
	fmt.Fprintf(&sb, "# %s\n", title)
	for _, p := range s.Products {
		fmt.Fprintf(&sb, "%s: interest rate %s, APR %s\n", p.Name, p.Rate, p.APR)
	}
	return sb.String()
}

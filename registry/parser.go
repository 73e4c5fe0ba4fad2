package registry

import (
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Parser turns one household file into a Household. Matches decides by file
// path whether the parser understands the format.
type Parser interface {
	Format() string
	Matches(path string) bool
	Parse(path string) (*Household, error)
}

type JSONParser struct{}

func (JSONParser) Format() string { return "json" }

func (JSONParser) Matches(path string) bool {
	return filepath.Ext(path) == ".json"
}

func (JSONParser) Parse(path string) (*Household, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var household Household
	if err := json.Unmarshal(data, &household); err != nil {
		return nil, err
	}
	return &household, nil
}

type YAMLParser struct{}

func (YAMLParser) Format() string { return "yaml" }

func (YAMLParser) Matches(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}

func (YAMLParser) Parse(path string) (*Household, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var household Household
	if err := yaml.Unmarshal(data, &household); err != nil {
		return nil, err
	}
	return &household, nil
}

// XMLParser reads files shaped like
// <persons><person name="..."><child name="..."/></person></persons>.
type XMLParser struct{}

func (XMLParser) Format() string { return "xml" }

func (XMLParser) Matches(path string) bool {
	return filepath.Ext(path) == ".xml"
}

func (XMLParser) Parse(path string) (*Household, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var household Household
	if err := xml.Unmarshal(data, &household); err != nil {
		return nil, err
	}
	return &household, nil
}

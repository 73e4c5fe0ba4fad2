package registry

// Child is one child entry under a person.
type Child struct {
	Name string `json:"name" yaml:"name" xml:"name,attr"`
}

// Person is a registered parent with the children they list.
type Person struct {
	Name     string  `json:"name" yaml:"name" xml:"name,attr"`
	Children []Child `json:"children" yaml:"children" xml:"child"`
}

// Household is the content of one registry file.
type Household struct {
	Persons []Person `json:"persons" yaml:"persons" xml:"person"`
}

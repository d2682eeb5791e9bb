package domain

// Quiz is a safety quiz a user must pass before using some equipment
type Quiz struct {
	Name    string `json:"name" yaml:"name"`
	Title   string `json:"title" yaml:"title"`
	FormURL string `json:"form_url,omitempty" yaml:"form_url"`
}

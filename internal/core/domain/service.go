package domain

// Service is a read-only catalog entry supplied by the hosting application.
type Service struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`
	Price       float64  `json:"price" yaml:"price"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Reviews     int      `json:"reviews" yaml:"reviews"`
	Duration    string   `json:"duration" yaml:"duration"`
	Image       string   `json:"image" yaml:"image"`
	Features    []string `json:"features" yaml:"features"`
}

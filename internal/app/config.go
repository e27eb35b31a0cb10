package app

// Window defaults.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "blit"
)

// Config selects window and context parameters for New.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	return c
}

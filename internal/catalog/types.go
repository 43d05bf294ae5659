package catalog

// Category tags a gallery item. The wildcard All is never attached to an item;
// it is only a filter value.
type Category string

// All selects every category.
const All Category = "all"

// Built-in categories used when a catalog file does not declare its own set.
const (
	Photo        Category = "photo"
	Video        Category = "video"
	Illustration Category = "illustration"
	Nature       Category = "nature"
	Architecture Category = "architecture"
)

// DefaultCategories is the enumerated set used by the built-in catalog.
var DefaultCategories = []Category{Photo, Video, Illustration, Nature, Architecture}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// Item is a single gallery entry. Items are values and are never mutated after load.
type Item struct {
	ID       string   `yaml:"id" json:"id" validate:"required,item_id"`
	Title    string   `yaml:"title" json:"title" validate:"required,min=1,max=120"`
	Category Category `yaml:"category" json:"category" validate:"required,category_name"`
	ImageRef string   `yaml:"image" json:"image" validate:"required"`
	Caption  string   `yaml:"caption,omitempty" json:"caption,omitempty" validate:"max=280"`
}

// File is the on-disk catalog document.
type File struct {
	Version    string     `yaml:"version" validate:"omitempty,semver"`
	Name       string     `yaml:"name,omitempty" validate:"max=100"`
	Categories []Category `yaml:"categories,omitempty" validate:"omitempty,dive,category_name"`
	Slides     []Slide    `yaml:"slides,omitempty" validate:"omitempty,dive"`
	Items      []Item     `yaml:"items" validate:"dive"`
}

// Slide is one hero banner entry.
type Slide struct {
	Heading  string `yaml:"heading" json:"heading" validate:"required,max=80"`
	Subtitle string `yaml:"subtitle,omitempty" json:"subtitle,omitempty" validate:"max=160"`
	ImageRef string `yaml:"image,omitempty" json:"image,omitempty"`
}

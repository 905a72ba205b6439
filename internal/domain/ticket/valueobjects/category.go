package valueobjects

import "fmt"

type Category string

const (
	CategoryBug        Category = "bug"
	CategoryRequest    Category = "request"
	CategorySuggestion Category = "suggestion"
	CategoryOther      Category = "other"
)

var validCategories = map[Category]bool{
	CategoryBug:        true,
	CategoryRequest:    true,
	CategorySuggestion: true,
	CategoryOther:      true,
}

// categoryAliases maps alternative spellings used by older form versions
// to their canonical values.
var categoryAliases = map[string]Category{
	"feature":  CategoryRequest,
	"question": CategoryOther,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	if alias, ok := categoryAliases[s]; ok {
		return alias, nil
	}
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

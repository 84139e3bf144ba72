package sheet

import "fmt"

// Theme is a display mode of the sheet
type Theme struct {
	Index       int
	ClassName   string
	DisplayName string
	IconSrc     string
}

// Themes in cycle order
var Themes = []Theme{
	{Index: 0, ClassName: "light", DisplayName: "Light", IconSrc: "media/alessio-atzeni-sun-icon.svg"},
	{Index: 1, ClassName: "dark", DisplayName: "Dark", IconSrc: "media/fa-moon-solid.svg"},
}

// ThemeLight and ThemeDark are the class names of the built-in themes
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// FindTheme looks a theme up by class name
func FindTheme(className string) (Theme, bool) {
	for _, t := range Themes {
		if t.ClassName == className {
			return t, true
		}
	}
	return Theme{}, false
}

// Next returns the theme after t, wrapping around
func (t Theme) Next() Theme {
	return Themes[(t.Index+1)%len(Themes)]
}

// Label is the title and aria label of the theme toggle
func (t Theme) Label() string {
	return fmt.Sprintf("Theme: %s - Click to switch", t.DisplayName)
}

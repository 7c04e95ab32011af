package paging

// Theme is carried to the Renderer untouched; the Coordinator makes no decisions on it.
type Theme struct {
	Bold              bool
	TextColor         string
	SelectedTextColor string
	IndicatorColor    string
	BackgroundColor   string
	IndicatorHeight   int
	TotalHeight       int
}

// DefaultTheme returns the stock terminal palette.
func DefaultTheme() Theme {
	return Theme{
		Bold:              true,
		TextColor:         "252",
		SelectedTextColor: "241",
		IndicatorColor:    "252",
		BackgroundColor:   "",
		IndicatorHeight:   1,
		TotalHeight:       2,
	}
}

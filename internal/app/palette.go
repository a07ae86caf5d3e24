package app

import colorful "github.com/lucasb-eyer/go-colorful"

// DefaultPalette is the categorical sprint palette (matplotlib tab10).
var DefaultPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// paletteSample picks the color for sprint index i of n: the palette is
// sampled at n evenly spaced points in [0, 1], matching how the original
// calendar output assigned colors. Indices repeat when n exceeds the
// palette size.
func paletteSample(palette []string, i, n int) colorful.Color {
	x := 0.0
	if n > 1 {
		x = float64(i) / float64(n-1)
	}
	idx := int(x * float64(len(palette)))
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	c, err := colorful.Hex(palette[idx])
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return c
}

// SprintColors assigns each sprint in the schedule a palette color. The
// returned map is keyed by sprint name (a duplicated name keeps the color
// of its last occurrence); the slice lists the distinct names in first
// insertion order, for the legend.
func SprintColors(schedule Schedule, palette []string) (map[string]colorful.Color, []string) {
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	colors := make(map[string]colorful.Color, len(schedule))
	var names []string
	for i, sprint := range schedule {
		if _, seen := colors[sprint.Name]; !seen {
			names = append(names, sprint.Name)
		}
		colors[sprint.Name] = paletteSample(palette, i, len(schedule))
	}
	return colors, names
}

// IsDark reports whether the mean of the color's RGB channels is below
// 0.5; dark cell fills get white day-number text.
func IsDark(c colorful.Color) bool {
	return (c.R+c.G+c.B)/3 < 0.5
}

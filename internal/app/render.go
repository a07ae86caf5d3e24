package app

import (
	"fmt"
	"image"
	"log"
	"strconv"
	"time"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// RenderOptions control calendar geometry and decoration.
type RenderOptions struct {
	// Scale multiplies the base pixel geometry. Zero means 1.0.
	Scale float64
	// Palette overrides the default categorical palette (hex strings).
	Palette []string
	// HolidayRegion tints public-holiday day numbers when set.
	HolidayRegion string
}

// Cell and panel geometry in base (scale 1.0) pixels.
const (
	cellWidth    = 64
	cellHeight   = 44
	monthTitleH  = 48
	monthPadX    = 16
	monthPadY    = 12
	canvasMargin = 24

	legendTitleH    = 36
	legendRowH      = 40
	legendSwatch    = 20
	legendMaxPerRow = 5

	maxMonthCols = 3
)

// Cell colors
const (
	headerFill  = "#e6e6e6"
	weekendFill = "#f2f2f2"
	gridLine    = "#bbbbbb"
	dayTextDark = "#1a1a1a"
	holidayText = "#b30000"
)

var dayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// RenderCalendar renders the schedule as a multi-month wall calendar.
// Months spanned by the schedule are laid out in a grid of at most three
// columns, with a shared sprint legend below. Returns nil when the
// schedule is empty or covers no months at all: there is nothing to
// draw, and the caller must treat that as a normal state.
func RenderCalendar(schedule Schedule, opts RenderOptions) image.Image {
	if len(schedule) == 0 {
		return nil
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1.0
	}

	minDate, maxDate := schedule.Bounds()
	months := MonthRange(minDate, maxDate)
	if len(months) == 0 {
		// Every range ends before it starts: nothing to draw
		return nil
	}

	cols := len(months)
	if cols > maxMonthCols {
		cols = maxMonthCols
	}
	rows := (len(months) + cols - 1) / cols

	colors, names := SprintColors(schedule, opts.Palette)
	legendRows := (len(names) + legendMaxPerRow - 1) / legendMaxPerRow

	panelW := (monthPadX*2 + 7*cellWidth) * scale
	panelH := (monthTitleH + 7*cellHeight + monthPadY*2) * scale
	margin := canvasMargin * scale

	width := 2*margin + float64(cols)*panelW
	height := 2*margin + float64(rows)*panelH +
		(legendTitleH+float64(legendRows)*legendRowH)*scale

	dc := gg.NewContext(int(width), int(height))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	r := &renderer{
		dc:       dc,
		scale:    scale,
		schedule: schedule,
		colors:   colors,
		names:    names,
		regular:  loadFace(goregular.TTF, 15*scale),
		bold:     loadFace(gobold.TTF, 15*scale),
		title:    loadFace(gobold.TTF, 22*scale),
	}

	if opts.HolidayRegion != "" {
		r.holidays = make(map[string]string)
		seen := make(map[int]bool)
		for _, ym := range months {
			if seen[ym.Year] {
				continue
			}
			seen[ym.Year] = true
			for date, name := range Holidays(opts.HolidayRegion, ym.Year) {
				r.holidays[date] = name
			}
		}
	}

	for i, ym := range months {
		x := margin + float64(i%cols)*panelW
		y := margin + float64(i/cols)*panelH
		r.drawMonth(x, y, ym)
	}

	r.drawLegend(width, margin+float64(rows)*panelH)

	return dc.Image()
}

type renderer struct {
	dc       *gg.Context
	scale    float64
	schedule Schedule
	colors   map[string]colorful.Color
	names    []string
	holidays map[string]string
	regular  font.Face
	bold     font.Face
	title    font.Face
}

// px converts base units to device pixels.
func (r *renderer) px(v float64) float64 { return v * r.scale }

func (r *renderer) drawMonth(ox, oy float64, ym YearMonth) {
	dc := r.dc

	panelW := r.px(monthPadX*2 + 7*cellWidth)
	title := fmt.Sprintf("%s %d", ym.Month, ym.Year)
	dc.SetFontFace(r.title)
	dc.SetHexColor(dayTextDark)
	dc.DrawStringAnchored(title, ox+panelW/2, oy+r.px(monthTitleH)/2, 0.5, 0.5)

	gridX := ox + r.px(monthPadX)
	gridY := oy + r.px(monthTitleH)

	// Weekday header row
	dc.SetFontFace(r.bold)
	for col, name := range dayNames {
		cx := gridX + float64(col)*r.px(cellWidth)
		r.fillCell(cx, gridY, headerFill)
		dc.SetHexColor(dayTextDark)
		dc.DrawStringAnchored(name, cx+r.px(cellWidth)/2, gridY+r.px(cellHeight)/2, 0.5, 0.5)
	}

	dc.SetFontFace(r.regular)
	for w, week := range MonthMatrix(ym.Year, ym.Month) {
		for col, day := range week {
			cx := gridX + float64(col)*r.px(cellWidth)
			cy := gridY + float64(w+1)*r.px(cellHeight)
			r.drawDayCell(cx, cy, ym, day, col)
		}
	}
}

// drawDayCell paints one calendar cell. Sprint membership is resolved
// last-write-wins in schedule order, so only the final fill color feeds
// the text contrast rule.
func (r *renderer) drawDayCell(cx, cy float64, ym YearMonth, day, col int) {
	dc := r.dc

	var fill colorful.Color
	painted := false
	dateStr := ""
	if day != 0 {
		date := time.Date(ym.Year, ym.Month, day, 0, 0, 0, 0, time.UTC)
		dateStr = date.Format(DateLayout)
		for _, sprint := range r.schedule {
			if sprint.Covers(date) {
				fill = r.colors[sprint.Name]
				painted = true
			}
		}
	}

	switch {
	case painted:
		dc.SetColor(fill)
		dc.DrawRectangle(cx, cy, r.px(cellWidth), r.px(cellHeight))
		dc.Fill()
		r.strokeCell(cx, cy)
	case day != 0 && col >= 5:
		// Saturday and Sunday columns
		r.fillCell(cx, cy, weekendFill)
	default:
		r.strokeCell(cx, cy)
	}

	if day == 0 {
		return
	}

	switch {
	case painted && IsDark(fill):
		dc.SetRGB(1, 1, 1)
	case !painted && r.holidays[dateStr] != "":
		dc.SetHexColor(holidayText)
	default:
		dc.SetHexColor(dayTextDark)
	}
	dc.DrawStringAnchored(strconv.Itoa(day), cx+r.px(cellWidth)/2, cy+r.px(cellHeight)/2, 0.5, 0.5)
}

func (r *renderer) fillCell(cx, cy float64, hex string) {
	dc := r.dc
	dc.SetHexColor(hex)
	dc.DrawRectangle(cx, cy, r.px(cellWidth), r.px(cellHeight))
	dc.Fill()
	r.strokeCell(cx, cy)
}

func (r *renderer) strokeCell(cx, cy float64) {
	dc := r.dc
	dc.SetHexColor(gridLine)
	dc.SetLineWidth(r.scale)
	dc.DrawRectangle(cx, cy, r.px(cellWidth), r.px(cellHeight))
	dc.Stroke()
}

// drawLegend draws the shared sprint legend below the month grids,
// wrapped at legendMaxPerRow entries per row.
func (r *renderer) drawLegend(width, top float64) {
	dc := r.dc

	dc.SetFontFace(r.bold)
	dc.SetHexColor(dayTextDark)
	dc.DrawStringAnchored("Sprints", width/2, top+r.px(legendTitleH)/2, 0.5, 0.5)

	slotW := (width - 2*r.px(canvasMargin)) / legendMaxPerRow
	dc.SetFontFace(r.regular)
	for i, name := range r.names {
		row := i / legendMaxPerRow
		inRow := len(r.names) - row*legendMaxPerRow
		if inRow > legendMaxPerRow {
			inRow = legendMaxPerRow
		}
		rowStart := (width - float64(inRow)*slotW) / 2
		x := rowStart + float64(i%legendMaxPerRow)*slotW
		y := top + r.px(legendTitleH) + float64(row)*r.px(legendRowH)

		swatch := r.px(legendSwatch)
		sy := y + (r.px(legendRowH)-swatch)/2
		dc.SetColor(r.colors[name])
		dc.DrawRectangle(x, sy, swatch, swatch)
		dc.Fill()
		dc.SetHexColor(gridLine)
		dc.SetLineWidth(r.scale)
		dc.DrawRectangle(x, sy, swatch, swatch)
		dc.Stroke()

		dc.SetHexColor(dayTextDark)
		dc.DrawStringAnchored(name, x+swatch+r.px(8), y+r.px(legendRowH)/2, 0, 0.5)
	}
}

// loadFace builds a font face from an embedded TTF, falling back to the
// fixed basic face if the font does not parse.
func loadFace(ttf []byte, size float64) font.Face {
	f, err := opentype.Parse(ttf)
	if err != nil {
		log.Printf("Error parsing font: %v", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("Error creating font face: %v", err)
		return basicfont.Face7x13
	}
	return face
}

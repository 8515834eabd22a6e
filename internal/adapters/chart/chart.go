// Package chart renders rank-over-time line charts from the computed
// series.
package chart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/okian/rinkrank/internal/adapters/repository"
	"github.com/okian/rinkrank/internal/domain/model"
)

const (
	defaultWidth  = 1024
	defaultHeight = 512
)

// SeriesReader is the slice of the store the renderer draws from.
type SeriesReader interface {
	Series(ctx context.Context, team string) ([]model.RankingEntry, error)
}

// Renderer draws PNG charts of ranking history.
type Renderer struct {
	width  int
	height int
}

// New creates a Renderer with the default frame size.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:  defaultWidth,
		height: defaultHeight,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws one line per team: X is the evaluation year, Y the rank
// with first place at the top. from and to bound the year range when
// nonzero. Teams with no entries in range are left off the chart; if
// nothing remains, a placeholder frame is rendered instead of an error.
func (r *Renderer) Render(ctx context.Context, src SeriesReader, teams []string, from, to int) ([]byte, error) {
	var series []chart.Series
	var minYear, maxYear, maxRank int
	for _, team := range teams {
		entries, err := src.Series(ctx, team)
		if errors.Is(err, repository.ErrNotRanked) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("series for %s: %w", team, err)
		}

		var xs, ys []float64
		for _, e := range entries {
			if (from > 0 && e.Year < from) || (to > 0 && e.Year > to) {
				continue
			}
			xs = append(xs, float64(e.Year))
			ys = append(ys, float64(e.Rank))
			if minYear == 0 || e.Year < minYear {
				minYear = e.Year
			}
			if e.Year > maxYear {
				maxYear = e.Year
			}
			if e.Rank > maxRank {
				maxRank = e.Rank
			}
		}
		if len(xs) == 0 {
			continue
		}

		idx := len(series)
		series = append(series, chart.ContinuousSeries{
			Name:    team,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(idx),
				StrokeWidth: 2,
				DotWidth:    3,
				DotColor:    chart.GetDefaultColor(idx),
			},
		})
	}

	if len(series) == 0 {
		return r.renderPlaceholder()
	}

	// Both axes get explicit padded ranges: the library rejects
	// zero-delta axes, which a single season or an unbroken reign at
	// one rank would otherwise produce.
	graph := chart.Chart{
		Width:  r.width,
		Height: r.height,
		XAxis: chart.XAxis{
			Name:           "Year",
			ValueFormatter: intFormatter,
			Range: &chart.ContinuousRange{
				Min: float64(minYear) - 0.5,
				Max: float64(maxYear) + 0.5,
			},
		},
		YAxis: chart.YAxis{
			Name:           "Rank",
			ValueFormatter: intFormatter,
			// First place belongs at the top of the frame.
			Range: &chart.ContinuousRange{
				Min:        0.5,
				Max:        float64(maxRank) + 0.5,
				Descending: true,
			},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// renderPlaceholder draws an empty frame stating that nothing matched,
// so callers always get a valid image back. The invisible series
// satisfies the renderer's requirement for at least one.
func (r *Renderer) renderPlaceholder() ([]byte, error) {
	const msg = "no ranking history in range"

	graph := chart.Chart{
		Width:  r.width / 2,
		Height: r.height / 2,
		XAxis:  chart.XAxis{Style: chart.Hidden()},
		YAxis:  chart.YAxis{Style: chart.Hidden()},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
				Style: chart.Style{
					StrokeColor: chart.ColorTransparent,
					DotColor:    chart.ColorTransparent,
				},
			},
		},
		Elements: []chart.Renderable{
			func(rend chart.Renderer, cb chart.Box, defaults chart.Style) {
				rend.SetFontColor(chart.ColorBlack)
				rend.SetFontSize(12.0)
				tb := rend.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				rend.Text(msg, x, y)
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

func intFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.Itoa(int(f))
	}
	return ""
}

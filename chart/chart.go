// Package chart implements the prime implicant chart of the Quine-McCluskey
// method.
//
// A chart is a boolean matrix whose rows are prime implicants and whose
// columns are the terms to cover. It is simplified by extracting essential
// prime implicants and by removing dominated rows and dominating columns (see
// "Minimization of Boolean expressions using matrix algebra"). The remaining
// columns are then given to a covering solver.
package chart

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/crillab/gopherqmc/cancel"
	"github.com/crillab/gopherqmc/implicant"
)

// A Chart is a prime implicant chart.
// rows[y][x] and cols[x][y] are both true iff implicants[y] covers terms[x].
type Chart struct {
	implicants []implicant.Implicant
	rows       [][]bool
	terms      []uint32
	cols       [][]bool
	essentials []implicant.Implicant
}

// New returns the chart associating the given implicants with all the terms
// they cover, except dontCares. Rows are sorted with implicant.Less and
// columns by term.
func New(implicants []implicant.Implicant, dontCares []uint32) *Chart {
	dcs := mapset.NewThreadUnsafeSet(dontCares...)
	covered := mapset.NewThreadUnsafeSet[uint32]()
	for _, imp := range implicants {
		covered.Append(imp.Terms()...)
	}
	terms := covered.Difference(dcs).ToSlice()
	indices := make(map[uint32]int, len(terms))
	for x, term := range terms {
		indices[term] = x
	}
	c := &Chart{
		implicants: append([]implicant.Implicant(nil), implicants...),
		rows:       make([][]bool, len(implicants)),
		terms:      terms,
		cols:       make([][]bool, len(terms)),
	}
	for y := range c.rows {
		c.rows[y] = make([]bool, len(terms))
	}
	for x := range c.cols {
		c.cols[x] = make([]bool, len(implicants))
	}
	for y, imp := range implicants {
		for _, term := range imp.Terms() {
			if x, ok := indices[term]; ok {
				c.rows[y][x] = true
				c.cols[x][y] = true
			}
		}
	}
	c.sort()
	return c
}

// Simplify reduces the chart and returns the essential prime implicants found.
// If allSolutions is true, only one essential extraction is done, so that no
// alternative solution is discarded. Otherwise, essential extraction, column
// dominance and row dominance are applied until none of them changes the
// chart.
func (c *Chart) Simplify(allSolutions bool, sig cancel.Signal) ([]implicant.Implicant, error) {
	if allSolutions {
		c.extractEssentials()
		if err := cancel.Check(sig); err != nil {
			return nil, err
		}
		return c.Essentials(), nil
	}
	for {
		if err := cancel.Check(sig); err != nil {
			return nil, err
		}
		extracted := c.extractEssentials()
		termsRemoved := c.removeDominatingTerms()
		implicantsRemoved := c.removeDominatedImplicants()
		if !extracted && !termsRemoved && !implicantsRemoved {
			return c.Essentials(), nil
		}
	}
}

// CoveringImplicants returns, for each remaining term, the remaining
// implicants covering it.
func (c *Chart) CoveringImplicants() [][]implicant.Implicant {
	res := make([][]implicant.Implicant, len(c.terms))
	for x, col := range c.cols {
		for y, marked := range col {
			if marked {
				res[x] = append(res[x], c.implicants[y])
			}
		}
	}
	return res
}

// Essentials returns the essential prime implicants extracted so far.
func (c *Chart) Essentials() []implicant.Implicant {
	return append([]implicant.Implicant(nil), c.essentials...)
}

// Implicants returns the implicants still in the chart.
func (c *Chart) Implicants() []implicant.Implicant {
	return append([]implicant.Implicant(nil), c.implicants...)
}

// Terms returns the terms still in the chart.
func (c *Chart) Terms() []uint32 {
	return append([]uint32(nil), c.terms...)
}

// extractEssentials extracts all the rows that are the only one covering some
// column, then removes all the columns they cover.
func (c *Chart) extractEssentials() bool {
	rows := make(map[int]bool)
	covered := make(map[int]bool)
	for _, col := range c.cols {
		marked := -1
		count := 0
		for y, m := range col {
			if m {
				count++
				marked = y
				if count > 1 {
					break
				}
			}
		}
		if count != 1 || rows[marked] {
			continue
		}
		rows[marked] = true
		for x, col2 := range c.cols {
			if col2[marked] {
				covered[x] = true
			}
		}
	}
	for _, y := range sortedDesc(rows) {
		c.essentials = append(c.essentials, c.removeRow(y))
	}
	for _, x := range sortedDesc(covered) {
		c.removeCol(x)
	}
	return len(rows) > 0
}

// removeDominatingTerms removes each column whose marks are a superset of the
// marks of another column: covering the other one covers it too.
func (c *Chart) removeDominatingTerms() bool {
	removed := false
	for x1 := len(c.terms) - 1; x1 >= 0; x1-- {
		for x2 := len(c.terms) - 1; x2 >= 0; x2-- {
			if x2 != x1 && dominates(c.cols[x1], c.cols[x2]) {
				c.removeCol(x1)
				removed = true
				break
			}
		}
	}
	return removed
}

// removeDominatedImplicants removes each row whose marks are a subset of the
// marks of another row having at least as many wildcards.
func (c *Chart) removeDominatedImplicants() bool {
	removed := false
	for y1 := len(c.implicants) - 1; y1 >= 0; y1-- {
		for y2 := len(c.implicants) - 1; y2 >= 0; y2-- {
			if y2 != y1 && dominates(c.rows[y2], c.rows[y1]) &&
				c.implicants[y1].WildcardCount() <= c.implicants[y2].WildcardCount() {
				c.removeRow(y1)
				removed = true
				break
			}
		}
	}
	return removed
}

// sort orders implicants with implicant.Less and terms by value.
// Sorted terms make absorption more effective in Petrick's method.
func (c *Chart) sort() {
	ys := make([]int, len(c.implicants))
	for y := range ys {
		ys[y] = y
	}
	sort.Slice(ys, func(i, j int) bool { return implicant.Less(c.implicants[ys[i]], c.implicants[ys[j]]) })
	xs := make([]int, len(c.terms))
	for x := range xs {
		xs[x] = x
	}
	sort.Slice(xs, func(i, j int) bool { return c.terms[xs[i]] < c.terms[xs[j]] })

	implicants := make([]implicant.Implicant, len(ys))
	terms := make([]uint32, len(xs))
	rows := make([][]bool, len(ys))
	cols := make([][]bool, len(xs))
	for i, y := range ys {
		implicants[i] = c.implicants[y]
		rows[i] = make([]bool, len(xs))
	}
	for j, x := range xs {
		terms[j] = c.terms[x]
		cols[j] = make([]bool, len(ys))
		for i, y := range ys {
			rows[i][j] = c.rows[y][x]
			cols[j][i] = c.rows[y][x]
		}
	}
	c.implicants, c.terms, c.rows, c.cols = implicants, terms, rows, cols
}

func (c *Chart) removeRow(y int) implicant.Implicant {
	last := len(c.implicants) - 1
	imp := c.implicants[y]
	c.implicants[y] = c.implicants[last]
	c.implicants = c.implicants[:last]
	c.rows[y] = c.rows[last]
	c.rows = c.rows[:last]
	for x, col := range c.cols {
		col[y] = col[last]
		c.cols[x] = col[:last]
	}
	return imp
}

func (c *Chart) removeCol(x int) uint32 {
	last := len(c.terms) - 1
	term := c.terms[x]
	c.terms[x] = c.terms[last]
	c.terms = c.terms[:last]
	c.cols[x] = c.cols[last]
	c.cols = c.cols[:last]
	for y, row := range c.rows {
		row[x] = row[last]
		c.rows[y] = row[:last]
	}
	return term
}

// dominates returns true iff marks is true everywhere other is.
func dominates(marks, other []bool) bool {
	for i, m := range other {
		if m && !marks[i] {
			return false
		}
	}
	return true
}

func sortedDesc(set map[int]bool) []int {
	res := make([]int, 0, len(set))
	for i := range set {
		res = append(res, i)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(res)))
	return res
}

// String returns a textual representation of the chart, one line per
// implicant, with variableCount-wide implicants.
func (c *Chart) String() string {
	return c.Format(0)
}

// Format is like String but writes implicants with the given number of
// variables. If variableCount is 0, the smallest width is used.
func (c *Chart) Format(variableCount int) string {
	var sb strings.Builder
	width := 1
	for _, imp := range c.implicants {
		if s := len(imp.String()); s > width {
			width = s
		}
	}
	if variableCount > 0 {
		width = variableCount
	}
	fmt.Fprintf(&sb, "%*s", width, "")
	for _, term := range c.terms {
		fmt.Fprintf(&sb, " %3d", term)
	}
	sb.WriteByte('\n')
	for y, imp := range c.implicants {
		fmt.Fprintf(&sb, "%*s", width, imp.Format(width))
		for _, m := range c.rows[y] {
			if m {
				sb.WriteString("   X")
			} else {
				sb.WriteString("   .")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

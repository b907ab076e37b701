package snake

import "math/rand"

// FoodPlacer picks random free cells for food.
type FoodPlacer struct {
	grid Grid
	rng  *rand.Rand
}

// NewFoodPlacer creates a placer over grid using rng.
func NewFoodPlacer(grid Grid, rng *rand.Rand) *FoodPlacer {
	return &FoodPlacer{grid: grid, rng: rng}
}

// Place draws cells uniformly from the grid until one is not occupied.
// It returns false without drawing when occupied already covers the whole grid.
func (p *FoodPlacer) Place(occupied CellSet) (Cell, bool) {
	taken := 0
	for c := range occupied {
		if p.grid.Contains(c) {
			taken++
		}
	}
	if taken >= p.grid.Area() {
		return Cell{}, false
	}

	for {
		c := Cell{
			X: p.rng.Intn(p.grid.Width),
			Y: p.rng.Intn(p.grid.Height),
		}
		if !occupied.Has(c) {
			return c, true
		}
	}
}

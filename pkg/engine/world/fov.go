package world

type fovCell struct {
	walkable    bool
	transparent bool
	inFov       bool
}

// Fov is the walkability/transparency substrate of a Map together with the
// result of the last visibility computation. Cells are indexed [x][y];
// out-of-range coordinates panic.
type Fov struct {
	width, height int
	cells         [][]fovCell
}

// NewFov creates a substrate where every cell is an opaque wall.
func NewFov(width, height int) *Fov {
	cells := make([][]fovCell, width)
	for x := range cells {
		cells[x] = make([]fovCell, height)
	}
	return &Fov{width: width, height: height, cells: cells}
}

// SetCell sets the walkable and transparent flags of a cell
func (f *Fov) SetCell(x, y int, walkable, transparent bool) {
	c := &f.cells[x][y]
	c.walkable = walkable
	c.transparent = transparent
}

// IsWalkable returns true if the cell is walkable
func (f *Fov) IsWalkable(x, y int) bool {
	return f.cells[x][y].walkable
}

// IsTransparent returns true if the cell lets light through
func (f *Fov) IsTransparent(x, y int) bool {
	return f.cells[x][y].transparent
}

// IsInFov returns true if the last ComputeFov marked the cell visible
func (f *Fov) IsInFov(x, y int) bool {
	return f.cells[x][y].inFov
}

func (f *Fov) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// ComputeFov recalculates which cells are visible from (x, y) within the
// Euclidean radius. A cell is visible when the Bresenham line to it crosses
// only transparent cells; the target itself may be opaque. Afterwards every
// opaque cell touching a visible transparent cell is lit too, even one step
// past the radius, so corridor and room walls show without gaps. The origin
// is always visible, wall or not.
func (f *Fov) ComputeFov(x, y, radius int) {
	for cx := range f.cells {
		col := f.cells[cx]
		for cy := range col {
			col[cy].inFov = false
		}
	}
	if radius < 0 {
		radius = 0
	}

	f.cells[x][y].inFov = true

	r2 := radius * radius
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			tx, ty := x+dx, y+dy
			if !f.inBounds(tx, ty) {
				continue
			}
			if f.hasLineOfSight(x, y, tx, ty) {
				f.cells[tx][ty].inFov = true
			}
		}
	}

	f.lightWalls(x, y, radius)
}

// lightWalls marks opaque cells that border a visible transparent cell.
// Only transparent neighbours count, so the order of the scan is irrelevant.
func (f *Fov) lightWalls(x, y, radius int) {
	for tx := max(0, x-radius-1); tx <= min(f.width-1, x+radius+1); tx++ {
		for ty := max(0, y-radius-1); ty <= min(f.height-1, y+radius+1); ty++ {
			c := &f.cells[tx][ty]
			if c.transparent || c.inFov {
				continue
			}
			if f.bordersVisibleTransparent(tx, ty) {
				c.inFov = true
			}
		}
	}
}

func (f *Fov) bordersVisibleTransparent(x, y int) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			nx, ny := x+dx, y+dy
			if (dx == 0 && dy == 0) || !f.inBounds(nx, ny) {
				continue
			}
			if n := f.cells[nx][ny]; n.transparent && n.inFov {
				return true
			}
		}
	}
	return false
}

// hasLineOfSight returns true if every cell strictly between (x0,y0) and
// (x1,y1) on the Bresenham line is transparent.
func (f *Fov) hasLineOfSight(x0, y0, x1, y1 int) bool {
	dx := x1 - x0
	dy := y1 - y0

	if dx == 0 && dy == 0 {
		return true
	}

	absDx, absDy := abs(dx), abs(dy)
	stepX, stepY := sign(dx), sign(dy)

	x, y := x0, y0

	if absDx >= absDy {
		// Step along x
		err := 2*absDy - absDx
		for x != x1 {
			x += stepX
			if err > 0 {
				y += stepY
				err -= 2 * absDx
			}
			err += 2 * absDy

			if x == x1 && y == y1 {
				return true
			}
			if !f.inBounds(x, y) || !f.cells[x][y].transparent {
				return false
			}
		}
	} else {
		// Step along y
		err := 2*absDx - absDy
		for y != y1 {
			y += stepY
			if err > 0 {
				x += stepX
				err -= 2 * absDy
			}
			err += 2 * absDx

			if x == x1 && y == y1 {
				return true
			}
			if !f.inBounds(x, y) || !f.cells[x][y].transparent {
				return false
			}
		}
	}

	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

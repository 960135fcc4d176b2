package tilegrid

// Bitmap is a single-group occupancy grid stored row-major.
type Bitmap struct {
	w, h  int
	cells []bool
}

// NewBitmap returns an empty w x h bitmap. Negative dimensions become zero.
func NewBitmap(w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Bitmap{w: w, h: h, cells: make([]bool, w*h)}
}

func (b *Bitmap) Width() int  { return b.w }
func (b *Bitmap) Height() int { return b.h }

func (b *Bitmap) IsSolid(x, y int) bool {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return false
	}
	return b.cells[y*b.w+x]
}

// Set marks (x,y). Off-grid writes are ignored.
func (b *Bitmap) Set(x, y int, solid bool) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.cells[y*b.w+x] = solid
}

// Fill marks every cell of the inclusive box [x0,x1] x [y0,y1] solid.
func (b *Bitmap) Fill(x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			b.Set(x, y, true)
		}
	}
}

// Labels is a grouped occupancy grid stored row-major. A label of 0 is an
// empty cell; any other label is solid and doubles as the group key.
type Labels struct {
	w, h  int
	cells []int
}

// NewLabels returns an all-empty w x h label grid.
func NewLabels(w, h int) *Labels {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Labels{w: w, h: h, cells: make([]int, w*h)}
}

func (l *Labels) Width() int  { return l.w }
func (l *Labels) Height() int { return l.h }

func (l *Labels) IsSolid(x, y int) bool { return l.Label(x, y) != 0 }

func (l *Labels) Group(x, y int) int { return l.Label(x, y) }

// Label returns the raw label at (x,y), 0 when off-grid.
func (l *Labels) Label(x, y int) int {
	if x < 0 || x >= l.w || y < 0 || y >= l.h {
		return 0
	}
	return l.cells[y*l.w+x]
}

// Set stores label at (x,y). Off-grid writes are ignored.
func (l *Labels) Set(x, y, label int) {
	if x < 0 || x >= l.w || y < 0 || y >= l.h {
		return
	}
	l.cells[y*l.w+x] = label
}

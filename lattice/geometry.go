package lattice

import "math"

// Bond labels the three bond directions of the honeycomb.
type Bond int

const (
	BondX Bond = iota
	BondY
	BondZ
)

// bondCycle is the cyclic order x→y→z used for the three-spin term.
var bondCycle = [3][2]Bond{{BondX, BondY}, {BondY, BondZ}, {BondZ, BondX}}

const (
	subA = 0
	subB = 1
)

var (
	sqrt3     = math.Sqrt(3)
	bOffsetY  = 1 / sqrt3 // B site sits (0, 1/√3) above its cell origin
	rowHeight = sqrt3 / 2 // y component of the second lattice vector
)

// geometry holds the index arithmetic of an L×L honeycomb torus.
type geometry struct {
	l int
}

// sites returns the number of Majorana sites, 2L².
func (g geometry) sites() int { return 2 * g.l * g.l }

// cells returns the number of unit cells (and plaquettes), L².
func (g geometry) cells() int { return g.l * g.l }

// wrap reduces a cell coordinate modulo L into [0, L).
func (g geometry) wrap(v int) int {
	v %= g.l
	if v < 0 {
		v += g.l
	}

	return v
}

// cell returns the cell index of (i,j) after periodic wrapping.
func (g geometry) cell(i, j int) int {
	return g.wrap(j)*g.l + g.wrap(i)
}

// coords returns (i,j) of a cell index.
func (g geometry) coords(cell int) (i, j int) {
	return cell % g.l, cell / g.l
}

// site returns the Majorana index of sublattice sub in cell (i,j).
func (g geometry) site(i, j, sub int) int {
	return 2*g.cell(i, j) + sub
}

// bond returns the index of the bond of kind b leaving A(i,j).
func (g geometry) bond(i, j int, b Bond) int {
	return 3*g.cell(i, j) + int(b)
}

// bondCount returns the number of bonds, 3L².
func (g geometry) bondCount() int { return 3 * g.cells() }

// partnerOfA returns the cell (i',j') of the B site reached from A(i,j)
// along bond b.
func partnerOfA(i, j int, b Bond) (int, int) {
	switch b {
	case BondX:
		return i + 1, j - 1
	case BondY:
		return i, j - 1
	default:
		return i, j
	}
}

// partnerOfB returns the cell of the A site reached from B(i,j) along b.
func partnerOfB(i, j int, b Bond) (int, int) {
	switch b {
	case BondX:
		return i - 1, j + 1
	case BondY:
		return i, j + 1
	default:
		return i, j
	}
}

// neighbour describes one bond seen from a given site.
type neighbour struct {
	site   int     // the site at the other end
	bond   int     // bond index (signs/weights are stored per bond)
	dx, dy float64 // unwrapped vector to the other end
}

// neighbours returns the x, y, z neighbours of site s in bond order.
func (g geometry) neighbours(s int) [3]neighbour {
	i, j := g.coords(s / 2)
	var out [3]neighbour
	for _, b := range []Bond{BondX, BondY, BondZ} {
		dx, dy := bondVector(s%2, b)
		if s%2 == subA {
			pi, pj := partnerOfA(i, j, b)
			out[b] = neighbour{site: g.site(pi, pj, subB), bond: g.bond(i, j, b), dx: dx, dy: dy}
		} else {
			pi, pj := partnerOfB(i, j, b)
			out[b] = neighbour{site: g.site(pi, pj, subA), bond: g.bond(pi, pj, b), dx: dx, dy: dy}
		}
	}

	return out
}

// plaquette returns the six bonds around the hexagon of cell (i,j):
// A(i,j) -z- B(i,j) -y- A(i,j+1) -x- B(i+1,j) -z- A(i+1,j) -y- B(i+1,j-1) -x- A(i,j).
func (g geometry) plaquette(i, j int) [6]int {
	return [6]int{
		g.bond(i, j, BondZ),
		g.bond(i, j+1, BondY),
		g.bond(i, j+1, BondX),
		g.bond(i+1, j, BondZ),
		g.bond(i+1, j, BondY),
		g.bond(i, j, BondX),
	}
}

// bondVector returns the unwrapped vector from a site of sublattice sub to
// its partner along bond b.
func bondVector(sub int, b Bond) (dx, dy float64) {
	if sub == subA {
		di, dj := partnerOfA(0, 0, b)

		return float64(di) + float64(dj)/2, float64(dj)*rowHeight + bOffsetY
	}
	di, dj := partnerOfB(0, 0, b)

	return float64(di) + float64(dj)/2, float64(dj)*rowHeight - bOffsetY
}

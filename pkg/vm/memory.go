package vm

// Memory is the storage a Computer executes against. Both operations are
// bounds-checked: any access at or beyond the image length fails with a
// SegFaultError carrying the offending address. The interpreter never
// depends on a concrete backing, so alternates can be substituted without
// touching the execution logic.
type Memory interface {
	Read(address int) (int64, error)
	Write(address int, value int64) error
}

// RAM is the default contiguous Memory backing.
type RAM []int64

func (r RAM) Read(address int) (int64, error) {
	if address < 0 || address >= len(r) {
		return 0, &SegFaultError{Address: address}
	}
	return r[address], nil
}

func (r RAM) Write(address int, value int64) error {
	if address < 0 || address >= len(r) {
		return &SegFaultError{Address: address}
	}
	r[address] = value
	return nil
}

// Clone returns an independent copy of the image. Brute-force searches
// clone the pristine program once per attempt since a run mutates memory
// in place.
func (r RAM) Clone() RAM {
	out := make(RAM, len(r))
	copy(out, r)
	return out
}

// Sparse is a map-backed Memory with the same fixed bounds as RAM. Only
// non-zero cells are stored, which suits large mostly-empty images.
type Sparse struct {
	cells map[int]int64
	size  int
}

// NewSparse builds a Sparse memory from an initial image.
func NewSparse(image []int64) *Sparse {
	cells := make(map[int]int64, len(image))
	for i, v := range image {
		if v != 0 {
			cells[i] = v
		}
	}
	return &Sparse{cells: cells, size: len(image)}
}

func (s *Sparse) Read(address int) (int64, error) {
	if address < 0 || address >= s.size {
		return 0, &SegFaultError{Address: address}
	}
	return s.cells[address], nil
}

func (s *Sparse) Write(address int, value int64) error {
	if address < 0 || address >= s.size {
		return &SegFaultError{Address: address}
	}
	if value == 0 {
		delete(s.cells, address)
	} else {
		s.cells[address] = value
	}
	return nil
}

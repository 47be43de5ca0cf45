package ds

import (
	"fmt"
	"math"
)

// BoxSpec описывает куб симуляции и число разбиений по каждой оси
type BoxSpec struct {
	SideLength   float64 `json:"side_length"`
	Subdivisions int     `json:"subdivisions_per_axis"`
	// MaxCells ограничивает N^3; 0 означает DefaultMaxCells
	MaxCells int `json:"-"`
}

// DefaultMaxCells - предел по умолчанию (N <= 128)
const DefaultMaxCells = 1 << 21

func (b BoxSpec) cellLimit() int {
	if b.MaxCells > 0 {
		return b.MaxCells
	}
	return DefaultMaxCells
}

// Validate проверяет, что куб можно разбить
func (b BoxSpec) Validate() error {
	if math.IsNaN(b.SideLength) || math.IsInf(b.SideLength, 0) || b.SideLength <= 0 {
		return fmt.Errorf("%w: side length must be positive, got %v", ErrInvalidConfiguration, b.SideLength)
	}
	if b.Subdivisions <= 0 {
		return fmt.Errorf("%w: subdivisions per axis must be >= 1, got %d", ErrInvalidConfiguration, b.Subdivisions)
	}
	// n^3 <= limit без переполнения int
	n, limit := b.Subdivisions, b.cellLimit()
	if n > limit/n || n > limit/(n*n) {
		return fmt.Errorf("%w: %d^3 sub-volumes exceed the limit of %d cells", ErrInvalidConfiguration, n, limit)
	}
	return nil
}

// Cells возвращает общее число подобъемов N^3; вызывать после Validate
func (b BoxSpec) Cells() int {
	return b.Subdivisions * b.Subdivisions * b.Subdivisions
}

// SubVolumeIndex - индекс ячейки сетки (i, j, k)
type SubVolumeIndex struct {
	I int `json:"i"`
	J int `json:"j"`
	K int `json:"k"`
}

func (idx SubVolumeIndex) String() string {
	return fmt.Sprintf("%d_%d_%d", idx.I, idx.J, idx.K)
}

// SubVolumeBounds - границы подобъема без округления
type SubVolumeBounds struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
	ZMin float64 `json:"z_min"`
	ZMax float64 `json:"z_max"`
}

const (
	OpGreaterOrEqual = ">="
	OpGreater        = ">"
	OpLessOrEqual    = "<="
)

// AxisInclusion - правило включения границ по одной оси.
// Верхняя граница всегда включена, нижняя - только у первой ячейки.
type AxisInclusion struct {
	LowerInclusive bool `json:"lower_inclusive"`
}

// NewAxisInclusion строит правило для индекса ячейки по оси
func NewAxisInclusion(idx int) AxisInclusion {
	return AxisInclusion{LowerInclusive: idx == 0}
}

// LowerOp возвращает оператор сравнения для нижней границы
func (a AxisInclusion) LowerOp() string {
	if a.LowerInclusive {
		return OpGreaterOrEqual
	}
	return OpGreater
}

// UpperOp возвращает оператор сравнения для верхней границы
func (a AxisInclusion) UpperOp() string {
	return OpLessOrEqual
}

// Admits проверяет попадание координаты v в отрезок [lo, hi] с учетом правила
func (a AxisInclusion) Admits(v, lo, hi float64) bool {
	if v > hi {
		return false
	}
	if a.LowerInclusive {
		return v >= lo
	}
	return v > lo
}

// BoundaryInclusion - правила включения по трем осям
type BoundaryInclusion struct {
	X AxisInclusion `json:"x"`
	Y AxisInclusion `json:"y"`
	Z AxisInclusion `json:"z"`
}

// SubVolume - одна ячейка разбиения вместе с границами и правилами включения
type SubVolume struct {
	Index     SubVolumeIndex    `json:"index"`
	Bounds    SubVolumeBounds   `json:"bounds"`
	Inclusion BoundaryInclusion `json:"inclusion"`
}

// Contains проверяет, принадлежит ли точка подобъему
func (s SubVolume) Contains(x, y, z float64) bool {
	b := s.Bounds
	return s.Inclusion.X.Admits(x, b.XMin, b.XMax) &&
		s.Inclusion.Y.Admits(y, b.YMin, b.YMax) &&
		s.Inclusion.Z.Admits(z, b.ZMin, b.ZMax)
}

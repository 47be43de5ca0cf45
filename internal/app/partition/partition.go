// Package partition разбивает куб симуляции на регулярную сетку подобъемов.
package partition

import (
	"halocat-queries/internal/app/ds"
)

// Enumerate возвращает все N^3 подобъема в порядке (i, j, k): i меняется медленнее всех, k - быстрее.
// Внутренние грани принадлежат только ячейке сверху, поэтому каждая точка куба попадает ровно в один подобъем.
func Enumerate(box ds.BoxSpec) ([]ds.SubVolume, error) {
	if err := box.Validate(); err != nil {
		return nil, err
	}

	n := box.Subdivisions
	step := box.SideLength / float64(n)

	subvols := make([]ds.SubVolume, 0, box.Cells())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				subvols = append(subvols, ds.SubVolume{
					Index: ds.SubVolumeIndex{I: i, J: j, K: k},
					Bounds: ds.SubVolumeBounds{
						XMin: step * float64(i),
						XMax: upper(box, step, i),
						YMin: step * float64(j),
						YMax: upper(box, step, j),
						ZMin: step * float64(k),
						ZMax: upper(box, step, k),
					},
					Inclusion: ds.BoundaryInclusion{
						X: ds.NewAxisInclusion(i),
						Y: ds.NewAxisInclusion(j),
						Z: ds.NewAxisInclusion(k),
					},
				})
			}
		}
	}

	return subvols, nil
}

// upper возвращает верхнюю границу ячейки idx. У последней ячейки это ровно SideLength:
// step*N может оказаться меньше L, и грань куба не попала бы ни в один подобъем.
func upper(box ds.BoxSpec, step float64, idx int) float64 {
	if idx+1 == box.Subdivisions {
		return box.SideLength
	}
	return step * float64(idx+1)
}

// Locate возвращает подобъем, содержащий точку, или false если точка вне куба
func Locate(subvols []ds.SubVolume, x, y, z float64) (ds.SubVolume, bool) {
	for _, sv := range subvols {
		if sv.Contains(x, y, z) {
			return sv, true
		}
	}
	return ds.SubVolume{}, false
}

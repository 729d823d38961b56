package warshall

import (
	"github.com/dkravets/graphtk/core"
)

// Distances reduces a final lightest-path matrix to its metric profile.
// Every metric carries a defined flag: an eccentricity is defined only
// when all other nodes are reachable, and radius/diameter only when at
// least one eccentricity is defined.
type Distances[K comparable, W core.Weight] struct {
	// Keys[v] is the interned key of node v.
	Keys []K

	// Ecc[v] is the eccentricity of v, meaningful iff EccOK[v].
	Ecc   []W
	EccOK []bool

	Radius   W
	RadiusOK bool

	Diameter   W
	DiameterOK bool
}

// ComputeDistances derives eccentricity, radius and diameter from the
// final matrix of r. Complexity: O(V²).
func ComputeDistances[K comparable, W core.Weight](r *LightestResult[K, W]) *Distances[K, W] {
	n := len(r.Keys)
	final := r.Final()
	d := &Distances[K, W]{
		Keys:  r.Keys,
		Ecc:   make([]W, n),
		EccOK: make([]bool, n),
	}

	for i := 0; i < n; i++ {
		var ecc W
		defined := true
		first := true
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			cell := final[i][j]
			if cell == nil {
				defined = false

				break
			}
			if first || cell.Weight > ecc {
				ecc = cell.Weight
				first = false
			}
		}
		d.Ecc[i] = ecc
		d.EccOK[i] = defined
	}

	for i := 0; i < n; i++ {
		if !d.EccOK[i] {
			continue
		}
		if !d.RadiusOK || d.Ecc[i] < d.Radius {
			d.Radius = d.Ecc[i]
			d.RadiusOK = true
		}
		if !d.DiameterOK || d.Ecc[i] > d.Diameter {
			d.Diameter = d.Ecc[i]
			d.DiameterOK = true
		}
	}

	return d
}

// Center lists the keys whose eccentricity attains the radius; empty
// when the radius is undefined.
func (d *Distances[K, W]) Center() []K {
	if !d.RadiusOK {
		return nil
	}
	var out []K
	for i := range d.Keys {
		if d.EccOK[i] && d.Ecc[i] == d.Radius {
			out = append(out, d.Keys[i])
		}
	}

	return out
}

// Periphery lists the keys whose eccentricity attains the diameter;
// empty when the diameter is undefined.
func (d *Distances[K, W]) Periphery() []K {
	if !d.DiameterOK {
		return nil
	}
	var out []K
	for i := range d.Keys {
		if d.EccOK[i] && d.Ecc[i] == d.Diameter {
			out = append(out, d.Keys[i])
		}
	}

	return out
}

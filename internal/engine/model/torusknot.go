package model

import (
	gomath "math"

	"github.com/Faultbox/facade/pkg/math"
)

// TorusKnotOptions describes a (p, q) torus knot tube.
type TorusKnotOptions struct {
	Radius          float32
	Tube            float32
	TubularSegments int
	RadialSegments  int
	P, Q            int
}

// DefaultTorusKnot returns the classic trefoil: a (2, 3) knot with 64x8 segments.
func DefaultTorusKnot() TorusKnotOptions {
	return TorusKnotOptions{
		Radius:          1,
		Tube:            0.4,
		TubularSegments: 64,
		RadialSegments:  8,
		P:               2,
		Q:               3,
	}
}

// normalize fills in defaults for values that would produce no geometry.
func (o TorusKnotOptions) normalize() TorusKnotOptions {
	if o.TubularSegments < 3 {
		o.TubularSegments = 3
	}
	if o.RadialSegments < 3 {
		o.RadialSegments = 3
	}
	if o.P == 0 || o.Q == 0 {
		o.P, o.Q = 2, 3
	}
	return o
}

// TorusKnot builds a tube swept along a (p, q) torus knot.
// The result has (tubular+1)*(radial+1) vertices; seam vertices are duplicated for texture wrap.
func TorusKnot(opts TorusKnotOptions) *Mesh {
	opts = opts.normalize()
	tubular, radial := opts.TubularSegments, opts.RadialSegments
	p, q := float64(opts.P), float64(opts.Q)

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, (tubular+1)*(radial+1)),
		Indices:  make([]uint32, 0, tubular*radial*6),
	}

	for i := 0; i <= tubular; i++ {
		u := float64(i) / float64(tubular) * p * gomath.Pi * 2

		// Two nearby curve points give the tangent; their sum seeds the frame
		p1 := knotPoint(u, p, q, opts.Radius)
		p2 := knotPoint(u+0.01, p, q, opts.Radius)

		t := p2.Sub(p1)
		n := p2.Add(p1)
		b := t.Cross(n)
		n = b.Cross(t)
		b = b.Normalize()
		n = n.Normalize()

		for j := 0; j <= radial; j++ {
			v := float64(j) / float64(radial) * gomath.Pi * 2
			cx := -opts.Tube * float32(gomath.Cos(v))
			cy := opts.Tube * float32(gomath.Sin(v))

			pos := p1.Add(n.Scale(cx)).Add(b.Scale(cy))
			normal := pos.Sub(p1).Normalize()

			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: pos.Array(),
				Normal:   normal.Array(),
				TexCoord: [2]float32{float32(i) / float32(tubular), float32(j) / float32(radial)},
			})
		}
	}

	stride := uint32(radial + 1)
	for j := 1; j <= tubular; j++ {
		for i := 1; i <= radial; i++ {
			a := stride*uint32(j-1) + uint32(i-1)
			b := stride*uint32(j) + uint32(i-1)
			c := stride*uint32(j) + uint32(i)
			d := stride*uint32(j-1) + uint32(i)

			mesh.Indices = append(mesh.Indices, a, b, d, b, c, d)
		}
	}

	return mesh
}

// knotPoint returns the knot curve position at parameter u.
func knotPoint(u, p, q float64, radius float32) math.Vec3 {
	cu := gomath.Cos(u)
	su := gomath.Sin(u)
	quOverP := q / p * u
	cs := gomath.Cos(quOverP)
	r := float64(radius)

	return math.Vec3{
		X: float32(r * (2 + cs) * 0.5 * cu),
		Y: float32(r * (2 + cs) * su * 0.5),
		Z: float32(r * gomath.Sin(quOverP) * 0.5),
	}
}

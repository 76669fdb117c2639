package model

// Plane builds a flat quad in the XZ plane centred on the origin, facing +Y.
// Texture coordinates repeat once per unit of tile so a small texture can cover a large floor.
func Plane(width, depth, tile float32) *Mesh {
	hw, hd := width/2, depth/2
	if tile <= 0 {
		tile = max(width, depth)
	}
	us, vs := width/tile, depth/tile

	up := [3]float32{0, 1, 0}
	return &Mesh{
		Vertices: []Vertex{
			{Position: [3]float32{-hw, 0, -hd}, Normal: up, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{-hw, 0, hd}, Normal: up, TexCoord: [2]float32{0, vs}},
			{Position: [3]float32{hw, 0, hd}, Normal: up, TexCoord: [2]float32{us, vs}},
			{Position: [3]float32{hw, 0, -hd}, Normal: up, TexCoord: [2]float32{us, 0}},
		},
		// Counter-clockwise when seen from above
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

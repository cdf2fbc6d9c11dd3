package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	_ kdtree.Interface  = kdVertices{}
	_ kdtree.Comparable = kdVertex{}
)

// VertexIndex answers nearest vertex queries over a fixed vertex set.
type VertexIndex struct {
	tree kdtree.Tree
	n    int
}

// NewVertexIndex builds a k-d tree over vertices. The slice is not retained.
func NewVertexIndex(vertices []r3.Vec) *VertexIndex {
	kd := make(kdVertices, len(vertices))
	for i, v := range vertices {
		kd[i] = kdVertex{V: v, idx: i}
	}
	vi := &VertexIndex{n: len(vertices)}
	if len(kd) > 0 {
		vi.tree = *kdtree.New(kd, false)
	}
	return vi
}

// Nearest returns the index of the vertex closest to p and its distance.
// It returns -1 and +Inf for an empty index.
func (vi *VertexIndex) Nearest(p r3.Vec) (int, float64) {
	if vi.n == 0 {
		return -1, math.Inf(1)
	}
	got, d2 := vi.tree.Nearest(kdVertex{V: p, idx: -1})
	return got.(kdVertex).idx, math.Sqrt(d2)
}

// Coincident returns the number of vertices that lie within tol of
// another indexed vertex. vertices must be the slice the index was built from.
// A well formed closed spring has none.
func (vi *VertexIndex) Coincident(vertices []r3.Vec, tol float64) int {
	if vi.n == 0 {
		return 0
	}
	n := 0
	for i, v := range vertices {
		keep := kdtree.NewNKeeper(2)
		vi.tree.NearestSet(keep, kdVertex{V: v, idx: i})
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue
			}
			if c.Comparable.(kdVertex).idx != i && c.Dist <= tol*tol {
				n++
				break
			}
		}
	}
	return n
}

type kdVertex struct {
	V   r3.Vec
	idx int
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
func (a kdVertex) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return kdComp(a, b.(kdVertex), int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdVertex) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the receiver and
// the parameter.
func (a kdVertex) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.V, b.(kdVertex).V))
}

// c = a.dim - b.dim
func kdComp(a, b kdVertex, dim int) (c float64) {
	switch dim {
	case 0:
		c = a.V.X - b.V.X
	case 1:
		c = a.V.Y - b.V.Y
	case 2:
		c = a.V.Z - b.V.Z
	}
	return c
}

type kdVertices []kdVertex

func (k kdVertices) Index(i int) kdtree.Comparable { return k[i] }

// Len returns the length of the list.
func (k kdVertices) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdVertices) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: int(d), vertices: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (k kdVertices) Slice(start, end int) kdtree.Interface {
	return k[start:end]
}

type kdPlane struct {
	dim      int
	vertices kdVertices
}

func (p kdPlane) Less(i, j int) bool {
	return kdComp(p.vertices[i], p.vertices[j], p.dim) < 0
}
func (p kdPlane) Swap(i, j int) {
	p.vertices[i], p.vertices[j] = p.vertices[j], p.vertices[i]
}
func (p kdPlane) Len() int {
	return len(p.vertices)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.vertices = p.vertices[start:end]
	return p
}

package geometry

import (
	"math/rand"
	"sort"
	"time"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/log"
)

var logger = log.New("bvh")

// BVHNode is either an internal node owning exactly two children or a leaf
// owning exactly one primitive. BoundingBox of an internal node is the union
// of its children's boxes.
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Item        *Primitive // Leaf payload, nil for internal nodes
}

// IsLeaf reports whether the node holds a primitive
func (n *BVHNode) IsLeaf() bool {
	return n.Item != nil
}

// BVH is a bounding volume hierarchy over primitives. It is immutable after
// construction and safe for concurrent queries.
type BVH struct {
	Root *BVHNode
}

// NewBVH builds a BVH over items. The build sorts items in place. Split axes
// are drawn from random so construction is reproducible for a given seed.
// It panics if items is empty.
func NewBVH(items []Primitive, random *rand.Rand) *BVH {
	if len(items) == 0 {
		panic("geometry: cannot build BVH from an empty primitive list")
	}

	start := time.Now()
	bvh := &BVH{Root: buildBVH(items, random)}

	if log.IsEnabled(log.Debug) {
		stats := bvh.Stats()
		logger.Debugf("built BVH over %d primitives in %v: nodes=%d leaves=%d maxDepth=%d avgDepth=%.2f",
			len(items), time.Since(start), stats.TotalNodes, stats.LeafNodes, stats.MaxDepth, stats.AvgDepth)
	}

	return bvh
}

// buildBVH recursively splits items at the median along a randomly chosen axis
func buildBVH(items []Primitive, random *rand.Rand) *BVHNode {
	if len(items) == 0 {
		panic("geometry: cannot build BVH from an empty primitive list")
	}

	if len(items) == 1 {
		item := items[0]
		return &BVHNode{
			BoundingBox: item.BoundingBox(),
			Item:        &item,
		}
	}

	// A random axis keeps clustered inputs (e.g. coplanar centers) from always
	// splitting along the same degenerate direction
	axis := random.Intn(3)
	sortItemsByAxis(items, axis)

	mid := len(items) / 2
	left := buildBVH(items[:mid], random)
	right := buildBVH(items[mid:], random)

	return &BVHNode{
		BoundingBox: core.SurroundingBox(left.BoundingBox, right.BoundingBox),
		Left:        left,
		Right:       right,
	}
}

// sortItemsByAxis stable-sorts items by the minimum corner of their bounding box
func sortItemsByAxis(items []Primitive, axis int) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].BoundingBox().Min.Axis(axis) < items[j].BoundingBox().Min.Axis(axis)
	})
}

// Hit returns the closest intersection with positive distance. The node boxes
// are tested against [tMin, tMax]; leaves accept any positive distance.
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	return bvh.hitNode(bvh.Root, ray, tMin, tMax)
}

func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	if node.Item != nil {
		dist := node.Item.Intersect(ray)
		if dist > 0 {
			return Intersection{Primitive: *node.Item, Dist: dist}, true
		}
		return Intersection{}, false
	}

	if node.Left == nil || node.Right == nil {
		panic("geometry: BVH node has neither children nor item")
	}

	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return Intersection{}, false
	}

	// Both subtrees are searched with the same range; the closer result wins
	left, hitLeft := bvh.hitNode(node.Left, ray, tMin, tMax)
	right, hitRight := bvh.hitNode(node.Right, ray, tMin, tMax)

	switch {
	case hitLeft && hitRight:
		if left.Dist < right.Dist {
			return left, true
		}
		return right, true
	case hitLeft:
		return left, true
	case hitRight:
		return right, true
	}
	return Intersection{}, false
}

// BoundingBox returns the box enclosing every primitive in the hierarchy
func (bvh *BVH) BoundingBox() core.AABB {
	return bvh.Root.BoundingBox
}

// BVHStats describes the shape of a built hierarchy
type BVHStats struct {
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
	AvgDepth   float64 // Average leaf depth
}

// Stats walks the tree and collects structural statistics
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{}
	depthSum := 0
	bvh.collectStats(bvh.Root, 0, &stats, &depthSum)

	if stats.LeafNodes > 0 {
		stats.AvgDepth = float64(depthSum) / float64(stats.LeafNodes)
	}
	return stats
}

func (bvh *BVH) collectStats(node *BVHNode, depth int, stats *BVHStats, depthSum *int) {
	stats.TotalNodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	if node.IsLeaf() {
		stats.LeafNodes++
		*depthSum += depth
		return
	}

	bvh.collectStats(node.Left, depth+1, stats, depthSum)
	bvh.collectStats(node.Right, depth+1, stats, depthSum)
}

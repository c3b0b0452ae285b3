package index

import "housing-analyzer/models"

// node holds one listing and owns at most two children. Every listing in the
// left subtree has a strictly lower price; equal prices go right, so the tree
// behaves as a multiset keyed by price.
type node struct {
	listing *models.Listing
	left    *node
	right   *node
}

// PriceIndex is an unbalanced binary search tree over listing price. It is
// built once from the full collection and then only queried; there is no
// deletion or rebalancing, and insertion order decides the tree shape. Range
// queries prune subtrees that provably fall outside the bounds, so lookups
// are logarithmic on a reasonably balanced tree and degrade to linear when
// listings arrive in sorted price order.
type PriceIndex struct {
	root *node
	size int
}

// New returns an empty PriceIndex.
func New() *PriceIndex {
	return &PriceIndex{}
}

// Insert adds one listing, preserving the order invariant. It never fails.
func (idx *PriceIndex) Insert(l *models.Listing) {
	idx.root = insert(idx.root, l)
	idx.size++
}

func insert(n *node, l *models.Listing) *node {
	if n == nil {
		return &node{listing: l}
	}
	if l.Price < n.listing.Price {
		n.left = insert(n.left, l)
	} else {
		n.right = insert(n.right, l)
	}
	return n
}

// Build discards any existing tree and inserts every listing in slice order.
func (idx *PriceIndex) Build(listings []*models.Listing) {
	idx.root = nil
	idx.size = 0
	for _, l := range listings {
		idx.Insert(l)
	}
}

// RangeQuery returns every listing with price in [minPrice, maxPrice],
// ascending by price. Inverted bounds or an empty tree yield an empty result.
func (idx *PriceIndex) RangeQuery(minPrice, maxPrice float64) []*models.Listing {
	var results []*models.Listing
	rangeScan(idx.root, minPrice, maxPrice, &results)
	return results
}

// rangeScan is an in-order traversal pruned by the bounds: the left subtree
// can only contain matches when minPrice < node price, the right subtree only
// when maxPrice > node price. The strict inequalities must mirror the insert
// split (< left, >= right) or equal-priced listings would be skipped.
func rangeScan(n *node, minPrice, maxPrice float64, results *[]*models.Listing) {
	if n == nil {
		return
	}

	price := n.listing.Price

	if minPrice < price {
		rangeScan(n.left, minPrice, maxPrice, results)
	}
	if minPrice <= price && price <= maxPrice {
		*results = append(*results, n.listing)
	}
	if maxPrice > price {
		rangeScan(n.right, minPrice, maxPrice, results)
	}
}

// Size returns the number of indexed listings.
func (idx *PriceIndex) Size() int {
	return idx.size
}

// Height returns the depth of the deepest node, 0 for an empty tree.
func (idx *PriceIndex) Height() int {
	return height(idx.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	lh, rh := height(n.left), height(n.right)
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}

package renderer

import "github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/terrain"

// Node is the presentation state of one terrain tile.
type Node struct {
	Tile      terrain.Tile
	Transform terrain.NodeTransform
}

// TerrainNodes is the side table from tile IDs to presentation nodes. All
// nodes share one transform and render style.
type TerrainNodes struct {
	nodes     map[terrain.TileID]*Node
	order     []terrain.TileID
	transform terrain.NodeTransform
	style     terrain.RenderStyle
}

// NewTerrainNodes creates an empty side table drawn with style.
func NewTerrainNodes(style terrain.RenderStyle) *TerrainNodes {
	return &TerrainNodes{
		nodes:     make(map[terrain.TileID]*Node),
		transform: terrain.NodeTransform{Scale: [3]float32{1, 1, 1}},
		style:     style,
	}
}

// Attach creates one node per tile, dropping nodes for tiles no longer
// present.
func (n *TerrainNodes) Attach(tiles []terrain.Tile) {
	n.nodes = make(map[terrain.TileID]*Node, len(tiles))
	n.order = n.order[:0]
	for _, t := range tiles {
		n.nodes[t.ID] = &Node{Tile: t, Transform: n.transform}
		n.order = append(n.order, t.ID)
	}
}

// SetTransform applies the height scale and offset transform to every node.
func (n *TerrainNodes) SetTransform(xf terrain.NodeTransform) {
	n.transform = xf
	for _, node := range n.nodes {
		node.Transform = xf
	}
}

// Transform returns the shared node transform.
func (n *TerrainNodes) Transform() terrain.NodeTransform {
	return n.transform
}

// SetStyle sets the render style used for every node.
func (n *TerrainNodes) SetStyle(style terrain.RenderStyle) {
	n.style = style
}

// Style returns the shared render style.
func (n *TerrainNodes) Style() terrain.RenderStyle {
	return n.style
}

// Node returns the node for a tile.
func (n *TerrainNodes) Node(id terrain.TileID) (*Node, bool) {
	node, ok := n.nodes[id]
	return node, ok
}

// Each calls fn for every node in tile order.
func (n *TerrainNodes) Each(fn func(*Node)) {
	for _, id := range n.order {
		fn(n.nodes[id])
	}
}

// Len returns the number of nodes.
func (n *TerrainNodes) Len() int {
	return len(n.nodes)
}

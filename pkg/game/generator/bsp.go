package generator

import (
	"delve/pkg/engine/bsp"
	"delve/pkg/engine/rng"
	"delve/pkg/engine/world"
	"delve/pkg/game/actors"
)

// BSPBuilder generates levels using Binary Space Partitioning: one room per
// leaf, each room chained to the previous one by an L corridor.
type BSPBuilder struct {
	Carver
}

// NewBSPBuilder creates a BSP builder
func NewBSPBuilder(cfg Config, factory actors.Factory) *BSPBuilder {
	return &BSPBuilder{Carver{Config: cfg, Factory: factory}}
}

// Name returns the name of this builder
func (b *BSPBuilder) Name() string {
	return "BSP Tree"
}

// buildContext is the placement state threaded through the traversal in
// visit order.
type buildContext struct {
	builder *BSPBuilder
	m       *world.Map
	pop     Population
	r       rng.Random

	roomNum      int
	lastX, lastY int
}

// Build carves the whole map. Every room ends up connected to the first.
// A nil r uses a time-seeded generator.
func (b *BSPBuilder) Build(m *world.Map, pop Population, r rng.Random) {
	if r == nil {
		r = rng.NewTimeSeeded()
	}
	root := bsp.New(0, 0, m.Width(), m.Height())
	root.SplitRecursive(r, b.Config.BSPDepth, b.Config.RoomMinSize, b.Config.MaxHVRatio)

	ctx := &buildContext{builder: b, m: m, pop: pop, r: r}
	bsp.TraverseInvertedLevelOrder(root, visitNode, ctx)

	if err := validate(m, pop); err != nil {
		panic("Generated invalid map: " + err.Error())
	}
}

// visitNode places a room in every leaf and joins it to the previous room.
func visitNode(node *bsp.Node, ctx *buildContext) bsp.Action {
	if !node.IsLeaf() {
		return bsp.Continue
	}

	r := ctx.r
	minSize := ctx.builder.Config.RoomMinSize
	w := r.Number(minSize, node.W)
	h := r.Number(minSize, node.H)
	x := r.Number(node.X, node.X+node.W-w)
	y := r.Number(node.Y, node.Y+node.H-h)

	ctx.builder.CreateRoom(ctx.m, ctx.pop, r, ctx.roomNum == 0, x, y, x+w-1, y+h-1)

	centerX, centerY := x+w/2, y+h/2
	if ctx.roomNum != 0 {
		// build a corridor from previous room
		DigCorridor(ctx.m, ctx.lastX, ctx.lastY, centerX, centerY)
	}
	ctx.lastX, ctx.lastY = centerX, centerY
	ctx.roomNum++

	return bsp.Continue
}

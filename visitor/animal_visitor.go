package visitor

// LionVisitor handles lions.
type LionVisitor interface {
	VisitLion(lion *Lion)
}

// TigerVisitor handles tigers.
type TigerVisitor interface {
	VisitTiger(tiger *Tiger)
}

// AnimalVisitor interface extends all animal visitor interfaces.
// A new kind of Animal needs its own XxxVisitor here, and every visitor has to implement it.
type AnimalVisitor interface {
	LionVisitor
	TigerVisitor
}

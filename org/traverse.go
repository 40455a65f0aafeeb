package org

// traverse.go implements the depth-first traversal/event engine (spec
// §4.5), grounded on orgize's `export::{Event, Container,
// TraversalContext}` usage throughout
// `original_source/src/export/html.rs` (`Event::Enter(Container::...)`,
// `Event::Timestamp(...)`, `ctx.skip()`). Go has no enum-with-payload sum
// type, so Container is a plain *SyntaxNode/*SyntaxToken pair tagged by
// SyntaxKind instead of a Rust-style closed variant; callers switch on
// Kind() the way html.rs matches on Container variants.

// EventKind distinguishes entering a container, leaving one, or a single
// token-level event.
type EventKind int

const (
	EventEnter EventKind = iota
	EventLeave
	EventToken
)

// Event is one step of the depth-first traversal. For EventEnter/
// EventLeave, Node identifies the container. For EventToken, exactly one
// of the two fields is set: Token for a bare text-bearing leaf (TEXT,
// FN_LABEL), Node for an atomic object or element (timestamp, rule,
// entity, ...) that the engine reports whole instead of descending into
// (spec §4.5's "Token-level events for text-bearing leaves").
type Event struct {
	Kind  EventKind
	Node  *SyntaxNode
	Token *SyntaxToken
}

// atomicEventKinds are the composite kinds reported as a single
// token-level event over the whole node, never as an Enter/Leave pair —
// the node kinds of the second bullet of spec §4.5 (LineBreak, Rule,
// Snippet, Timestamp, LatexFragment, LatexEnvironment, Entity, Cookie,
// Macros, InlineCall, InlineSrc, Clock; its Text and FnLabel are leaf
// tokens, listed in tokenEventKinds below), mirroring orgize's flat
// Event::Timestamp(...)/Event::Rule(...)/Event::Entity(...) variants in
// html.rs. Visitors read their content from the node's Text() or its
// child tokens; the engine does not descend.
var atomicEventKinds = map[SyntaxKind]bool{
	LINE_BREAK:        true,
	RULE:              true,
	SNIPPET:           true,
	TIMESTAMP:         true,
	TIMESTAMP_RANGE:   true,
	LATEX_FRAGMENT:    true,
	LATEX_ENVIRONMENT: true,
	ENTITY:            true,
	STATISTIC_COOKIE:  true,
	MACRO:             true,
	INLINE_CALL:       true,
	INLINE_SRC:        true,
	CLOCK:             true,
}

// tokenEventKinds are the bare leaf kinds that get their own EventToken.
// Everything else leaf-level is structural trivia (markers, whitespace)
// that exporters reconstruct from the enclosing container.
var tokenEventKinds = map[SyntaxKind]bool{
	TEXT:     true,
	FN_LABEL: true,
}

// TraversalContext is the mutable control a visitor holds during a
// single Enter callback; setting Skip or Stop changes the engine's next
// move (spec §4.5's "skip()"/"stop()").
type TraversalContext struct {
	skip bool
	stop bool
}

// Skip marks the current container as already handled: the engine will
// not descend into its children and will emit no matching Leave event.
func (c *TraversalContext) Skip() { c.skip = true }

// Stop terminates the traversal entirely after the current callback
// returns.
func (c *TraversalContext) Stop() { c.stop = true }

// Visitor receives every traversal event. Implementations may hold
// arbitrary state; the engine is single-threaded, synchronous, and
// deterministic (spec §4.5).
type Visitor interface {
	Event(e Event, ctx *TraversalContext)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(e Event, ctx *TraversalContext)

func (f VisitorFunc) Event(e Event, ctx *TraversalContext) { f(e, ctx) }

// Traverse walks root depth-first, pre-order, emitting Enter/Leave events
// for every container node, single Token events for atomic nodes and the
// leaf kinds in tokenEventKinds, in source order (spec §4.5, §5's "event
// traversal is pre-order DFS, children in source order").
func Traverse(root *SyntaxNode, v Visitor) {
	ctx := &TraversalContext{}
	walkTraverse(root, v, ctx)
}

func walkTraverse(n *SyntaxNode, v Visitor, ctx *TraversalContext) bool {
	if atomicEventKinds[n.Kind()] {
		v.Event(Event{Kind: EventToken, Node: n}, ctx)
		return !ctx.stop
	}
	ctx.skip = false
	v.Event(Event{Kind: EventEnter, Node: n}, ctx)
	if ctx.stop {
		return false
	}
	if !ctx.skip {
		for _, c := range n.ChildrenWithTokens() {
			if c.Node != nil {
				if !walkTraverse(c.Node, v, ctx) {
					return false
				}
				continue
			}
			if c.Token != nil && tokenEventKinds[c.Token.Kind()] {
				v.Event(Event{Kind: EventToken, Token: c.Token}, ctx)
				if ctx.stop {
					return false
				}
			}
		}
		v.Event(Event{Kind: EventLeave, Node: n}, ctx)
		if ctx.stop {
			return false
		}
	}
	return true
}

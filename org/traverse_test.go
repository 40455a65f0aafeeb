package org

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	kind EventKind
	k    SyntaxKind
}

func recordTraverse(root *SyntaxNode, onEnter func(k SyntaxKind, ctx *TraversalContext)) []recordedEvent {
	var events []recordedEvent
	Traverse(root, VisitorFunc(func(e Event, ctx *TraversalContext) {
		switch e.Kind {
		case EventEnter:
			events = append(events, recordedEvent{kind: e.Kind, k: e.Node.Kind()})
			if onEnter != nil {
				onEnter(e.Node.Kind(), ctx)
			}
		case EventLeave:
			events = append(events, recordedEvent{kind: e.Kind, k: e.Node.Kind()})
		case EventToken:
			k := ERROR
			if e.Token != nil {
				k = e.Token.Kind()
			} else if e.Node != nil {
				k = e.Node.Kind()
			}
			events = append(events, recordedEvent{kind: e.Kind, k: k})
		}
	}))
	return events
}

func TestTraverseEventOrder(t *testing.T) {
	doc := Parse("* h\nbody\n")
	events := recordTraverse(doc.Root(), nil)
	require.NotEmpty(t, events)
	require.Equal(t, EventEnter, events[0].kind)
	require.Equal(t, DOCUMENT, events[0].k)
	require.Equal(t, EventLeave, events[len(events)-1].kind)
	require.Equal(t, DOCUMENT, events[len(events)-1].k)

	var sawHeadlineEnter, sawSectionEnter, sawHeadlineLeave bool
	var headlineEnterIdx, sectionEnterIdx, headlineLeaveIdx int
	for i, e := range events {
		if e.kind == EventEnter && e.k == HEADLINE {
			sawHeadlineEnter, headlineEnterIdx = true, i
		}
		if e.kind == EventEnter && e.k == SECTION {
			sawSectionEnter, sectionEnterIdx = true, i
		}
		if e.kind == EventLeave && e.k == HEADLINE {
			sawHeadlineLeave, headlineLeaveIdx = true, i
		}
	}
	require.True(t, sawHeadlineEnter)
	require.True(t, sawSectionEnter)
	require.True(t, sawHeadlineLeave)
	require.Less(t, headlineEnterIdx, sectionEnterIdx)
	require.Less(t, sectionEnterIdx, headlineLeaveIdx)

	var sawBodyToken bool
	for _, e := range events {
		if e.kind == EventToken && e.k == TEXT {
			sawBodyToken = true
		}
	}
	require.True(t, sawBodyToken)
}

func TestTraverseAtomicKindsEmitSingleTokenEvent(t *testing.T) {
	doc := Parse("* h\n<2024-01-02 Tue> \\alpha [1/2]\n-----\nCLOCK: [2024-01-02 Tue 10:00]\n")
	events := recordTraverse(doc.Root(), nil)

	counts := map[SyntaxKind]int{}
	for _, e := range events {
		if e.kind == EventEnter || e.kind == EventLeave {
			require.False(t, atomicEventKinds[e.k],
				"%s must never get an Enter/Leave pair", e.k)
		}
		if e.kind == EventToken {
			counts[e.k]++
		}
	}
	for _, k := range []SyntaxKind{TIMESTAMP, ENTITY, STATISTIC_COOKIE, RULE, CLOCK} {
		require.Equal(t, 1, counts[k], "%s must be reported as exactly one token event", k)
	}
}

func TestTraverseSkipSuppressesChildrenAndLeave(t *testing.T) {
	doc := Parse("* h\nbody\n")
	events := recordTraverse(doc.Root(), func(k SyntaxKind, ctx *TraversalContext) {
		if k == HEADLINE {
			ctx.Skip()
		}
	})
	for _, e := range events {
		require.NotEqual(t, SECTION, e.k, "skip must suppress descent into children")
		if e.k == HEADLINE {
			require.Equal(t, EventEnter, e.kind, "skip must suppress the matching Leave event")
		}
	}
}

func TestTraverseStopHaltsImmediately(t *testing.T) {
	doc := Parse("* one\n** two\n* three\n")
	var stopped bool
	events := recordTraverse(doc.Root(), func(k SyntaxKind, ctx *TraversalContext) {
		if k == HEADLINE && !stopped {
			stopped = true
			ctx.Stop()
		}
	})
	require.Equal(t, EventEnter, events[len(events)-1].kind)
	require.Equal(t, HEADLINE, events[len(events)-1].k)

	var headlineEnters int
	for _, e := range events {
		if e.kind == EventEnter && e.k == HEADLINE {
			headlineEnters++
		}
	}
	require.Equal(t, 1, headlineEnters, "stop must prevent the second top-level headline from being visited")
}

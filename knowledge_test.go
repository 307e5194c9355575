package mkbsc

import "testing"

func TestStructuralEquality(t *testing.T) {
	// Separately allocated states with the same labels compare equal.
	if !AtomicState("0").Equal(AtomicState("0")) {
		t.Error("equal atomic states compare unequal")
	}
	if AtomicState("0").Equal(AtomicState("1")) {
		t.Error("distinct atomic states compare equal")
	}

	a, b, c := AtomicState("a"), AtomicState("b"), AtomicState("c")

	// Member order must not matter.
	left := CompositeState(NewStateSet(a, b), NewStateSet(c))
	right := CompositeState(NewStateSet(b, a), NewStateSet(c))
	if !left.Equal(right) {
		t.Error("composite states with the same members compare unequal")
	}

	other := CompositeState(NewStateSet(a, c), NewStateSet(c))
	if left.Equal(other) {
		t.Error("composite states with different members compare equal")
	}

	// Equality recurses: nesting the same composites yields equal states.
	nestedLeft := CompositeState(NewStateSet(left), NewStateSet(left, other))
	nestedRight := CompositeState(NewStateSet(right), NewStateSet(other, right))
	if !nestedLeft.Equal(nestedRight) {
		t.Error("nested composite states compare unequal")
	}
}

func TestConsistentBaseRecursion(t *testing.T) {
	a, b, c := AtomicState("a"), AtomicState("b"), AtomicState("c")

	// Atomic: the value is its own base.
	if got := baseLabels(a.ConsistentBase()); !sameLabels(got, "a") {
		t.Errorf("atomic base = %v, want [a]", got)
	}

	// One level: intersection across players.
	k1 := CompositeState(NewStateSet(a, b), NewStateSet(a, c))
	if got := baseLabels(k1.ConsistentBase()); !sameLabels(got, "a") {
		t.Errorf("composite base = %v, want [a]", got)
	}

	// Per-component base is a union over members, before intersecting.
	p0 := k1.KnowledgeOf(0)
	if got := baseLabels(p0.ConsistentBase()); !sameLabels(got, "a", "b") {
		t.Errorf("component base = %v, want [a b]", got)
	}

	// Two levels: members are themselves knowledge states.
	k2 := CompositeState(NewStateSet(k1), NewStateSet(k1))
	if got := baseLabels(k2.ConsistentBase()); !sameLabels(got, "a") {
		t.Errorf("nested base = %v, want [a]", got)
	}

	// Disjoint beliefs produce an empty base.
	empty := CompositeState(NewStateSet(a), NewStateSet(b))
	if got := empty.ConsistentBase(); len(got) != 0 {
		t.Errorf("disjoint base = %v, want empty", got)
	}
}

func TestStateSetOperations(t *testing.T) {
	a, b, c := AtomicState("a"), AtomicState("b"), AtomicState("c")

	ab := NewStateSet(a, b)
	bc := NewStateSet(b, c)

	if got := ab.Union(bc).Len(); got != 3 {
		t.Errorf("union size = %d, want 3", got)
	}
	inter := ab.Intersect(bc)
	if inter.Len() != 1 || !inter.Contains(b) {
		t.Errorf("intersection = %v, want {b}", inter)
	}
	if !ab.Equal(NewStateSet(AtomicState("b"), AtomicState("a"))) {
		t.Error("sets with structurally equal members compare unequal")
	}
	if ab.Equal(bc) {
		t.Error("different sets compare equal")
	}
	if ab.Add(AtomicState("a")) {
		t.Error("adding a structurally present state reported as new")
	}
}

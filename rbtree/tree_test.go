package rbtree

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func keys[K, V any](t *Tree[K, V]) []K {
	var ks []K
	for k := range t.All() {
		ks = append(ks, k)
	}
	return ks
}

func sameKeys(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func buildTree(t *testing.T, ks ...int) *Tree[int, string] {
	t.Helper()
	tree := NewOrdered[int, string]()
	for _, k := range ks {
		if _, ok := tree.Insert(k, strings.Repeat("*", k%5)); !ok {
			t.Fatalf("insert of %d reported a duplicate", k)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("after insert of %d: %v", k, err)
		}
	}
	return tree
}

func TestConfig(t *testing.T) {
	if _, err := New[int, int](Config[int]{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing comparison, got %v", err)
	}
	byLength := func(a, b string) int { return len(a) - len(b) }
	tree, err := New[string, int](Config[string]{Compare: byLength, Capacity: 8})
	if err != nil {
		t.Fatal(err)
	}
	tree.Insert("abc", 1)
	if _, ok := tree.Insert("xyz", 2); ok {
		t.Fatalf("keys of equal length are order-equivalent and must not be inserted twice")
	}
	if tree.Find("123").Value() != 1 || tree.Count("12") != 0 {
		t.Fatalf("lookup must use the configured comparison")
	}
	if tree.MaxSize() != MaxNodes {
		t.Fatalf("unexpected max size %d", tree.MaxSize())
	}
}

func TestInOrderTraversal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	tree := buildTree(t, 5, 3, 8, 1, 4, 7, 9)
	if got := keys(tree); !sameKeys(got, []int{1, 3, 4, 5, 7, 8, 9}) {
		t.Fatalf("in-order traversal = %v", got)
	}
	if tree.Len() != 7 || tree.Min().Key() != 1 || tree.Max().Key() != 9 {
		t.Fatalf("unexpected len/min/max: %d/%d/%d", tree.Len(), tree.Min().Key(), tree.Max().Key())
	}
	it, ok := tree.Insert(4, "dup")
	if ok || it.Key() != 4 || it.Value() != "****" {
		t.Fatalf("duplicate insert must return existing element, got %v, %v", it.Deref(), ok)
	}
	var back []int
	for it := tree.RBegin(); !it.Equal(tree.REnd()); it = it.Next() {
		back = append(back, it.Deref().Key)
	}
	if !sameKeys(back, []int{9, 8, 7, 5, 4, 3, 1}) {
		t.Fatalf("reverse traversal = %v", back)
	}
	if tree.End().Prev().Key() != 9 {
		t.Fatalf("decrementing End must yield the maximum")
	}
}

func TestBounds(t *testing.T) {
	tree := buildTree(t, 10, 20, 30, 40)
	cases := []struct {
		k            int
		lower, upper int // -1 is End
	}{
		{5, 10, 10},
		{10, 10, 20},
		{25, 30, 30},
		{40, 40, -1},
		{45, -1, -1},
	}
	key := func(it Iterator[int, string]) int {
		if it.IsEnd() {
			return -1
		}
		return it.Key()
	}
	for _, tc := range cases {
		lo, hi := tree.EqualRange(tc.k)
		if key(lo) != tc.lower || key(hi) != tc.upper {
			t.Fatalf("EqualRange(%d) = [%d, %d), want [%d, %d)", tc.k, key(lo), key(hi), tc.lower, tc.upper)
		}
	}
	empty := NewOrdered[int, int]()
	if !empty.Find(1).IsEnd() || !empty.LowerBound(1).IsEnd() || !empty.Begin().Equal(empty.End()) {
		t.Fatalf("lookups on an empty tree must return End")
	}
	if empty.EraseKey(1) != 0 {
		t.Fatalf("erasing an absent key must report 0")
	}
}

func TestEraseLeafAndInner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	tree := buildTree(t, 50, 30, 70, 20, 40, 60, 80, 35)
	// 30 has two children: its slot takes the payload of 35
	pos := tree.Find(30)
	next := tree.Erase(pos)
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if next.Key() != 35 || !next.Equal(pos) {
		t.Fatalf("erase of inner node should return its old slot holding the successor, got %d", next.Key())
	}
	if pos.Key() != 35 {
		t.Fatalf("position to erased key should show the successor's payload, shows %d", pos.Key())
	}
	next = tree.Erase(tree.Find(80))
	if !next.IsEnd() {
		t.Fatalf("erasing the maximum should return End")
	}
	if tree.EraseKey(20) != 1 || tree.EraseKey(20) != 0 {
		t.Fatalf("EraseKey should remove a present key exactly once")
	}
	if got := keys(tree); !sameKeys(got, []int{35, 40, 50, 60, 70}) {
		t.Fatalf("after erasures: %v", got)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("erasing End must panic")
		}
	}()
	tree.Erase(tree.End())
}

func TestEraseRange(t *testing.T) {
	tree := buildTree(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	it := tree.EraseRange(tree.Find(3), tree.Find(8))
	if it.Key() != 8 {
		t.Fatalf("erase range should return the element after the range, got %d", it.Key())
	}
	if got := keys(tree); !sameKeys(got, []int{1, 2, 8, 9, 10}) {
		t.Fatalf("after erase range: %v", got)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	tree.EraseRange(tree.Begin(), tree.End())
	if !tree.Empty() || tree.Check() != nil {
		t.Fatalf("erasing everything should leave a valid empty tree")
	}
	tree.Insert(1, "")
	if tree.Len() != 1 {
		t.Fatalf("cleared tree should be reusable")
	}
}

func TestInsertHint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	tree := NewOrdered[int, int]()
	hint := tree.End()
	for i := 0; i < 100; i++ { // ascending input, hint at End
		hint = tree.InsertHint(tree.End(), i, i)
		if hint.Key() != i {
			t.Fatalf("hinted insert returned %d, want %d", hint.Key(), i)
		}
	}
	for i := -1; i > -50; i-- { // descending input, hint at Begin
		tree.InsertHint(tree.Begin(), i, i)
	}
	// gap before and after an inner hint
	tree.EraseKey(50)
	tree.EraseKey(51)
	tree.InsertHint(tree.Find(52), 51, 51)
	tree.InsertHint(tree.Find(49), 50, 50)
	// wrong hints
	tree.EraseKey(10)
	tree.EraseKey(90)
	tree.InsertHint(tree.Find(70), 10, 10)
	tree.InsertHint(tree.Find(20), 90, 90)
	tree.InsertHint(tree.Begin(), 200, 200)
	if it := tree.InsertHint(tree.Find(3), 60, -1); it.Key() != 60 || it.Value() != 60 {
		t.Fatalf("hinted insert of existing key must return it unchanged")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 150 {
		t.Fatalf("expected 150 elements, have %d", tree.Len())
	}
	prev := -100
	for k, v := range tree.All() {
		if k <= prev || k != v {
			t.Fatalf("hinted inserts broke the order at %d", k)
		}
		prev = k
	}
}

func TestCloneAndSwap(t *testing.T) {
	a := buildTree(t, 1, 2, 3)
	b := a.Clone()
	b.Insert(4, "")
	b.Find(1).SetValue("changed")
	if a.Len() != 3 || a.Find(1).Value() != "*" {
		t.Fatalf("clone must not share nodes with the original")
	}
	pos := a.Find(2)
	a.Swap(b)
	if a.Len() != 4 || b.Len() != 3 {
		t.Fatalf("swap did not exchange contents")
	}
	if !pos.Equal(b.Find(2)) || pos.Key() != 2 {
		t.Fatalf("positions must follow their elements into the other tree")
	}
	*a.Find(3).ValuePtr() = "ptr"
	if a.Find(3).Value() != "ptr" {
		t.Fatalf("value pointer should address the node's value")
	}
	var desc []int
	for k := range a.Backward() {
		desc = append(desc, k)
	}
	if !sameKeys(desc, []int{4, 3, 2, 1}) {
		t.Fatalf("backward sequence = %v", desc)
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := buildTree(t, 1, 2, 3, 4, 5)
	root := tree.a.root
	tree.a.nodes[root].color = red
	if err := tree.Check(); !errors.Is(err, ErrBrokenInvariant) {
		t.Fatalf("expected red root to be detected, got %v", err)
	}
	tree.a.nodes[root].color = black
	tree.a.nodes[tree.a.min].key = 100
	if err := tree.Check(); !errors.Is(err, ErrBrokenInvariant) {
		t.Fatalf("expected key disorder to be detected, got %v", err)
	}
	tree = buildTree(t, 1, 2, 3)
	tree.a.nodes[tree.a.nodes[tree.a.root].left].color = black
	if err := tree.Check(); !errors.Is(err, ErrBrokenInvariant) {
		t.Fatalf("expected unequal black heights to be detected, got %v", err)
	}
}

func TestDumps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	tree := buildTree(t, 2, 1, 3)
	var dot bytes.Buffer
	if err := tree.ToDot(&dot); err != nil {
		t.Fatal(err)
	}
	out := dot.String()
	if !strings.HasPrefix(out, "strict digraph {") || strings.Count(out, "->") != 6 {
		t.Fatalf("unexpected DOT output:\n%s", out)
	}
	if !strings.Contains(out, "label=\"2\"") {
		t.Fatalf("expected key labels in DOT output:\n%s", out)
	}
	var listing bytes.Buffer
	if err := tree.Fprint(&listing); err != nil {
		t.Fatal(err)
	}
	want := "    3: ***\n2: **\n    1: *\n"
	if listing.String() != want {
		t.Fatalf("listing = %q, want %q", listing.String(), want)
	}
	listing.Reset()
	_ = NewOrdered[int, int]().Fprint(&listing)
	if listing.String() != "(empty)\n" {
		t.Fatalf("unexpected listing of empty tree: %q", listing.String())
	}
}

func TestListingClipsRunesAndKeepsColorSetting(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()
	color.NoColor = false
	//
	tree := NewOrdered[string, int]()
	tree.Insert("äöüß", 1)
	var listing bytes.Buffer
	if err := tree.Fprint(&listing); err != nil {
		t.Fatal(err)
	}
	if color.NoColor {
		t.Fatalf("dumping to a buffer must not switch colors off globally")
	}
	if strings.Contains(listing.String(), "\x1b[") {
		t.Fatalf("listing to a buffer must not be colored: %q", listing.String())
	}
	listing.Reset()
	if err := tree.fprint(newPrinter(&listing, 3, false)); err != nil {
		t.Fatal(err)
	}
	if got := listing.String(); got != "äöü\n" || !utf8.ValidString(got) {
		t.Fatalf("clipped listing = %q, want %q", got, "äöü\n")
	}
	if clip("ab", 0) != "" || clip("ab", 5) != "ab" {
		t.Fatalf("unexpected clipping at the edges")
	}
}

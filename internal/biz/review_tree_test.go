package biz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uptr(v uint) *uint { return &v }

func TestBuildReviewTreeNestsChains(t *testing.T) {
	reviews := []*Review{
		{ID: 3, Name: "C", Text: "c", ParentID: uptr(2)},
		{ID: 1, Name: "A", Text: "a"},
		{ID: 2, Name: "B", Text: "b", ParentID: uptr(1)},
	}

	tree, err := BuildReviewTree(reviews)
	require.NoError(t, err)
	require.Len(t, tree, 1)

	a := tree[0]
	assert.Equal(t, "A", a.Name)
	require.Len(t, a.Children, 1)
	b := a.Children[0]
	assert.Equal(t, "B", b.Name)
	require.Len(t, b.Children, 1)
	c := b.Children[0]
	assert.Equal(t, "C", c.Name)
	assert.NotNil(t, c.Children)
	assert.Empty(t, c.Children)
}

func TestBuildReviewTreeOrdersByID(t *testing.T) {
	reviews := []*Review{
		{ID: 5, Name: "second root"},
		{ID: 4, Name: "reply two", ParentID: uptr(1)},
		{ID: 1, Name: "first root"},
		{ID: 2, Name: "reply one", ParentID: uptr(1)},
	}

	tree, err := BuildReviewTree(reviews)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "first root", tree[0].Name)
	assert.Equal(t, "second root", tree[1].Name)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "reply one", tree[0].Children[0].Name)
	assert.Equal(t, "reply two", tree[0].Children[1].Name)
}

func TestBuildReviewTreeEmpty(t *testing.T) {
	tree, err := BuildReviewTree(nil)
	require.NoError(t, err)
	assert.NotNil(t, tree)
	assert.Empty(t, tree)
}

func TestBuildReviewTreeOmitsUnreachable(t *testing.T) {
	reviews := []*Review{
		{ID: 1, Name: "root"},
		{ID: 2, Name: "orphan", ParentID: uptr(99)},
	}

	tree, err := BuildReviewTree(reviews)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Empty(t, tree[0].Children)
}

func TestBuildReviewTreeDetectsCycles(t *testing.T) {
	tests := []struct {
		name    string
		reviews []*Review
	}{
		{
			name:    "self parent",
			reviews: []*Review{{ID: 1, ParentID: uptr(1)}},
		},
		{
			name: "detached loop",
			reviews: []*Review{
				{ID: 1},
				{ID: 2, ParentID: uptr(3)},
				{ID: 3, ParentID: uptr(2)},
			},
		},
		{
			name: "loop below a chain",
			reviews: []*Review{
				{ID: 1, ParentID: uptr(2)},
				{ID: 2, ParentID: uptr(3)},
				{ID: 3, ParentID: uptr(4)},
				{ID: 4, ParentID: uptr(2)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildReviewTree(tt.reviews)
			assert.ErrorIs(t, err, ErrCycleDetected)
		})
	}
}

func TestBuildReviewTreeDepthLimit(t *testing.T) {
	build := func(n int) []*Review {
		reviews := []*Review{{ID: 1}}
		for i := 2; i <= n; i++ {
			reviews = append(reviews, &Review{ID: uint(i), ParentID: uptr(uint(i - 1))})
		}
		return reviews
	}

	_, err := BuildReviewTree(build(MaxReviewDepth))
	assert.NoError(t, err)

	_, err = BuildReviewTree(build(MaxReviewDepth + 1))
	assert.ErrorIs(t, err, ErrDepthExceeded)
}

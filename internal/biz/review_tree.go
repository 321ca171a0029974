package biz

import (
	"fmt"
	"sort"
)

// MaxReviewDepth bounds how deep replies may nest.
const MaxReviewDepth = 64

const (
	visiting uint8 = iota + 1
	visited
)

// BuildReviewTree nests a movie's reviews under their root reviews.
// Reviews whose parent is outside the given set are unreachable and omitted.
func BuildReviewTree(reviews []*Review) ([]*ReviewNode, error) {
	sorted := make([]*Review, len(reviews))
	copy(sorted, reviews)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[uint]*Review, len(sorted))
	for _, r := range sorted {
		byID[r.ID] = r
	}

	var roots []uint
	children := make(map[uint][]uint)
	for _, r := range sorted {
		if r.ParentID == nil {
			roots = append(roots, r.ID)
			continue
		}
		children[*r.ParentID] = append(children[*r.ParentID], r.ID)
	}

	if err := checkAcyclic(sorted, byID); err != nil {
		return nil, err
	}

	nodes := make([]*ReviewNode, 0, len(roots))
	for _, id := range roots {
		node, err := buildReviewNode(byID, children, id, 1)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// checkAcyclic walks every parent chain once, including chains that never reach a root.
func checkAcyclic(reviews []*Review, byID map[uint]*Review) error {
	state := make(map[uint]uint8, len(reviews))
	for _, r := range reviews {
		var path []uint
		cur := r
		for cur != nil {
			switch state[cur.ID] {
			case visited:
				cur = nil
				continue
			case visiting:
				return fmt.Errorf("%w: review %d is its own ancestor", ErrCycleDetected, cur.ID)
			}
			state[cur.ID] = visiting
			path = append(path, cur.ID)
			if cur.ParentID == nil {
				break
			}
			cur = byID[*cur.ParentID]
		}
		for _, id := range path {
			state[id] = visited
		}
	}
	return nil
}

func buildReviewNode(byID map[uint]*Review, children map[uint][]uint, id uint, depth int) (*ReviewNode, error) {
	if depth > MaxReviewDepth {
		return nil, fmt.Errorf("%w: review %d is nested deeper than %d", ErrDepthExceeded, id, MaxReviewDepth)
	}
	r := byID[id]
	node := &ReviewNode{
		Name:     r.Name,
		Text:     r.Text,
		Children: make([]*ReviewNode, 0, len(children[id])),
	}
	for _, childID := range children[id] {
		child, err := buildReviewNode(byID, children, childID, depth+1)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

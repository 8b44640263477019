// Package graph строит граф районов обслуживания и считает кратчайшие маршруты.
package graph

import (
	"container/heap"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/models"
)

type neighbor struct {
	to     string
	weight float64
}

// Graph неизменяем после Build; при изменении топологии строится заново.
type Graph struct {
	areas map[string]models.Area
	adj   map[string][]neighbor
}

// Build собирает неориентированный граф. Рёбра с отрицательным весом
// или ссылкой на неизвестный район отклоняются.
func Build(areas []models.Area, edges []models.Edge) (*Graph, error) {
	g := &Graph{
		areas: make(map[string]models.Area, len(areas)),
		adj:   make(map[string][]neighbor, len(areas)),
	}
	for _, a := range areas {
		if a.ID == "" {
			return nil, apperror.Validation("area.id", "must not be empty")
		}
		if _, dup := g.areas[a.ID]; dup {
			return nil, apperror.Validation("area.id", fmt.Sprintf("duplicate area %q", a.ID))
		}
		g.areas[a.ID] = a
	}
	for _, e := range edges {
		if e.Weight < 0 {
			return nil, apperror.Validation("edge.weight", fmt.Sprintf("negative weight on %s-%s", e.From, e.To))
		}
		if _, ok := g.areas[e.From]; !ok {
			return nil, apperror.Validation("edge.from", fmt.Sprintf("unknown area %q", e.From))
		}
		if _, ok := g.areas[e.To]; !ok {
			return nil, apperror.Validation("edge.to", fmt.Sprintf("unknown area %q", e.To))
		}
		g.adj[e.From] = append(g.adj[e.From], neighbor{to: e.To, weight: e.Weight})
		g.adj[e.To] = append(g.adj[e.To], neighbor{to: e.From, weight: e.Weight})
	}
	return g, nil
}

func (g *Graph) HasArea(id string) bool {
	_, ok := g.areas[id]
	return ok
}

// Areas возвращает районы, отсортированные по id
func (g *Graph) Areas() []models.Area {
	out := make([]models.Area, 0, len(g.areas))
	for _, a := range g.areas {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (g *Graph) EdgeCount() int {
	n := 0
	for _, ns := range g.adj {
		n += len(ns)
	}
	return n / 2
}

// label - метка пути: сравнивается по расстоянию, затем по числу переходов,
// затем лексикографически по последовательности id районов.
type label struct {
	node string
	dist float64
	path []string
}

func (a *label) less(b *label) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if len(a.path) != len(b.path) {
		return len(a.path) < len(b.path)
	}
	for i := range a.path {
		if a.path[i] != b.path[i] {
			return a.path[i] < b.path[i]
		}
	}
	return false
}

type labelQueue []*label

func (q labelQueue) Len() int            { return len(q) }
func (q labelQueue) Less(i, j int) bool  { return q[i].less(q[j]) }
func (q labelQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *labelQueue) Push(x interface{}) { *q = append(*q, x.(*label)) }
func (q *labelQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// ShortestDistance считает кратчайший путь алгоритмом Дейкстры.
// Возвращает *apperror.NoRouteError, если район неизвестен или недостижим.
func (g *Graph) ShortestDistance(from, to string) (float64, []string, error) {
	if !g.HasArea(from) || !g.HasArea(to) {
		return 0, nil, &apperror.NoRouteError{From: from, To: to}
	}
	if from == to {
		return 0, []string{from}, nil
	}

	best := map[string]*label{from: {node: from, path: []string{from}}}
	done := make(map[string]bool, len(g.areas))
	q := &labelQueue{best[from]}

	for q.Len() > 0 {
		cur := heap.Pop(q).(*label)
		if done[cur.node] {
			continue
		}
		done[cur.node] = true
		if cur.node == to {
			return cur.dist, cur.path, nil
		}
		for _, n := range g.adj[cur.node] {
			if done[n.to] {
				continue
			}
			path := make([]string, len(cur.path)+1)
			copy(path, cur.path)
			path[len(cur.path)] = n.to
			next := &label{node: n.to, dist: cur.dist + n.weight, path: path}
			if prev, ok := best[n.to]; ok && !next.less(prev) {
				continue
			}
			best[n.to] = next
			heap.Push(q, next)
		}
	}
	return 0, nil, &apperror.NoRouteError{From: from, To: to}
}

// Holder хранит текущий снимок графа; запросы читают снимок без блокировок,
// перестройка подменяет его целиком.
type Holder struct {
	current atomic.Pointer[Graph]
}

func NewHolder(g *Graph) *Holder {
	h := &Holder{}
	h.current.Store(g)
	return h
}

func (h *Holder) Load() *Graph {
	return h.current.Load()
}

func (h *Holder) Swap(g *Graph) {
	h.current.Store(g)
}

func (h *Holder) HasArea(id string) bool {
	g := h.Load()
	return g != nil && g.HasArea(id)
}

func (h *Holder) ShortestDistance(from, to string) (float64, []string, error) {
	g := h.Load()
	if g == nil {
		return 0, nil, &apperror.NoRouteError{From: from, To: to}
	}
	return g.ShortestDistance(from, to)
}

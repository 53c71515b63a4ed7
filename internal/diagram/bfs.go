package diagram

// BFS walks the diagram breadth-first from start, crossing only edges
// admitted by crossEdge and enqueueing only nodes admitted by visitNode
// (nil predicates admit everything). Edges are crossed in both directions.
// The walk is pure and always terminates; it returns the visited nodes in
// discovery order, start included.
func BFS(start *Node, crossEdge EdgePred, visitNode NodePred) []*Node {
	if start == nil {
		return nil
	}
	visited := map[*Node]bool{start: true}
	order := []*Node{start}
	for queue := []*Node{start}; len(queue) > 0; {
		n := queue[0]
		queue = queue[1:]
		for _, e := range n.edges {
			if crossEdge != nil && !crossEdge(e) {
				continue
			}
			next := e.Opposite(n)
			if next == nil || visited[next] {
				continue
			}
			if visitNode != nil && !visitNode(next) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
			order = append(order, next)
		}
	}
	return order
}

package game

import "github.com/gammazero/deque"

type NeighborGetter func(*Cell) []*Cell
type Visitor func(*Cell)

// flood visits cell and then spreads breadth-first through its neighbours,
// stopping at any cell which touches a mine. Mines and cells that are already
// revealed are never queued, so the revealed flag doubles as the visited set:
// visit must reveal the cell it is given.
func flood(cell *Cell, visit Visitor, getNeighbors NeighborGetter) {
	if cell.isMine || cell.isRevealed {
		return
	}

	var visitQueue deque.Deque

	enqueue := func(cell *Cell) {
		visit(cell)
		visitQueue.PushBack(cell)
	}

	enqueue(cell)
	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront().(*Cell)
		if cell.numMines != 0 {
			continue
		}

		for _, neighbor := range getNeighbors(cell) {
			if neighbor.isMine || neighbor.isRevealed {
				continue
			}
			enqueue(neighbor)
		}
	}
}

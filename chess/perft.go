package chess

import "sync"

// Perft counts the leaf positions depth plies below p.
func Perft(p Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(p.MakeMove(m), depth-1)
	}
	return nodes
}

// PerftParallel is Perft with one goroutine per root move.
func PerftParallel(p Position, depth int) uint64 {
	if depth <= 1 {
		return Perft(p, depth)
	}
	moves := p.LegalMoves()
	counts := make(chan uint64, len(moves))
	var group sync.WaitGroup
	for _, m := range moves {
		group.Add(1)
		go func(child Position) {
			defer group.Done()
			counts <- Perft(child, depth-1)
		}(p.MakeMove(m))
	}
	group.Wait()
	close(counts)
	var nodes uint64
	for n := range counts {
		nodes += n
	}
	return nodes
}

package memory

import (
	"errors"
	"fmt"

	"github.com/ccoveille/go-safecast"

	"github.com/powledger/powledger/internal/ledger"
	"github.com/powledger/powledger/internal/ledger/store"
)

type Store struct {
	blocks []ledger.Block
}

// New returns a store holding only the genesis block.
func New() *Store {
	return &Store{
		blocks: []ledger.Block{ledger.Genesis()},
	}
}

func (s *Store) Genesis() ledger.Block {
	return s.blocks[0].Clone()
}

func (s *Store) Last() ledger.Block {
	return s.blocks[len(s.blocks)-1].Clone()
}

// Append stores a copy of block as the new tip.
func (s *Store) Append(block ledger.Block) {
	s.blocks = append(s.blocks, block.Clone())
}

func (s *Store) At(index uint64) (ledger.Block, error) {
	i, err := safecast.ToInt(index)
	if err != nil {
		return ledger.Block{}, errors.Join(store.ErrBlockNotFound, err)
	}

	if i >= len(s.blocks) {
		return ledger.Block{}, errors.Join(store.ErrBlockNotFound, fmt.Errorf("index: %d, height: %d", index, s.Height()))
	}

	return s.blocks[i].Clone(), nil
}

func (s *Store) Blocks() []ledger.Block {
	blocks := make([]ledger.Block, len(s.blocks))
	for i, b := range s.blocks {
		blocks[i] = b.Clone()
	}

	return blocks
}

// Height is the index of the tip.
func (s *Store) Height() uint64 {
	return s.blocks[len(s.blocks)-1].Index
}

package chunk

// ID addresses a Chunk inside a Store. The zero value, Invalid, never
// addresses a real chunk — every lookup that can fail (an unmatched
// opener, walking past the end of the sequence) returns Invalid instead of
// a language-level nil, per DESIGN NOTES' "represent chunks in an arena
// indexed by integer handles" note: Store is the arena, ID is the handle,
// and the cyclic prev/next/match graph lives entirely inside Store rather
// than as pointers chunks hold on each other.
type ID int32

// Invalid is the null sentinel handle.
const Invalid ID = -1

// Chunk is the fundamental unit: a single lexical token enriched with a
// role tag, a parent-construct tag, nesting levels, and a flag bitset. See
// SPEC_FULL.md §3 for the field-by-field contract.
type Chunk struct {
	Text       string
	Type       Type
	ParentType Type
	OrigLine   int
	OrigCol    int
	Level      uint32
	BraceLevel uint32
	PPLevel    uint32
	Flags      Flags
}

type node struct {
	Chunk
	prev, next, match ID
}

// Store owns a sequence of chunks. It is the single owner of chunk
// lifetime: chunks are created by Append/InsertBefore/InsertAfter and
// destroyed only by Remove, matching the chunk lifecycle in SPEC_FULL.md
// §3 ("chunks are created by the lexer and destroyed only at end-of-file
// or when the cleanup pass inserts/removes virtual braces").
type Store struct {
	nodes []node
	head  ID
	tail  ID
}

// NewStore returns an empty chunk sequence.
func NewStore() *Store {
	return &Store{head: Invalid, tail: Invalid}
}

// Len returns the number of live chunks (including ones that have been
// logically removed but not compacted is never the case: Remove unlinks
// and the node becomes unreachable from Head/Tail/Next/Prev walks, but the
// slot is retained so earlier-issued IDs referring to other chunks stay
// valid).
func (s *Store) Len() int {
	n := 0
	for id := s.head; id != Invalid; id = s.nodes[id].next {
		n++
	}
	return n
}

// Head returns the first chunk in the sequence, or Invalid if empty.
func (s *Store) Head() ID { return s.head }

// Tail returns the last chunk in the sequence, or Invalid if empty.
func (s *Store) Tail() ID { return s.tail }

// At returns a pointer to the chunk's mutable fields. The pointer is valid
// until the next structural mutation (Append/InsertBefore/InsertAfter/
// Remove) on this Store, since those may grow the backing slice; callers
// that need a value to survive a mutation should copy it (*store.At(id))
// first.
func (s *Store) At(id ID) *Chunk {
	return &s.nodes[id].Chunk
}

// Valid reports whether id addresses an allocated slot. A chunk unlinked
// by Remove keeps its slot, so Valid stays true for it.
func (s *Store) Valid(id ID) bool { return id != Invalid && int(id) < len(s.nodes) }

// Append adds c to the end of the sequence and returns its handle.
func (s *Store) Append(c Chunk) ID {
	return s.insert(c, s.tail, Invalid)
}

// InsertBefore inserts c immediately before before and returns its handle.
// If before is Invalid, c is appended.
func (s *Store) InsertBefore(before ID, c Chunk) ID {
	if before == Invalid {
		return s.Append(c)
	}
	return s.insert(c, s.nodes[before].prev, before)
}

// InsertAfter inserts c immediately after after and returns its handle.
// If after is Invalid, c is prepended.
func (s *Store) InsertAfter(after ID, c Chunk) ID {
	if after == Invalid {
		return s.insert(c, Invalid, s.head)
	}
	return s.insert(c, after, s.nodes[after].next)
}

func (s *Store) insert(c Chunk, prev, next ID) ID {
	id := ID(len(s.nodes))
	s.nodes = append(s.nodes, node{Chunk: c, prev: prev, next: next, match: Invalid})
	if prev != Invalid {
		s.nodes[prev].next = id
	} else {
		s.head = id
	}
	if next != Invalid {
		s.nodes[next].prev = id
	} else {
		s.tail = id
	}
	return id
}

// Remove unlinks id from the sequence. The slot is not reused; any other
// ID obtained before the call remains valid, and id itself becomes
// unreachable from traversal but must not be dereferenced afterward.
func (s *Store) Remove(id ID) {
	n := s.nodes[id]
	if n.prev != Invalid {
		s.nodes[n.prev].next = n.next
	} else {
		s.head = n.next
	}
	if n.next != Invalid {
		s.nodes[n.next].prev = n.prev
	} else {
		s.tail = n.prev
	}
}

// Next returns the raw next link, or Invalid at end of sequence.
func (s *Store) Next(id ID) ID {
	if id == Invalid {
		return Invalid
	}
	return s.nodes[id].next
}

// Prev returns the raw prev link, or Invalid at start of sequence.
func (s *Store) Prev(id ID) ID {
	if id == Invalid {
		return Invalid
	}
	return s.nodes[id].prev
}

// Match returns the chunk's cached matching opener/closer, or Invalid if
// none has been recorded yet. Set by the brace/preprocessor cleanup pass
// (component H) as each closer is encountered, so later passes (E, F, G)
// read the cached edge instead of rescanning with SkipToMatch every time,
// per SPEC_FULL.md §3.
func (s *Store) Match(id ID) ID {
	if id == Invalid {
		return Invalid
	}
	return s.nodes[id].match
}

// SetMatch records a and b as each other's matching opener/closer.
func (s *Store) SetMatch(a, b ID) {
	if a != Invalid {
		s.nodes[a].match = b
	}
	if b != Invalid {
		s.nodes[b].match = a
	}
}

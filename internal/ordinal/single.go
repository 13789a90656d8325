package ordinal

// Single maps each document to at most one dictionary ordinal.
type Single struct {
	order []int32
}

// NewSingle wraps order without copying. order[docID] is Missing or an index
// into the companion Dictionary.
func NewSingle(order []int32) Single {
	return Single{order: order}
}

// Ord returns the ordinal for docID. docID must be in [0, NumDocs()).
func (s Single) Ord(docID int) int {
	return int(s.order[docID])
}

// Has reports whether docID has a value.
func (s Single) Has(docID int) bool {
	return s.order[docID] != Missing
}

// NumDocs returns the number of documents covered by the index.
func (s Single) NumDocs() int {
	return len(s.order)
}

// Check returns the first document whose ordinal is outside [0, numOrds).
// ok is false when every ordinal is in range.
func (s Single) Check(numOrds int) (docID, ord int, ok bool) {
	for i, o := range s.order {
		if o < 0 || int(o) >= numOrds {
			return i, int(o), true
		}
	}
	return 0, 0, false
}

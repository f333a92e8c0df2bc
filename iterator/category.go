package iterator

// Category describes what an iterator can do. Each category includes
// every capability of the ones before it.
type Category int

const (
	InputCategory Category = iota
	ForwardCategory
	BidirectionalCategory
	RandomAccessCategory
)

func (c Category) String() string {
	switch c {
	case InputCategory:
		return "input"
	case ForwardCategory:
		return "forward"
	case BidirectionalCategory:
		return "bidirectional"
	case RandomAccessCategory:
		return "random-access"
	default:
		return "<invalid iterator.Category>"
	}
}

// Includes reports whether an iterator of category c can be used
// where category other is required.
func (c Category) Includes(other Category) bool {
	return c >= other
}

// Categorized is implemented by iterators that report their category.
type Categorized interface {
	Category() Category
}

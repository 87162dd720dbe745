package graph

import "errors"

var (
	ErrNotSquare        = errors.New("adjacency matrix is not square")
	ErrVertsShape       = errors.New("active-vertex vector does not match adjacency matrix")
	ErrInvalidDirection = errors.New("invalid degree direction")
	ErrVertexRange      = errors.New("vertex index out of range")
	ErrTooManyEdges     = errors.New("too many edges for vertex count")
	ErrNegativeSize     = errors.New("vertex and edge counts must be non-negative")
	ErrLabels           = errors.New("label count does not match vertex count")
	ErrSelfLoop         = errors.New("self loops are not supported")
)

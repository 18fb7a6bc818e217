// Package builder defines shared constants used by the instance builders.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandomArray is the canonical name for the RandomArray constructor.
	MethodRandomArray = "RandomArray"
	// MethodRandomGrid is the canonical name for the RandomGrid constructor.
	MethodRandomGrid = "RandomGrid"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinArraySize is the smallest array RandomArray builds.
const MinArraySize = 1

// MinArrayMax is the smallest allowed upper bound for array values.
const MinArrayMax = 1

// MinGridDim is the smallest allowed dimension (rows or cols) of a grid.
const MinGridDim = 1

// MinGridCells is the smallest rows×cols product: start and end need
// distinct cells.
const MinGridCells = 2

//-----------------------------------------------------------------------------
// Default Instances and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultArraySize and DefaultArrayMax describe the initial sorting array.
const (
	DefaultArraySize = 20
	DefaultArrayMax  = 100
)

// DefaultGridSize is the side length of the initial pathfinding and maze grids.
const DefaultGridSize = 20

// PathfindingWallProbability is the wall density of pathfinding grids.
const PathfindingWallProbability = 0.25

// MazeWallProbability is the wall density of maze grids.
const MazeWallProbability = 0.3

// MinProbability is the lower bound for p in RandomGrid, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in RandomGrid, inclusive.
const MaxProbability = 1.0

// defaultListValues is the initial linked list.
var defaultListValues = []int{3, 7, 2, 9, 5}

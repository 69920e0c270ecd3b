package pointset

// Method tags used as error prefixes.
const (
	MethodBuild   = "Build"
	MethodLine    = "Line"
	MethodLattice = "Lattice"
	MethodUniform = "Uniform"
	MethodSphere  = "Sphere"
	MethodByName  = "ByName"
)

// Shape names accepted by ByName.
const (
	ShapeLine    = "line"
	ShapeLattice = "lattice"
	ShapeUniform = "uniform"
	ShapeSphere  = "sphere"
)

// Minimum sizes.
const (
	// MinPoints is the smallest n accepted by Line, Uniform and Sphere.
	// Zero points is a legal (empty) cloud.
	MinPoints = 0
	// MinLatticeDim is the smallest per-axis size accepted by Lattice.
	MinLatticeDim = 1
)

// DefaultScale is the spacing/edge/radius used when WithScale is not given.
const DefaultScale = 1.0
